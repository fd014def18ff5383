package domain

import "errors"

// Catalog errors
var (
	ErrChampionNotFound = errors.New("champion not found")
	ErrItemNotFound     = errors.New("item not found")
)

// ErrMissingActivePlayer means the snapshot has no activePlayer block.
var ErrMissingActivePlayer = errors.New("game state has no active player")
