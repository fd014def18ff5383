// Package recommend ranks shop items for the active player of a live match.
//
// The pipeline runs left to right and is synchronous:
//
//	ChampionProfiler -> EnemyAnalyzer -> FilterCandidates -> BuildCandidates
//	  -> CalculateWeights -> RankTOPSIS / RankTODIM -> Fuse
//
// Only the profiler, the enemy analyzer and the engine touch the Catalog; every
// other stage is a pure function over the previous stage's output. Nothing in the
// package keeps state between requests.
package recommend
