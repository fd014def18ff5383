package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dom/league-item-advisor/internal/recommend"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "recommend":
		recommendCmd(apiURL, args)
	case "profile":
		profileCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Item Advisor - query the recommendation server from a saved game snapshot

USAGE:
  advisor <command> [options]

COMMANDS:
  recommend  Post an allgamedata JSON snapshot and print the item ranking
  profile    Print the scaling profile for a champion
  help       Show this help message

ENVIRONMENT:
  API_URL   Server URL (default: http://localhost:8080)

EXAMPLES:
  # Rank items for a snapshot saved from the live client
  advisor recommend --file=allgamedata.json

  # Read the snapshot from stdin and show the scoring breakdown
  curl -sk https://127.0.0.1:2999/liveclientdata/allgamedata | advisor recommend --file=- --verbose

  # Preview how Jinx classifies at level 11 with 160 AD
  advisor profile --champion=Jinx --level=11 --ad=160`)
}

func recommendCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	file := fs.String("file", "", "Path to an allgamedata JSON snapshot, or - for stdin")
	verbose := fs.Bool("verbose", false, "Print TOPSIS/TODIM scores and explanations")
	fs.Parse(args)

	if *file == "" {
		fmt.Println("Error: --file is required")
		os.Exit(1)
	}

	body, err := readSnapshot(*file)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	rec, err := NewAPIClient(apiURL).Recommend(body)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printRecommendation(os.Stdout, rec, *verbose)
}

func profileCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	champion := fs.String("champion", "", "Champion ID, e.g. Jinx")
	level := fs.Int("level", 1, "Champion level (1-30)")
	ad := fs.Float64("ad", 0, "Live attack damage")
	ap := fs.Float64("ap", 0, "Live ability power")
	fs.Parse(args)

	if *champion == "" {
		fmt.Println("Error: --champion is required")
		os.Exit(1)
	}

	profile, err := NewAPIClient(apiURL).Profile(*champion, *level, *ad, *ap)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (level %d): %s\n", profile.ChampionName, profile.ChampionLevel, profile.ScalingType.Label())
	fmt.Printf("  AD ratio %.2f (%d abilities), AP ratio %.2f (%d abilities)\n",
		profile.TotalADRatio, profile.AbilitiesWithADScaling, profile.TotalAPRatio, profile.AbilitiesWithAPScaling)
	fmt.Printf("  HP %.2f  Armor %.2f  MR %.2f\n", profile.TotalHealthRatio, profile.TotalArmorRatio, profile.TotalMRRatio)
	if len(profile.AbilityTags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(profile.AbilityTags, ", "))
	}
}

func readSnapshot(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return body, nil
}

func printRecommendation(out io.Writer, rec *recommend.Recommendation, verbose bool) {
	fmt.Fprintf(out, "%s level %d, %.0f gold, profile %s\n", rec.ChampionName, rec.ChampionLevel, rec.CurrentGold, rec.ChampionProfile)
	e := rec.EnemyAnalysis
	fmt.Fprintf(out, "Enemies: %s (armor %.1f, MR %.1f; %d physical, %d magic, %d mixed, %d with hard CC)\n",
		strings.Join(e.EnemyChampions, ", "), e.AverageArmor, e.AverageMagicResist,
		e.PhysicalDamageChampions, e.MagicDamageChampions, e.MixedDamageChampions, e.CCChampions)

	if len(rec.Recommendations) == 0 {
		fmt.Fprintln(out, "No items to recommend.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if verbose {
		fmt.Fprintln(tw, "#\tITEM\tGOLD\tSCORE\tTOPSIS\tTODIM\tEFFICIENCY")
	} else {
		fmt.Fprintln(tw, "#\tITEM\tGOLD\tSCORE")
	}
	for _, item := range rec.Recommendations {
		name := item.ItemName
		if !item.Purchasable {
			name += " *"
		}
		if verbose {
			fmt.Fprintf(tw, "%d\t%s\t%.0f\t%.3f\t%.3f\t%.3f\t%.1f%%\n",
				item.Rank, name, item.GoldTotal, item.FinalScore, item.TopsisScore, item.TodimScore, item.GoldEfficiency)
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%.0f\t%.3f\n", item.Rank, name, item.GoldTotal, item.FinalScore)
		}
	}
	tw.Flush()

	if verbose {
		fmt.Fprintln(out)
		for _, item := range rec.Recommendations {
			fmt.Fprintf(out, "%d. %s\n", item.Rank, item.Explanation)
		}
	}
	fmt.Fprintf(out, "(%d candidates, %dms)\n", rec.CandidateCount, rec.ProcessingTimeMs)
}
