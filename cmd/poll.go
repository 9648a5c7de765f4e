package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/internal/engine"
	"github.com/upwatchdev/upwatch/internal/source"
	"github.com/upwatchdev/upwatch/models"
)

var pollJSON bool

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Run a single poll cycle and print the merged result",
	Long: `Fetches every configured source once, prints the merged service and
incident lists, and exits. No notifications are fired: a single cycle
has no previous poll to diff against.`,
	RunE: runPoll,
}

func init() {
	pollCmd.Flags().BoolVar(&pollJSON, "json", false, "print the raw poll result as JSON")
}

func runPoll(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources configured, run `upwatch sources add` first")
	}

	fetcher := source.New(cfg.GitHub)
	poller := engine.NewPoller(cfg.Sources, fetcher)
	result, _ := poller.RunCycle(cmd.Context())

	if pollJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("Polled %d source(s) at %s\n\n", len(cfg.Sources), result.Timestamp.Format("15:04:05"))

	if len(result.Services) == 0 {
		fmt.Println("No services reported. Every source failed or returned an empty summary.")
	}
	for _, svc := range result.Services {
		marker := successStyle.Render("up  ")
		if svc.Status != models.StatusUp {
			marker = errorStyle.Render("down")
		}
		extra := ""
		if svc.ResponseTime != nil {
			extra = fmt.Sprintf("  %.0f ms", *svc.ResponseTime)
		}
		if svc.Uptime != nil {
			extra += fmt.Sprintf("  %.2f%%", *svc.Uptime)
		}
		fmt.Printf("  %s  %-30s %s%s\n", marker, svc.Name, dimStyle.Render(svc.Label), extra)
	}

	if len(result.Incidents) > 0 {
		fmt.Printf("\n%d incident(s):\n", len(result.Incidents))
		for _, inc := range result.Incidents {
			fmt.Printf("  #%-5d %-7s %-50s %s\n", inc.ID, inc.State, truncate(inc.Title, 48), dimStyle.Render(inc.Label))
		}
	}
	return nil
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
