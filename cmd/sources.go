package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/upwatchdev/upwatch/internal/config"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage the monitored status repositories",
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if len(cfg.Sources) == 0 {
			fmt.Println(dimStyle.Render("No sources configured. Run: upwatch sources add"))
			return nil
		}
		for _, src := range cfg.Sources {
			fmt.Printf("  %-40s %s\n", src.Key(), dimStyle.Render(src.DisplayLabel()))
		}
		return nil
	},
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add [owner/repo]",
	Short: "Add a status repository to monitor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		var src config.Source
		if len(args) == 1 {
			owner, repo, ok := strings.Cut(args[0], "/")
			if !ok || owner == "" || repo == "" {
				return fmt.Errorf("expected owner/repo, got %q", args[0])
			}
			src = config.Source{Owner: owner, Repo: repo}
		} else {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Owner").Value(&src.Owner),
				huh.NewInput().Title("Repository").Value(&src.Repo),
				huh.NewInput().Title("Label (optional)").Value(&src.Label),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}
		if src.Owner == "" || src.Repo == "" {
			return fmt.Errorf("owner and repo are required")
		}

		for _, existing := range cfg.Sources {
			if existing.Key() == src.Key() {
				return fmt.Errorf("source %s already configured", src.Key())
			}
		}

		cfg.Sources = append(cfg.Sources, src)
		if err := config.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Added " + src.Key() + "."))
		return nil
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove owner/repo",
	Short: "Stop monitoring a status repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		kept := cfg.Sources[:0]
		removed := false
		for _, src := range cfg.Sources {
			if src.Key() == args[0] {
				removed = true
				continue
			}
			kept = append(kept, src)
		}
		if !removed {
			return fmt.Errorf("source %s is not configured", args[0])
		}
		cfg.Sources = kept
		if err := config.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Removed " + args[0] + ".")
		return nil
	},
}

var sourcesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the source list to stdout as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		return config.ExportSources(cfg.Sources, os.Stdout)
	},
}

var sourcesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the source list from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		sources, err := config.ImportSources(f)
		if err != nil {
			return err
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg.Sources = sources
		if err := config.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("Imported %d source(s).\n", len(sources))
		return nil
	},
}

func init() {
	sourcesCmd.AddCommand(
		sourcesListCmd,
		sourcesAddCmd,
		sourcesRemoveCmd,
		sourcesExportCmd,
		sourcesImportCmd,
	)
}
