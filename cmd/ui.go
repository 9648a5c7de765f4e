package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/internal/engine"
	"github.com/upwatchdev/upwatch/internal/notify"
	"github.com/upwatchdev/upwatch/internal/session"
	"github.com/upwatchdev/upwatch/internal/source"
	"github.com/upwatchdev/upwatch/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the terminal dashboard",
	Long: `Opens the interactive dashboard. It polls the configured sources every
minute (and on demand with 'r'), shows service health and incident
history, and fires desktop notifications on status transitions.`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	sess, err := session.Current()
	if err != nil {
		if errors.Is(err, session.ErrNotSignedIn) {
			return fmt.Errorf("not signed in, run `upwatch login` first")
		}
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources configured, run `upwatch sources add` first")
	}

	// One-time desktop notification prompt. Later sends re-check the
	// persisted state, so revoking from the settings tab takes effect
	// immediately.
	if cfg.Notify.Desktop.Enabled && notify.PermissionState() == notify.PermissionNotRequested {
		granted := true
		prompt := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Allow desktop notifications?").
				Description("upwatch notifies you when a monitored service goes up or down.").
				Value(&granted),
		))
		if err := prompt.Run(); err != nil {
			return err
		}
		if err := notify.SetPermission(granted); err != nil {
			return fmt.Errorf("saving notification permission: %w", err)
		}
	}

	fetcher := source.New(cfg.GitHub)
	poller := engine.NewPoller(cfg.Sources, fetcher)
	scheduler := engine.NewScheduler(poller, cfg.Poll.Interval())
	dispatcher := notify.NewDispatcher(cfg.Notify)

	if err := scheduler.Start(context.Background()); err != nil {
		return fmt.Errorf("starting poll scheduler: %w", err)
	}
	defer scheduler.Stop()

	app := tui.NewApp(cfg, cfgFile, scheduler, dispatcher, sess.User)
	return app.Run()
}
