package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/upwatchdev/upwatch/internal/session"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#14B8A6")).
	MarginBottom(1)

var successStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#10B981"))

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#EF4444"))

var dimStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6B7280"))

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to upwatch",
	Long: `Signs you in and stores a session in ~/.upwatch. The dashboard and
the poll scheduler require a live session.

The bundled identity provider is local-only: any non-empty username and
password are accepted. Swap in a real provider before exposing this to
anything that matters.`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	if existing, err := session.Current(); err == nil {
		fmt.Println(dimStyle.Render("Already signed in as " + existing.User + ". Run `upwatch logout` first to switch users."))
		return nil
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("  upwatch · sign in"))

	var user, password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&user),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	provider := session.LocalProvider{}
	sess, err := provider.Authenticate(cmd.Context(), user, password)
	if err != nil {
		return fmt.Errorf("signing in: %w", err)
	}
	if err := session.Save(sess); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Println(successStyle.Render("Signed in as " + sess.User + "."))
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.Clear(); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}
