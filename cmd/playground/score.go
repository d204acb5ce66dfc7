package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#e11d48")).Padding(0, 2)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

var resetScore bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the stored high score",
	Args:  cobra.NoArgs,
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().BoolVar(&resetScore, "reset", false, "clear the high score first")
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	scores, err := store.Open(ctx, opts.db)
	if err != nil {
		return fmt.Errorf("open high score store: %w", err)
	}
	defer scores.Close()

	if resetScore {
		if err := scores.ResetHighScore(ctx); err != nil {
			return err
		}
	}
	high, err := scores.HighScore(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderScore(high, opts.db))
	return nil
}

func renderScore(high int, path string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Collect the tech"),
		scoreStyle.Render(fmt.Sprintf("High score %d", high)),
		dimStyle.Render(path),
	)
}
