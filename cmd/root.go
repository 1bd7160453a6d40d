package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/jmrivas/tablero/internal/config"
	"github.com/jmrivas/tablero/internal/database"
	"github.com/jmrivas/tablero/internal/logging"
	"github.com/jmrivas/tablero/internal/services/issue"
	"github.com/jmrivas/tablero/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - a terminal kanban board for issues",
	Long: `Tablero is a terminal kanban board. Issues are classified into
status columns, optionally grouped into swim lanes, and moved between
columns with a grab-and-drop gesture that saves in the background.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runBoard() error {
	// Logging goes to a file because stdout belongs to the TUI
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	svc := issue.NewService(database.NewRepository(db))
	model := tui.InitialModel(ctx, svc, cfg)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
