package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramanasai/reflectivei/internal/config"
	"github.com/ramanasai/reflectivei/internal/logging"
	"github.com/ramanasai/reflectivei/internal/notify"
	"github.com/ramanasai/reflectivei/internal/schedule"
	"github.com/ramanasai/reflectivei/internal/session"
	"github.com/ramanasai/reflectivei/internal/ui"
)

// tuiCmd launches the Bubble Tea TUI. It is also what the bare root command runs.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open TUI",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	notifier := notify.New(cfg.Notifications.Desktop)
	sess := session.New(
		session.WithNotifier(notifier),
		session.WithLogger(log.Named("session")),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if cfg.Reminder.Enabled {
		startReminder(ctx, cfg, log)
	}

	log.Info("starting", zap.String("theme", cfg.Theme), zap.Bool("desktop_notifications", cfg.Notifications.Desktop))
	if err := ui.Run(sess, ui.WithTheme(ui.ThemeByName(cfg.Theme)), ui.WithLogger(log.Named("ui"))); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// startReminder sends a desktop check-in prompt at the configured time while the TUI is open.
func startReminder(ctx context.Context, cfg config.Config, log *zap.Logger) {
	loc := cfg.Location()
	log.Info("reminder scheduled", zap.Time("next", schedule.NextAt(time.Now(), cfg.Reminder, loc)))
	go schedule.Run(ctx, cfg.Reminder, loc, func() {
		title, msg := notify.FormatCheckInPrompt()
		if err := (notify.Desktop{}).Notify(title, msg); err != nil {
			log.Warn("reminder failed", zap.Error(err))
		}
	})
}
