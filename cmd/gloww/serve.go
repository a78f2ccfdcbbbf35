package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/gloww/internal/api"
	"github.com/terraincognita07/gloww/internal/config"
	"github.com/terraincognita07/gloww/internal/services"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	secretKey, err := cfg.ValidateSecretKey()
	if err != nil {
		return err
	}
	port, err := config.ResolvePort(cfg.Port)
	if err != nil {
		return err
	}

	rt, err := openRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	location := cfg.Location()
	handler, err := api.NewHandler(api.HandlerConfig{
		Wellness:     rt.wellness,
		Lock:         services.NewLockService(rt.repos.Settings),
		Logger:       rt.logger,
		SecretKey:    secretKey,
		Location:     location,
		CookieSecure: cfg.CookieSecure,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := api.NewApp(handler)

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	reminders := buildReminderService(cfg, rt, location)
	if reminders != nil {
		if err := reminders.Start(sigCtx); err != nil {
			return fmt.Errorf("start reminders: %w", err)
		}
		defer reminders.Stop()
	} else {
		rt.logger.Info("reminders disabled", zap.String("reason", "telegram credentials not configured"))
	}

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			rt.logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	rt.logger.Info("gloww listening",
		zap.String("addr", "0.0.0.0:"+port),
		zap.String("db", cfg.DBPath),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func buildReminderService(cfg config.Config, rt *appRuntime, location *time.Location) *services.ReminderService {
	if !cfg.RemindersEnabled() {
		return nil
	}
	sender := services.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID)
	return services.NewReminderService(rt.repos.Periods, sender, services.ReminderConfig{
		Schedule:   cfg.ReminderSchedule,
		DaysBefore: cfg.ReminderDaysBefore,
		Ovulation:  cfg.ReminderOvulation,
		Location:   location,
	}, rt.logger)
}
