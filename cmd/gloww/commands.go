package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/gloww/internal/cli"
	"github.com/terraincognita07/gloww/internal/config"
)

func newPredictCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Print the next period prediction and current cycle phase",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rt, err := openRuntime(cfg)
			if err != nil {
				return err
			}
			defer rt.Close()
			return cli.PrintForecast(rt.wellness, time.Now().In(cfg.Location()), cmd.OutOrStdout())
		},
	}
}

func newPasscodeSetCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Set or change the app lock passcode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			prompt := cli.TerminalPrompt(os.Stdin, cmd.OutOrStdout())
			return cli.RunSetPasscodeCommand(cfg.DBPath, prompt, cmd.OutOrStdout())
		},
	}
}

func newPasscodeResetCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace a forgotten passcode with a temporary one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return cli.RunResetPasscodeCommand(cfg.DBPath, cmd.OutOrStdout())
		},
	}
}
