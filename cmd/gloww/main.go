package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/gloww/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "gloww",
		Short:         "Local-first hormonal wellness tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before the environment is parsed")

	loadConfig := func() (config.Config, error) {
		return config.Load(envFile)
	}

	passcode := &cobra.Command{
		Use:   "passcode",
		Short: "Manage the app lock passcode",
	}
	passcode.AddCommand(newPasscodeSetCommand(loadConfig), newPasscodeResetCommand(loadConfig))

	root.AddCommand(
		newServeCommand(loadConfig),
		newPredictCommand(loadConfig),
		passcode,
	)
	return root
}
