package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filefinder/internal/config"
)

var configForce bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService(configPath, nil)
			path, err := initConfig(svc, configForce)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func initConfig(svc config.ConfigService, force bool) (string, error) {
	path := svc.Path()
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := svc.SaveToPath(config.DefaultConfig(), path); err != nil {
		return "", err
	}
	return path, nil
}
