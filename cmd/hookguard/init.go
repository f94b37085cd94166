package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/hookguard/hookguard/internal/config"
)

var forceFlag bool

// ErrConfigExists is returned when init would overwrite an existing config.
var ErrConfigExists = errors.New("config file already exists")

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a starter configuration file with the built-in defaults.

By default, creates ~/.hookguard/config.toml. Pass --config to choose a
different location. Use --force to overwrite an existing file.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(
		&forceFlag,
		"force",
		"f",
		false,
		"Overwrite existing configuration file",
	)
}

func runInit(_ *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "getting home directory")
		}

		path = filepath.Join(homeDir, ".hookguard", "config.toml")
	}

	if _, err := os.Stat(path); err == nil && !forceFlag {
		return errors.Wrapf(ErrConfigExists, "%s (use --force to overwrite)", path)
	}

	writer := internalconfig.NewWriter()
	if err := writer.Write(path, internalconfig.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("✅ Configuration written to %s\n", path)

	return nil
}
