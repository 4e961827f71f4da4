// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nbsubmit CLI, the notebook
// submission tooling: extract carves the marker-delimited submission
// region out of a working notebook, localize rewrites a Colab workflow
// notebook for local execution.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the nbsubmit CLI.
var rootCmd = &cobra.Command{
	Use:   "nbsubmit",
	Short: "Notebook submission tooling for course assignments",
	Long: `nbsubmit turns a working assignment notebook into clean, portable
artifacts. An author develops in a large notebook full of setup, scratch
work, and environment-specific cells; nbsubmit extracts the region between
two sentinel marker cells into a minimal submission notebook, and can
rewrite a Colab workflow notebook so it runs locally.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nbsubmit.yaml or ~/.config/nbsubmit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nbsubmit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nbsubmit"))
		}
	}

	// Missing config file is fine; flags carry the defaults.
	viper.ReadInConfig()
}

// stringSetting resolves a string flag against the config file: an
// explicitly set flag wins, then the config key, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
