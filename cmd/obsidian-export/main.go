// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the obsidian-export CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/obsidian-export/internal/render"
	"github.com/pdiddy/obsidian-export/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the obsidian-export CLI.
var rootCmd = &cobra.Command{
	Use:   "obsidian-export",
	Short: "Export Obsidian notes to PDF through pandoc",
	Long: `obsidian-export rewrites Obsidian-flavored Markdown (wiki-links, embeds,
callouts, tight headers and lists) into portable Markdown and renders it to
PDF with pandoc and the eisvogel template.

The PDF is written to an Attachments directory next to each note.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./obsidian-export.yaml or ~/.config/obsidian-export/config.yaml)")

	viper.SetDefault("pandoc.binary", render.DefaultBinary)
	viper.SetDefault("pandoc.pdf_engine", render.DefaultPDFEngine)
	viper.SetDefault("pandoc.template", "")
	viper.SetDefault("attachments_dir", types.DefaultAttachmentsDir)
	viper.SetDefault("default_title", false)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("obsidian-export")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "obsidian-export"))
		}
	}

	viper.SetEnvPrefix("OBSIDIAN_EXPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the export settings from viper.
func loadConfig() (types.ExportConfig, error) {
	var cfg types.ExportConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
