package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/prodfinder/internal/config"
)

var flagInitCatalog string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.prodfinder/config.yaml and a .env template",
	Long: `Create the prodfinder config directory at ~/.prodfinder/.

Writes config.yaml with defaults (unless it already exists) and a .env
template listing the PRODFINDER_* overrides. Existing files are never
overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&flagInitCatalog, "catalog-path", "", "Catalog file to record in config.yaml")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve ~/.prodfinder ──────────────────────────────────────────────
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("config directory ready: %s", dir))

	// ── 2. Write config.yaml if missing ───────────────────────────────────────
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	exists, err := config.Exists()
	if err != nil {
		return err
	}
	if exists {
		printSkip("", fmt.Sprintf("config already exists: %s", cfgPath))
	} else {
		cfg := config.DefaultConfig()
		cfg.CatalogPath = flagInitCatalog
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("config written: %s", cfgPath))
	}

	// ── 3. Write .env template if missing ─────────────────────────────────────
	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	created, err := config.EnsureDotEnvTemplate()
	if err != nil {
		return err
	}
	if created {
		printOK("", fmt.Sprintf(".env template written: %s", envPath))
	} else {
		printSkip("", fmt.Sprintf(".env already exists: %s", envPath))
	}

	// ── 4. Confirm the result loads ───────────────────────────────────────────
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("config written but cannot be loaded: %w", err)
	}
	printInfo("", "next: prodfinder search 'phone under $500'")
	return nil
}
