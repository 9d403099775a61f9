package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/prodfinder/internal/config"
	"github.com/kamusis/prodfinder/internal/search"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and catalog",
	Long: `Check that prodfinder's configuration and catalog are usable.
Run this command when something seems wrong, or before filing a bug report.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorProbe is the query run against the catalog as a smoke test.
const doctorProbe = "best"

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("prodfinder doctor")
	fmt.Println()

	// ── Check 1: config.yaml ──────────────────────────────────────────────────
	fmt.Println("[ config.yaml ]")
	cfgPath, _ := config.ConfigPath()
	exists, err := config.Exists()
	switch {
	case err != nil:
		failD("%v", err)
	case !exists:
		printSkip("", fmt.Sprintf("%s not found, using defaults (run 'prodfinder init' to create it)", cfgPath))
	default:
		printOK("", fmt.Sprintf("found: %s", cfgPath))
	}
	cfg, loadErr := config.Load()
	if loadErr != nil {
		failD("cannot load config: %v", loadErr)
	} else {
		printOK("", fmt.Sprintf("valid: limit %d, output %s", cfg.Limit, cfg.Output))
		if n := len(cfg.Keywords); n > 0 {
			printInfo("", fmt.Sprintf("%d custom keyword categor%s", n, pluralize(n, "y", "ies")))
		}
	}
	fmt.Println()

	// ── Check 2: .env ─────────────────────────────────────────────────────────
	fmt.Println("[ .env ]")
	envPath, _ := config.DotEnvPath()
	if _, err := os.Stat(envPath); err != nil {
		printSkip("", fmt.Sprintf("%s not found (optional)", envPath))
	} else if _, err := config.LoadDotEnv(); err != nil {
		failD("%v", err)
	} else {
		printOK("", fmt.Sprintf("readable: %s", envPath))
	}
	fmt.Println()

	// ── Check 3: catalog ──────────────────────────────────────────────────────
	fmt.Println("[ catalog ]")
	if loadErr != nil {
		printWarn("", "skipped (config not loaded)")
		fmt.Println()
	} else {
		log := newLogger(cfg)
		cat, err := openCatalog(cfg, log)
		if err != nil {
			failD("%v", err)
		} else {
			printOK("", fmt.Sprintf("%d products in %d categories from %s", cat.Len(), len(cat.Categories()), cat.Source()))

			// Keyword categories with no products can never match.
			rules := buildRules(cfg)
			var unused []string
			for _, c := range rules.Categories() {
				if !cat.HasCategory(c) {
					unused = append(unused, c)
				}
			}
			for _, c := range unused {
				printWarn("", fmt.Sprintf("keyword category %q has no products", c))
			}

			engine := search.NewEngine(cat, rules, log)
			if _, err := engine.Search(doctorProbe, search.Options{Limit: 1}); err != nil {
				failD("probe search %q failed: %v", doctorProbe, err)
			} else {
				printOK("", fmt.Sprintf("probe search %q returned results", doctorProbe))
			}
		}
		fmt.Println()
	}

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed. prodfinder is ready to use.")
		return nil
	}
	fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
	return fmt.Errorf("doctor found issues")
}
