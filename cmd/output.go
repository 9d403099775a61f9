package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions so icons and indentation stay consistent.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   ○  skipped / not applicable
//   ~  neutral info

var (
	okIcon   = color.New(color.FgGreen).SprintFunc()
	errIcon  = color.New(color.FgRed).SprintFunc()
	warnIcon = color.New(color.FgYellow).SprintFunc()
	dimIcon  = color.New(color.Faint).SprintFunc()
	heading  = color.New(color.Bold).SprintFunc()
)

// printSection prints a top-level section header, e.g. "=== Doctor ===".
func printSection(title string) {
	fmt.Printf("\n%s\n", heading("=== "+title+" ==="))
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(name, msg string) {
	printLine(os.Stdout, okIcon("✓"), name, msg)
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	printLine(os.Stderr, errIcon("✗"), name, msg)
}

// printWarn prints a warning line.
func printWarn(name, msg string) {
	printLine(os.Stdout, warnIcon("⚠"), name, msg)
}

// printSkip prints a skipped / not-applicable line.
func printSkip(name, msg string) {
	printLine(os.Stdout, dimIcon("○"), name, msg)
}

// printInfo prints a neutral informational line.
func printInfo(name, msg string) {
	printLine(os.Stdout, dimIcon("~"), name, msg)
}

func printLine(f *os.File, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(f, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(f, "  %s  [%s] %s\n", icon, name, msg)
	}
}
