package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

var flagVersionJSON bool

// buildInfo is the version command's JSON shape.
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show prodfinder version and build information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&flagVersionJSON, "json", false, "Print build information as JSON")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := buildInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	w := cmd.OutOrStdout()
	if flagVersionJSON {
		return writeJSON(w, info)
	}
	fmt.Fprintf(w, "prodfinder %s\n", info.Version)
	fmt.Fprintf(w, "  commit:   %s\n", emptyAsNA(info.Commit))
	fmt.Fprintf(w, "  built:    %s\n", emptyAsNA(info.BuildDate))
	fmt.Fprintf(w, "  go:       %s\n", info.GoVersion)
	fmt.Fprintf(w, "  platform: %s\n", info.Platform)
	return nil
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
