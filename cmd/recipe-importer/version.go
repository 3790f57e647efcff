// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of recipe-importer",
	Long: `Version prints the release version, the VCS revision it was built from,
and the Go toolchain. A binary built without -ldflags reports the module
version recorded by go install, or "dev".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		b := buildVersion(version, info)
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Fprintln(cmd.OutOrStdout(), b.Version)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), b.String())
	},
}

// buildDetails is what the binary knows about its own build.
type buildDetails struct {
	Version   string
	Revision  string
	Modified  bool
	GoVersion string
}

func (b buildDetails) String() string {
	var extra []string
	if b.Revision != "" {
		rev := b.Revision
		if b.Modified {
			rev += "-dirty"
		}
		extra = append(extra, "rev "+rev)
	}
	if b.GoVersion != "" {
		extra = append(extra, b.GoVersion)
	}
	if len(extra) == 0 {
		return "recipe-importer " + b.Version
	}
	return fmt.Sprintf("recipe-importer %s (%s)", b.Version, strings.Join(extra, ", "))
}

// buildVersion merges the ldflags version with the embedded build info.
// info may be nil.
func buildVersion(ldflagsVersion string, info *debug.BuildInfo) buildDetails {
	b := buildDetails{Version: ldflagsVersion}
	if info == nil {
		return b
	}
	b.GoVersion = info.GoVersion
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = s.Value
			if len(b.Revision) > 12 {
				b.Revision = b.Revision[:12]
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}
