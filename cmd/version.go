package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tradeassess", resolveVersion(version, buildVersion()))
	},
}

// resolveVersion prefers the ldflags version, then the module version
// recorded by `go install`, and canonicalizes whichever is valid semver.
func resolveVersion(ldflags, module string) string {
	for _, v := range []string{ldflags, module} {
		if semver.IsValid(v) {
			return semver.Canonical(v)
		}
	}
	return ldflags
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return ""
}
