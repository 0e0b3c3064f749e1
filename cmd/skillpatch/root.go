// Skill data patcher: applies balance updates to the JSON skill files.
//
// Usage:
//
//	go run ./cmd/skillpatch apply 20260205 20260205-pvp
//	go run ./cmd/skillpatch apply --dry-run 20260205
//	go run ./cmd/skillpatch list
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "skillpatch",
	Short: "Apply balance patches to the Guild Wars skill data files",
	Long: "Skillpatch rewrites skilldata.json and skilldesc-en.json according to\n" +
		"registered balance updates. A patch is applied all-or-nothing: if any\n" +
		"change fails, neither file is written.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
