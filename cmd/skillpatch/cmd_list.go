package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gw1tools/gw1builds/internal/patch"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered patches",
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	for _, p := range patch.All() {
		fmt.Fprintf(out, "%-14s %s  %d field edits across %d skills, %d description changes\n",
			p.Name, p.Date, p.FieldEdits(), len(p.Mechanical), len(p.Descriptions))
		fmt.Fprintf(out, "               %s\n", p.Summary)
		fmt.Fprintf(out, "               %s\n", p.Source)
	}
}
