package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"whynosound/internal/diagnose"
	"whynosound/internal/probes"
)

func newChecksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the diagnostic checks in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][4]string, 0, len(diagnose.KnownChecks()))
			for _, probe := range probes.All(nil, probes.Tools{}) {
				id := probe.ID()
				rows = append(rows, [4]string{
					strconv.Itoa(id.Rank() + 1),
					string(id),
					id.DisplayName(),
					probe.Description(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderChecksTable(rows))
			return nil
		},
	}
}
