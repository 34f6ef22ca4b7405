// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/katalvlaran/flowsearch/matrix"
	"github.com/spf13/cobra"
)

func newDistancesCmd(a *app) *cobra.Command {
	var (
		all           bool
		start, method string
	)
	cmd := &cobra.Command{
		Use:   "distances <file|->",
		Short: "Print shortest walking distances between relevant nodes",
		Long: `Distances prints the all-pairs shortest-path table restricted to the
start node and the activatable sources, or to every node with --all.
Unreachable pairs are shown as "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("start") {
				start = a.cfg.Start
			}
			g, err := a.loadGraph(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			d, err := buildDistances(g, method)
			if err != nil {
				return err
			}

			ids := g.Nodes()
			if !all {
				var sel []string
				if g.HasNode(start) {
					sel = append(sel, start)
				}
				for _, id := range g.Activatable() {
					if id != start {
						sel = append(sel, id)
					}
				}
				ids = sel
			}

			headers := append([]string{""}, ids...)
			rows := make([][]string, 0, len(ids))
			for _, from := range ids {
				row := []string{from}
				for _, to := range ids {
					dist, err := d.Between(from, to)
					if err != nil {
						return err
					}
					if dist == matrix.Unreachable {
						row = append(row, "-")
						continue
					}
					row = append(row, strconv.Itoa(dist))
				}
				rows = append(rows, row)
			}

			return formatTable(cmd.OutOrStdout(), headers, rows)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include every node, not just the start and sources")
	cmd.Flags().StringVar(&start, "start", "AA", "Start node ID")
	cmd.Flags().StringVar(&method, "method", "floyd", "Distance builder: floyd|bfs")

	return cmd
}
