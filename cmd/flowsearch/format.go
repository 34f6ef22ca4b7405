// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

func formatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func formatTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			width := 0
			if i < len(widths) {
				width = widths[i]
			}
			parts[i] = fmt.Sprintf("%*s", width, cell)
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := printRow(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := printRow(row); err != nil {
			return err
		}
	}

	return nil
}

// formatSolveText prints the total, then per-agent plans when showPlan is set.
func formatSolveText(w io.Writer, out solveOutput, showPlan bool) error {
	if _, err := fmt.Fprintln(w, out.Value); err != nil {
		return err
	}
	if !showPlan {
		return nil
	}
	for i, ag := range out.Agents {
		fmt.Fprintf(w, "agent %d (%s, %d min): %d\n", i+1, ag.Start, ag.Budget, ag.Value)
		for _, st := range ag.Plan {
			fmt.Fprintf(w, "  minute %2d  %-4s +%d\n", st.Minute, st.Node, st.Gain)
		}
	}
	if out.Partial {
		fmt.Fprintln(w, "(partial: search stopped before every split was tried)")
	}

	return nil
}
