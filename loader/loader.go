// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowsearch/core"
)

// Sentinel errors. Parse wraps them with the offending line number.
var (
	// ErrEmptyInput indicates that no records were found.
	ErrEmptyInput = errors.New("loader: no valve records")

	// ErrMalformedRecord indicates a line that does not match the record grammar.
	ErrMalformedRecord = errors.New("loader: malformed record")

	// ErrDuplicateRecord indicates the same valve declared twice.
	ErrDuplicateRecord = errors.New("loader: duplicate valve record")

	// ErrDanglingEdge indicates a tunnel to a valve that has no record.
	ErrDanglingEdge = errors.New("loader: tunnel to undeclared valve")
)

var recordRx = regexp.MustCompile(`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves?\s*(.*)$`)

// record is one parsed line before graph construction.
type record struct {
	line    int
	id      string
	value   int
	targets []string
}

// Parse reads valve records from r and builds the graph.
//
// Implementation:
//   - Stage 1: Scan lines, match the record grammar, reject duplicates.
//   - Stage 2: Register every node with its value.
//   - Stage 3: Add edges; a target without a record is ErrDanglingEdge.
//
// Complexity: O(L + E) for L lines and E tunnel references.
func Parse(r io.Reader) (*core.Graph, error) {
	var (
		recs []record
		seen = make(map[string]int)
		sc   = bufio.NewScanner(r)
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rec, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec.line = line
		if prev, dup := seen[rec.id]; dup {
			return nil, fmt.Errorf("line %d: valve %s first declared on line %d: %w", line, rec.id, prev, ErrDuplicateRecord)
		}
		seen[rec.id] = line
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrEmptyInput
	}

	g := core.NewGraph()
	for _, rec := range recs {
		if err := g.AddNode(rec.id, rec.value); err != nil {
			return nil, fmt.Errorf("line %d: %w", rec.line, err)
		}
	}
	for _, rec := range recs {
		for _, to := range rec.targets {
			if _, ok := seen[to]; !ok {
				return nil, fmt.Errorf("line %d: %s → %s: %w", rec.line, rec.id, to, ErrDanglingEdge)
			}
			if err := g.AddEdge(rec.id, to); err != nil {
				return nil, fmt.Errorf("line %d: %w", rec.line, err)
			}
		}
	}

	return g, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*core.Graph, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func parseRecord(text string) (record, error) {
	m := recordRx.FindStringSubmatch(text)
	if m == nil {
		return record{}, fmt.Errorf("%q: %w", text, ErrMalformedRecord)
	}
	value, err := strconv.Atoi(m[2])
	if err != nil {
		return record{}, fmt.Errorf("flow rate %q: %w", m[2], ErrMalformedRecord)
	}
	rec := record{id: m[1], value: value}
	if list := strings.TrimSpace(m[3]); list != "" {
		for _, part := range strings.Split(list, ",") {
			to := strings.TrimSpace(part)
			if to == "" {
				return record{}, fmt.Errorf("empty tunnel target in %q: %w", text, ErrMalformedRecord)
			}
			rec.targets = append(rec.targets, to)
		}
	}

	return rec, nil
}

// Format writes g in canonical record form: nodes and neighbors sorted.
func Format(w io.Writer, g *core.Graph) error {
	if g == nil {
		return errors.New("loader: nil graph")
	}
	bw := bufio.NewWriter(w)
	for _, id := range g.Nodes() {
		n, err := g.Node(id)
		if err != nil {
			return err
		}
		nbs, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		if len(nbs) == 1 {
			_, err = fmt.Fprintf(bw, "Valve %s has flow rate=%d; tunnel leads to valve %s\n", id, n.Value, nbs[0])
		} else {
			_, err = fmt.Fprintf(bw, "Valve %s has flow rate=%d; tunnels lead to valves %s\n", id, n.Value, strings.Join(nbs, ", "))
		}
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}
