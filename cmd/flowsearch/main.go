// SPDX-License-Identifier: MIT

// Command flowsearch solves valve-activation puzzles from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/flowsearch/config"
	"github.com/katalvlaran/flowsearch/core"
	"github.com/katalvlaran/flowsearch/loader"
	"github.com/katalvlaran/flowsearch/matrix"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("flowsearch version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("flowsearch version %s-dev", version)
}

// app carries state shared by every subcommand.
type app struct {
	cfgPath  string
	logLevel string
	cfg      *config.Config
	log      *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "flowsearch",
		Short:        "flowsearch: plan valve activations over a tunnel network",
		Version:      versionString(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML config file (env: FLOWSEARCH_*)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newDistancesCmd(a))
	root.AddCommand(newGenerateCmd(a))

	return root
}

// setup loads configuration and the logger. Flag precedence is applied by
// each subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log = cfg.NewLogger(cmd.ErrOrStderr())

	return nil
}

// loadGraph parses path, or standard input when path is "-".
func (a *app) loadGraph(in io.Reader, path string) (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	if path == "-" {
		g, err = loader.Parse(in)
	} else {
		g, err = loader.ParseFile(path)
	}
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"input": path,
		"nodes": g.NodeCount(),
		"edges": g.EdgeCount(),
	}).Debug("graph loaded")

	return g, nil
}

// buildDistances runs the distance builder named by method.
func buildDistances(g *core.Graph, method string) (*matrix.Distances, error) {
	switch method {
	case "floyd":
		return matrix.Build(g)
	case "bfs":
		return matrix.BuildBFS(g)
	default:
		return nil, fmt.Errorf("--method must be floyd or bfs, got %q", method)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
