// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/flowsearch/config"
	"github.com/katalvlaran/flowsearch/coordinator"
	"github.com/katalvlaran/flowsearch/metrics"
	"github.com/katalvlaran/flowsearch/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type solveOutput struct {
	Value      int           `json:"value"`
	Agents     []agentOutput `json:"agents"`
	Partitions int64         `json:"partitions,omitempty"`
	Partial    bool          `json:"partial"`
	RunID      string        `json:"run_id,omitempty"`
}

type agentOutput struct {
	Start   string              `json:"start"`
	Budget  int                 `json:"budget"`
	Value   int                 `json:"value"`
	Sources []string            `json:"sources"`
	Plan    []search.Activation `json:"plan"`
}

func newSolveCmd(a *app) *cobra.Command {
	def := config.Default()
	var (
		agents, budget, agentBudget int
		workers, maxSources         int
		start, format, metricsFile  string
		method                      string
		timeout                     time.Duration
		showPlan                    bool
	)
	cmd := &cobra.Command{
		Use:   "solve <file|->",
		Short: "Compute the best total for one or more agents",
		Long: `Solve reads a valve network and prints the largest total value.

With one agent the budget is --budget; with more agents the sources are
split between them and each gets --agent-budget minutes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			flags := cmd.Flags()
			if flags.Changed("agents") {
				cfg.Agents = agents
			}
			if flags.Changed("budget") {
				cfg.Budget = budget
			}
			if flags.Changed("agent-budget") {
				cfg.AgentBudget = agentBudget
			}
			if flags.Changed("start") {
				cfg.Start = start
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("max-sources") {
				cfg.MaxSources = maxSources
			}
			if flags.Changed("timeout") {
				cfg.Timeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if format != "text" && format != "json" {
				return fmt.Errorf("--format must be text or json, got %q", format)
			}

			g, err := a.loadGraph(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			d, err := buildDistances(g, method)
			if err != nil {
				return err
			}
			p, err := search.NewProblem(g, d, cfg.Start,
				search.WithMaxSources(cfg.MaxSources),
				search.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			m := metrics.New(reg)

			ctx := cmd.Context()
			if cfg.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
				defer cancel()
			}

			var out solveOutput
			if cfg.Agents == 1 {
				out = solveSingle(p, cfg.Budget, m)
			} else {
				out, err = solveMulti(ctx, p, &cfg, m, a.log)
				if err != nil {
					return err
				}
			}

			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}

			w := cmd.OutOrStdout()
			if format == "json" {
				return formatJSON(w, out)
			}
			return formatSolveText(w, out, showPlan)
		},
	}
	cmd.Flags().IntVar(&agents, "agents", def.Agents, "Number of agents")
	cmd.Flags().IntVar(&budget, "budget", def.Budget, "Minutes for a single agent")
	cmd.Flags().IntVar(&agentBudget, "agent-budget", def.AgentBudget, "Minutes per agent when --agents > 1")
	cmd.Flags().StringVar(&start, "start", def.Start, "Start node ID")
	cmd.Flags().IntVar(&workers, "workers", def.Workers, "Coordinator workers (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&maxSources, "max-sources", def.MaxSources, "Refuse inputs with more activatable sources")
	cmd.Flags().DurationVar(&timeout, "timeout", def.Timeout, "Stop multi-agent search after this long and report the best so far (0 = no limit)")
	cmd.Flags().StringVar(&method, "method", "floyd", "Distance builder: floyd|bfs")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|json")
	cmd.Flags().BoolVar(&showPlan, "plan", false, "Print the activation order in text output")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")

	return cmd
}

func solveSingle(p *search.Problem, budget int, m *metrics.Metrics) solveOutput {
	memo := search.NewMemo()
	started := time.Now()
	plan := p.Plan(memo, p.Start(), budget, p.Universe())

	st := memo.Stats()
	m.AddWork(st.Expanded, st.Hits, 0)
	m.ObserveSolve(metrics.ModeSingle, time.Since(started), false)

	return solveOutput{
		Value: plan.Value,
		Agents: []agentOutput{{
			Start:   p.StartID(),
			Budget:  budget,
			Value:   plan.Value,
			Sources: p.Sources(),
			Plan:    plan.Steps,
		}},
	}
}

func solveMulti(ctx context.Context, p *search.Problem, cfg *config.Config, m *metrics.Metrics, log *logrus.Logger) (solveOutput, error) {
	c, err := coordinator.New(p,
		coordinator.WithWorkers(cfg.Workers),
		coordinator.WithLogger(log),
		coordinator.WithMetrics(m),
	)
	if err != nil {
		return solveOutput{}, err
	}
	res, err := c.MaximizeMultiAgent(ctx, cfg.Agents, cfg.AgentBudget)
	if err != nil {
		return solveOutput{}, err
	}

	out := solveOutput{
		Value:      res.Value,
		Partitions: res.Partitions,
		Partial:    res.Partial,
		RunID:      res.RunID,
	}
	memo := search.NewMemo()
	for _, set := range res.Assignment {
		plan := p.Plan(memo, p.Start(), cfg.AgentBudget, set)
		out.Agents = append(out.Agents, agentOutput{
			Start:   p.StartID(),
			Budget:  cfg.AgentBudget,
			Value:   plan.Value,
			Sources: p.Names(set),
			Plan:    plan.Steps,
		})
	}

	return out, nil
}
