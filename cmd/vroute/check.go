package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/vango-dev/shellroute/internal/config"
	"github.com/vango-dev/shellroute/internal/errors"
	"github.com/vango-dev/shellroute/pkg/element"
	"github.com/vango-dev/shellroute/pkg/routing"
)

// placeholder stands in for the pages of the checked application.
type placeholder struct {
	element.Base
}

func checkCmd() *cobra.Command {
	var (
		configPath  string
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the routes listed in vroute.json",
		Long: `Register every route listed in the config file with a fresh registry
and report invalid names and names that collide.

The config file is found by walking up from the working directory unless
--config is given.

Examples:
  vroute check
  vroute check --config ./app/vroute.toml --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, showMetrics)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to vroute.json or vroute.toml")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print registry metrics after the check")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := config.FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return config.Load(root)
}

func runCheck(out, logOut io.Writer, cfg *config.Config, showMetrics bool) error {
	logger, err := cfg.Logger(logOut)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	if showMetrics {
		cfg.Metrics.Enabled = true
	}
	routes := routing.New(cfg.RegistryOptions(reg, logger)...)

	if len(cfg.Routes) == 0 {
		warn(out, "no routes listed in %s", cfg.Path())
		return nil
	}

	problems := 0
	seen := make(map[string]string, len(cfg.Routes))
	for _, name := range cfg.Routes {
		err := routes.RegisterRoute(name, routing.FactoryFunc(func() element.Element {
			return &placeholder{}
		}))
		if err != nil {
			problems++
			errorMsg(out, "%q: invalid route name", name)
			continue
		}

		key := name
		if cfg.FoldCase {
			key = strings.ToLower(name)
		}
		if first, ok := seen[key]; ok {
			problems++
			errorMsg(out, "%q collides with %q", name, first)
			continue
		}
		seen[key] = name
	}

	for _, route := range routes.Routes() {
		el, err := routes.GetOrCreateContent(route)
		if err != nil || el == nil {
			problems++
			errorMsg(out, "%q does not resolve", route)
			continue
		}
		success(out, "%s", routes.GetRoute(el))
	}

	if showMetrics {
		if err := printMetrics(out, reg); err != nil {
			return err
		}
	}

	if problems > 0 {
		return errors.New("R020").
			WithDetail(fmt.Sprintf("%d problem(s) in %d configured routes.", problems, len(cfg.Routes)))
	}
	info(out, "%d routes OK", routes.Len())
	return nil
}

// printMetrics writes counters and gauges as "name{labels} value" lines.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			value := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			lines = append(lines, fmt.Sprintf("%s %g", name, value))
		}
	}
	sort.Strings(lines)

	fmt.Fprintln(w)
	for _, line := range lines {
		info(w, "%s", line)
	}
	return nil
}
