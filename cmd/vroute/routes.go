package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/shellroute/internal/errors"
	"github.com/vango-dev/shellroute/pkg/routing"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <route>...",
		Short: "Check route names",
		Long: `Check that each argument may be registered as a route.

Examples:
  vroute validate home settings
  vroute validate "orders/detail"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			invalid := 0
			for _, name := range args {
				if routing.ValidateRoute(name) {
					success(out, "%s", name)
					continue
				}
				invalid++
				errorMsg(out, "%q contains invalid characters or is not 1-100 characters long", name)
			}
			if invalid > 0 {
				return errors.New("R001").
					WithDetail(fmt.Sprintf("%d of %d routes are invalid.", invalid, len(args)))
			}
			return nil
		},
	}
}

func implicitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "implicit <route>...",
		Short: "Print the implicit form of routes",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range args {
				fmt.Fprintln(cmd.OutOrStdout(), routing.GenerateImplicitRoute(name))
			}
		},
	}
}

func compareCmd() *cobra.Command {
	var foldCase bool

	cmd := &cobra.Command{
		Use:   "compare <route> <explicit-route>",
		Short: "Compare a possibly implicit route with an explicit one",
		Long: `Compare a route, which may carry the IMPL_ prefix, with an explicit route.

Examples:
  vroute compare IMPL_home home
  vroute compare --fold-case Home home`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if routing.IsImplicit(args[1]) {
				return errors.New("R003").WithSubject(args[1])
			}

			routes := routing.New(routing.WithFoldCase(foldCase))
			equal, implicit := routes.CompareRoutes(args[0], args[1])

			out := cmd.OutOrStdout()
			if equal {
				success(out, "%s matches %s", args[0], args[1])
			} else {
				errorMsg(out, "%s does not match %s", args[0], args[1])
			}
			info(out, "implicit: %v", implicit)
			return nil
		},
	}

	cmd.Flags().BoolVar(&foldCase, "fold-case", false, "Ignore case when comparing")

	return cmd
}
