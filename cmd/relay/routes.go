package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goran-ethernal/SolanaRelay/pkg/relay"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the relayed routes and their upstream paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRoutes(cmd.OutOrStdout(), relay.Routes())
	},
}

// printRoutes writes one line per route: local path, upstream path and accepted query parameters.
func printRoutes(w io.Writer, routes []relay.Route) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		color.CyanString("ROUTE"),
		color.CyanString("GET"),
		color.CyanString("UPSTREAM"),
		color.CyanString("QUERY"),
	)

	for _, route := range routes {
		params := make([]string, 0, len(route.Params))
		for _, p := range route.Params {
			params = append(params, p.Name)
		}

		query := "-"
		if len(params) > 0 {
			query = strings.Join(params, ", ")
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			color.GreenString(route.Name),
			route.Path,
			color.YellowString(route.UpstreamPath),
			query,
		)
	}

	return tw.Flush()
}
