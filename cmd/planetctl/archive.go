package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"exolens/internal/nasa"
)

func newArchive(cmd *cobra.Command) *nasa.Client {
	base, _ := cmd.Flags().GetString("tap-url")
	return nasa.NewClient(nasa.Options{BaseURL: base})
}

func archiveContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 60*time.Second)
}

func addTapFlag(cmd *cobra.Command) {
	cmd.Flags().String("tap-url", "", "NASA Exoplanet Archive TAP endpoint")
}

func newSystemCmd(asJSON *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system [name]",
		Short: "List the planets of a system from the NASA archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			ctx, cancel := archiveContext(cmd)
			defer cancel()

			sys, err := newArchive(cmd).System(ctx, name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if *asJSON {
				return printJSON(out, sys)
			}
			fmt.Fprintf(out, "%s: %d planet(s)\n", sys.System, sys.Count)
			for _, p := range sys.Planets {
				fmt.Fprintf(out, "  %-24s r=%.2f R⊕  m=%.2f M⊕  P=%.2f d  a=%.4f AU  (%s)\n",
					p.Name, p.Radius, p.Mass, p.Period, p.Distance, p.Discovered)
			}
			return nil
		},
	}
	addTapFlag(cmd)
	return cmd
}

func newSearchCmd(asJSON *bool) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the NASA archive by star or planet name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := archiveContext(cmd)
			defer cancel()

			res, err := newArchive(cmd).Search(ctx, args[0], nasa.ParseSearchKind(kind))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if *asJSON {
				return printJSON(out, res)
			}
			if res.Message != "" {
				fmt.Fprintln(out, res.Message)
			}
			hosts := make([]string, 0, len(res.Results))
			for host := range res.Results {
				hosts = append(hosts, host)
			}
			sort.Strings(hosts)
			for _, host := range hosts {
				fmt.Fprintf(out, "%s (%d)\n", host, len(res.Results[host]))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", string(nasa.SearchStar), "match on star or planet")
	addTapFlag(cmd)
	return cmd
}

func newPopularCmd(asJSON *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Show the well-known systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := archiveContext(cmd)
			defer cancel()

			res, err := newArchive(cmd).PopularSystems(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if *asJSON {
				return printJSON(out, res)
			}
			for _, s := range res.Systems {
				fmt.Fprintf(out, "%-16s %d planet(s)\n", s.Hostname, s.PlanetCount)
			}
			return nil
		},
	}
	addTapFlag(cmd)
	return cmd
}
