package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"skillnet/app"
	"skillnet/internal/config"
	"skillnet/internal/ui"
	"skillnet/viz/graph"
)

func graphCmd(g *globalFlags) *cobra.Command {
	var edges bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the generated network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			sc, seed, err := app.BuildScene(cfg, g.seed)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			gr := sc.Graph

			ui.Banner(w, "network")
			rows := make([][]string, 0, sc.Len())
			for i, n := range sc.Nodes {
				active := ui.Subtle.Sprint("·")
				if gr.Active(i) {
					active = ui.Accent.Sprint("●")
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					n.Label,
					active,
					strconv.Itoa(gr.Degree(i)),
					strconv.Itoa(gr.HubDegree(i)),
				})
			}
			ui.Table(w, []string{"#", "LABEL", "HUB", "DEG", "HUB DEG"}, rows)

			if edges {
				fmt.Fprintln(w)
				erows := make([][]string, 0, len(gr.Edges))
				for i, e := range gr.Edges {
					erows = append(erows, []string{
						strconv.Itoa(i),
						sc.Nodes[e.A].Label,
						sc.Nodes[e.B].Label,
					})
				}
				ui.Table(w, []string{"#", "FROM", "TO"}, erows)
			}

			s := graph.Summarize(gr)
			fmt.Fprintln(w)
			ui.KV(w, "Seed", seed)
			ui.KV(w, "Nodes", s.Nodes)
			ui.KV(w, "Active", s.Active)
			ui.KV(w, "Edges", s.Edges)
			ui.KV(w, "Degree", fmt.Sprintf("%d..%d", s.MinDegree, s.MaxDegree))
			ui.KV(w, "Max hub deg", s.MaxHubDegree)
			ui.KV(w, "Components", s.Components)
			ui.KV(w, "Isolated", fmt.Sprintf("%d %s", s.Isolated, ui.StatusIcon(s.Isolated == 0)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&edges, "edges", false, "Also list every edge in insertion order.")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print an example config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.Example())
			return err
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.DefaultPath())
		},
	})
	return cmd
}
