package cli

import (
	"github.com/spf13/cobra"

	"github.com/planvista/topograph/pkg/graph"
)

// newMergeCmd creates the merge command: graph files in, one graph out.
func newMergeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge [graph files...]",
		Short: "Combine previously built graph files into one topology",
		Long: `Merge reads graph JSON files in the given order and combines them with
first-occurrence-wins identity: when two files carry a node with the same id,
the file listed first keeps its version. Merge order therefore matters.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			graphs := make([]graph.Graph, 0, len(args))
			for _, path := range args {
				g, err := graph.ReadFile(path)
				if err != nil {
					return err
				}
				graphs = append(graphs, g)
				logger.Debug("loaded graph", "path", path, "nodes", len(g.Nodes))
			}

			merged, collisions := graph.Merge(graphs...)
			logger.Info("merged graphs",
				"sources", len(graphs),
				"nodes", len(merged.Nodes),
				"collisions", len(collisions),
			)
			for _, c := range collisions {
				logger.Warn("id collision", "id", c.ID, "dropped", c.Dropped)
			}

			if output == "" || output == "-" {
				return graph.Write(merged, cmd.OutOrStdout())
			}
			return graph.WriteFile(merged, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
