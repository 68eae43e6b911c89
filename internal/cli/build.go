package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/planvista/topograph/pkg/builder"
	apperrors "github.com/planvista/topograph/pkg/errors"
	"github.com/planvista/topograph/pkg/graph"
	"github.com/planvista/topograph/pkg/inventory"
)

// newBuildCmd creates the build command: inventory files in, graph JSON out.
func newBuildCmd() *cobra.Command {
	var (
		output        string
		source        string
		flat          bool
		noDatacenters bool
		noClusters    bool
		noNormalize   bool
		spacing       float64
		columns       int
		statuses      []string
	)

	cmd := &cobra.Command{
		Use:   "build [inventory files...]",
		Short: "Transform inventory exports into a topology graph",
		Long: `Build reads one or more inventory export files (vSphere JSON exports or
hardware-pool catalogs), transforms each into a typed node/edge graph, and
merges them into one topology. Multiple files stack vertically in the layout
and merge with first-occurrence-wins identity.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			opts := builder.DefaultOptions()
			opts.IncludeDatacenters = !noDatacenters
			opts.IncludeClusters = !noClusters
			opts.NormalizeNames = !noNormalize
			opts.GroupByLocation = !flat
			opts.NodeSpacing = spacing
			opts.Columns = columns
			opts.IncludeStatuses = statuses

			sources := make([]builder.Source, 0, len(args))
			for _, path := range args {
				src, err := readSource(path, source)
				if err != nil {
					return err
				}
				sources = append(sources, src)
				logger.Debug("loaded inventory", "path", path, "kind", src.Kind)
			}

			res := builder.BuildSources(sources, opts)
			logger.Info("built topology",
				"nodes", len(res.Graph.Nodes),
				"edges", len(res.Graph.Edges),
				"collisions", len(res.Collisions),
			)
			for _, c := range res.Collisions {
				logger.Warn("id collision", "id", c.ID, "dropped", c.Dropped)
			}

			if output == "" || output == "-" {
				return graph.Write(res.Graph, cmd.OutOrStdout())
			}
			if err := graph.WriteFile(res.Graph, output); err != nil {
				return err
			}
			logger.Info("wrote graph", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&source, "source", "auto", "inventory source kind: auto, vsphere, or hardware")
	cmd.Flags().BoolVar(&flat, "flat", false, "flat placement instead of grouping hardware by location")
	cmd.Flags().BoolVar(&noDatacenters, "no-datacenters", false, "skip the datacenter level")
	cmd.Flags().BoolVar(&noClusters, "no-clusters", false, "skip the cluster level")
	cmd.Flags().BoolVar(&noNormalize, "no-normalize", false, "keep raw display names")
	cmd.Flags().Float64Var(&spacing, "spacing", 0, "node spacing (default: 200 for vsphere, 150 for hardware)")
	cmd.Flags().IntVar(&columns, "columns", 0, "grid width for grouped placement (default: 5)")
	cmd.Flags().StringSliceVar(&statuses, "statuses", nil, "availability allow-list for hardware sources")

	return cmd
}

// readSource loads one inventory file and resolves its source kind.
func readSource(path, kind string) (builder.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return builder.Source{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read inventory %s", path)
	}

	resolved, err := resolveKind(data, kind)
	if err != nil {
		return builder.Source{}, err
	}

	src := builder.Source{Kind: resolved}
	switch resolved {
	case inventory.SourceHardware:
		src.Hardware, err = inventory.DecodeHardware(bytes.NewReader(data))
	default:
		src.VSphere, err = inventory.DecodeVSphere(bytes.NewReader(data))
	}
	if err != nil {
		return builder.Source{}, apperrors.Wrap(apperrors.ErrCodeInvalidInventory, err, "parse %s", path)
	}
	return src, nil
}

// resolveKind maps the --source flag onto a source kind, sniffing the
// payload for "auto".
func resolveKind(data []byte, kind string) (inventory.SourceKind, error) {
	switch kind {
	case "auto", "":
		return inventory.DetectSource(data), nil
	case string(inventory.SourceVSphere):
		return inventory.SourceVSphere, nil
	case string(inventory.SourceHardware):
		return inventory.SourceHardware, nil
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidSource,
			"unknown source %q (available: auto, vsphere, hardware)", kind)
	}
}
