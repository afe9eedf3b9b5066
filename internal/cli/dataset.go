package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/frontier/pkg/dataset"
	"github.com/matzehuels/frontier/pkg/dominance"
)

// referenceSource names the built-in dataset in output.
const referenceSource = "reference"

// loadDataset resolves the dataset to analyze: the argument if given, then
// FRONTIER_DATASET, then the built-in reference table.
func loadDataset(ctx context.Context, args []string, cfg Config) (*dominance.Set, string, error) {
	logger := loggerFromContext(ctx)

	path := cfg.Dataset
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		logger.Debug("using reference dataset")
		return dataset.Reference(), referenceSource, nil
	}

	set, err := dataset.Load(path)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("loaded dataset", "path", path, "alternatives", set.Len(), "criteria", set.Dim())
	return set, path, nil
}

// datasetCommand creates the dataset command, which prints the active dataset.
func (c *CLI) datasetCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dataset [file]",
		Short: "Print the active dataset",
		Long: `Print the active dataset in TOML, YAML or JSON.

Without a file argument this prints the built-in reference table, which is a
convenient starting point for a dataset of your own:

  frontier dataset --format yaml > alternatives.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := dataset.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			set, _, err := loadDataset(cmd.Context(), args, cfg)
			if err != nil {
				return err
			}
			return dataset.Write(c.stdout(), set, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(dataset.FormatTOML), fmt.Sprintf("output format: %v", dataset.Formats))
	return cmd
}
