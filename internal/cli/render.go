package cli

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/frontier/pkg/errors"
	"github.com/matzehuels/frontier/pkg/pipeline"
	"github.com/matzehuels/frontier/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output directory
	charts  []string // chart names, see pipeline.Charts
	formats []string // output formats: svg, png, pdf, json, dot
	width   float64  // chart width in pixels
	height  float64  // chart height in pixels
	scale   float64  // PNG scale factor
	rule    string   // relation drawn in the relations chart
	reduced bool     // drop transitively implied arrows
}

// renderCommand creates the render command for writing chart files.
//
// Default settings:
//   - charts: all six
//   - format: svg
//   - size: 1000x700px, PNG scale 2x
//   - output: current directory (or FRONTIER_OUTPUT_DIR)
func (c *CLI) renderCommand() *cobra.Command {
	var chartsStr, formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render dominance charts to SVG, PNG or PDF",
		Long: `Render the dominance charts of a dataset into a directory.

Charts:
  all         every alternative            -> all_alternatives.<fmt>
  pareto      Pareto-optimal set           -> pareto_set.<fmt>
  slater      Slater-optimal set           -> slater_set.<fmt>
  comparison  both sets side by side       -> comparison.<fmt>
  frontier    Pareto frontier line         -> pareto_frontier.<fmt>
  relations   one arrow per dominance pair -> dominance_relations.<fmt>

The json format writes a single report.json; dot applies to relations only.
PNG and PDF output requires rsvg-convert (librsvg).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts.charts = splitList(chartsStr)
			opts.formats = splitList(formatsStr)
			opts.applyConfig(cfg)
			return c.runRender(cmd.Context(), args, cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: FRONTIER_OUTPUT_DIR or .)")
	cmd.Flags().StringVarP(&chartsStr, "charts", "c", "", "chart(s) to render, comma-separated (default: all)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "chart width in pixels (default 1000)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "chart height in pixels (default 700)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.rule, "rule", pipeline.DefaultRule, "relation drawn in the relations chart: pareto, slater")
	cmd.Flags().BoolVar(&opts.reduced, "reduced", false, "drop relation arrows implied by other arrows")

	return cmd
}

// applyConfig fills unset flags from the environment.
func (o *renderOpts) applyConfig(cfg Config) {
	if o.output == "" {
		o.output = cfg.OutputDir
	}
	if len(o.charts) == 0 {
		o.charts = cfg.Charts
	}
	if len(o.formats) == 0 {
		o.formats = cfg.Formats
	}
	if o.width == 0 {
		o.width = cfg.Width
	}
	if o.height == 0 {
		o.height = cfg.Height
	}
}

func (o *renderOpts) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Charts:  o.charts,
		Formats: o.formats,
		Width:   o.width,
		Height:  o.height,
		Scale:   o.scale,
		Rule:    o.rule,
		Reduced: o.reduced,
	}
}

func (c *CLI) runRender(ctx context.Context, args []string, cfg Config, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	w := c.stdout()

	if opts.output == "" {
		opts.output = "."
	}
	if err := errors.ValidateOutputDir(opts.output); err != nil {
		return err
	}

	pOpts := opts.pipelineOptions()
	pOpts.Logger = logger
	if err := pOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if formats, dropped := availableFormats(pOpts.Formats); len(dropped) > 0 {
		if len(formats) == 0 {
			return errors.New(errors.ErrCodeToolNotFound,
				"%v export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", dropped)
		}
		printWarning(w, "rsvg-convert not found, skipping %v", dropped)
		pOpts.Formats = formats
	}

	set, source, err := loadDataset(ctx, args, cfg)
	if err != nil {
		return err
	}
	logger.Infof("Rendering %s", source)

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, set, pOpts)
	if err != nil {
		return err
	}
	prog.done("Rendered charts", "artifacts", len(result.Artifacts))

	paths, err := writeArtifacts(opts.output, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess(w, "Wrote %d files to %s", len(paths), opts.output)
	for _, p := range paths {
		printFile(w, p)
	}
	return nil
}

// availableFormats splits formats into those that can be produced and those
// that need the missing rsvg-convert tool.
func availableFormats(formats []string) (ok, dropped []string) {
	if render.ConverterAvailable() {
		return formats, nil
	}
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			dropped = append(dropped, f)
		} else {
			ok = append(ok, f)
		}
	}
	return ok, dropped
}

// writeArtifacts writes every artifact into dir under its file name and
// returns the written paths in sorted order.
func writeArtifacts(dir string, artifacts map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
	}

	keys := make([]string, 0, len(artifacts))
	for k := range artifacts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	paths := make([]string, 0, len(keys))
	for _, k := range keys {
		path := filepath.Join(dir, pipeline.FileName(k))
		if err := os.WriteFile(path, artifacts[k], 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
