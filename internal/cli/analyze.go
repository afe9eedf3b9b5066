package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/report"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	rule    string // "pareto", "slater" or "" for both
	asJSON  bool   // print the JSON report instead of text
	showAll bool   // list every dominator, not only the first
}

// analyzeCommand creates the analyze command, which prints the verdicts.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Classify alternatives by Pareto and Slater dominance",
		Long: `Classify every alternative by weak (Pareto) and strict (Slater) dominance.

Prints one line per alternative for each rule, a side-by-side comparison
table, the derived sets and the Pareto frontier. All criteria are maximized.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return c.runAnalyze(cmd.Context(), args, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.rule, "rule", "", "only show one rule: pareto, slater")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the JSON report")
	cmd.Flags().BoolVar(&opts.showAll, "all-dominators", false, "list every dominator of each alternative")
	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, args []string, cfg Config, opts analyzeOpts) error {
	logger := loggerFromContext(ctx)

	rules := dominance.Rules
	if opts.rule != "" {
		r, err := dominance.ParseRule(strings.ToLower(opts.rule))
		if err != nil {
			return err
		}
		rules = []dominance.Rule{r}
	}

	set, source, err := loadDataset(ctx, args, cfg)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	a, err := c.newRunner().Analyze(ctx, set)
	if err != nil {
		return err
	}
	prog.done("Classified alternatives", "alternatives", set.Len())

	w := c.stdout()
	if opts.asJSON {
		data, err := report.Marshal(a)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if source == referenceSource {
		printInfo(w, "No dataset given, using the reference table")
	}
	printTitle(w, "Dataset")
	printStats(w, source, set.Len(), set.Dim())
	printNewline(w)

	for _, r := range rules {
		printRule(w, a, r, opts.showAll)
		printNewline(w)
	}

	if len(rules) == len(dominance.Rules) {
		printTitle(w, "Comparison")
		fmt.Fprintln(w, renderTable(report.Table(a)))
		printNewline(w)
	}

	printSets(w, a)
	return nil
}

func printRule(w io.Writer, a *dominance.Analysis, r dominance.Rule, showAll bool) {
	title := "Pareto (weak dominance)"
	if r == dominance.Slater {
		title = "Slater (strict dominance)"
	}
	printTitle(w, title)

	verdicts := a.Verdicts(r)
	for i, line := range report.Summary(a.Set, verdicts, r) {
		if v := verdicts[i]; showAll && !v.Optimal {
			line += StyleDim.Render("  (all: " + report.FormatIDs(dominance.Dominators(a.Set, r, v.ID)) + ")")
		}
		printVerdict(w, line)
	}
}

func printSets(w io.Writer, a *dominance.Analysis) {
	cmp := a.Compare()

	var frontier []string
	for _, alt := range a.Frontier() {
		frontier = append(frontier, alt.Label())
	}
	frontierLine := "—"
	if len(frontier) > 0 {
		frontierLine = strings.Join(frontier, " "+iconArrow+" ")
	}

	printTitle(w, "Sets")
	printKeyValue(w, "Pareto-optimal", report.FormatIDs(a.ParetoOptimal()))
	printKeyValue(w, "Slater-optimal", report.FormatIDs(a.SlaterOptimal()))
	printKeyValue(w, "Both", report.FormatIDs(cmp.Both))
	printKeyValue(w, "Slater only", report.FormatIDs(cmp.SlaterOnly))
	printKeyValue(w, "Pareto only", report.FormatIDs(cmp.ParetoOnly))
	printKeyValue(w, "Frontier", frontierLine)
	if len(cmp.ParetoOnly) == 0 {
		printSuccess(w, "Every Pareto-optimal alternative is also Slater-optimal")
	}
}
