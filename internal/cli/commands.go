package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/internal/config"
	"github.com/aretw0/algotrace/internal/presentation/player"
	"github.com/aretw0/algotrace/internal/presentation/tui"
	"github.com/aretw0/algotrace/pkg/complexity"
	"github.com/aretw0/algotrace/pkg/domain"
)

// PlotHeight is the row count of counter plots.
const PlotHeight = 10

// MemoryHistoryHint follows an empty listing from the in-memory store, which
// starts empty in every process.
const MemoryHistoryHint = "The memory history store only lives for one process; set history.driver to sqlite or redis to keep executions between runs."

// RunOptions contains the configuration of the run command.
type RunOptions struct {
	Algorithm string
	Values    []int
	Target    *int
	JSON      bool
	Play      bool
	Plot      bool
}

// RunAlgorithm executes one algorithm and presents the trace.
func RunAlgorithm(ctx context.Context, app *App, w io.Writer, opts RunOptions) error {
	exec, err := app.Engine.Execute(ctx, algotrace.ExecuteRequest{
		Algorithm: opts.Algorithm,
		Array:     opts.Values,
		Target:    opts.Target,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exec)
	}

	if opts.Play {
		meta := domain.Metadata{ID: exec.AlgorithmType, Name: exec.AlgorithmName, Category: exec.Category}
		return player.Run(exec.Steps, meta)
	}

	fmt.Fprintf(w, "%s (%s)\n", exec.AlgorithmName, exec.Category)
	if err := tui.RenderTrace(w, exec.Steps, tui.Profile(w)); err != nil {
		return err
	}
	if opts.Plot {
		if plot := tui.PlotCounters(exec.Steps, PlotHeight, tui.Profile(w)); plot != "" {
			fmt.Fprintf(w, "\n%s\n", plot)
		}
	}
	return nil
}

// ShowComplexity prints the complexity table, or the analysis of one
// algorithm when size is positive.
func ShowComplexity(ctx context.Context, app *App, w io.Writer, algorithm string, size int) error {
	if algorithm == "" {
		tui.ComplexityTable(w, app.Engine.Algorithms())
		return nil
	}

	if size <= 0 {
		meta, err := app.Engine.Metadata(algorithm)
		if err != nil {
			return err
		}
		info, err := complexity.Lookup(meta.ID)
		if err != nil {
			return err
		}
		tui.ComplexityTable(w, []complexity.Info{info})
		return nil
	}

	analysis, err := app.Engine.Analyze(ctx, algorithm, size)
	if err != nil {
		return err
	}
	return writeMarkdown(w, tui.ComplexityReport(analysis))
}

// ShowHistory prints the most recent executions.
func ShowHistory(ctx context.Context, app *App, w io.Writer, algorithm string, limit int) error {
	page, err := app.Engine.History(ctx, domain.HistoryFilter{
		AlgorithmType: domain.AlgorithmID(algorithm),
		Limit:         limit,
	})
	if err != nil {
		return err
	}
	if len(page.Entries) == 0 {
		fmt.Fprintln(w, "No executions recorded.")
		if app.Config.History.Driver == config.DriverMemory {
			fmt.Fprintln(w, MemoryHistoryHint)
		}
		return nil
	}
	tui.HistoryTable(w, page.Entries)
	fmt.Fprintf(w, "Showing %d of %d executions\n", len(page.Entries), page.Total)
	return nil
}

// AskAssistant forwards a question to the assistant and prints the answer.
func AskAssistant(ctx context.Context, app *App, w io.Writer, query, algorithmContext string) error {
	answer, err := app.Engine.Ask(ctx, query, algorithmContext)
	if err != nil {
		return err
	}
	return writeMarkdown(w, answer.Response)
}

// writeMarkdown renders markdown on terminals and writes it verbatim elsewhere.
func writeMarkdown(w io.Writer, md string) error {
	if !tui.IsTerminal(w) {
		_, err := io.WriteString(w, md)
		return err
	}
	render, err := tui.NewRenderer(tui.Width(w))
	if err != nil {
		return err
	}
	out, err := render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// ParseValues reads integers from arguments. Each argument may hold several
// values separated by commas or spaces.
func ParseValues(args []string) ([]int, error) {
	values := []int{}
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: not an integer", f)
			}
			values = append(values, v)
		}
	}
	return values, nil
}
