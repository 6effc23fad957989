package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-runewidth"

	"github.com/orderx-go/orderx/builder"
	"github.com/orderx-go/orderx/loader"
	"github.com/orderx-go/orderx/output"
	"github.com/orderx-go/orderx/schema"
)

type BuildCmd struct {
	File    string `help:"YAML order description filename." arg:"" type:"existingfile"`
	Output  string `help:"Output filename (stdout if omitted)." short:"o"`
	Force   bool   `help:"Overwrite the output file without asking." short:"f"`
	Watch   bool   `help:"Rebuild whenever the description file changes (requires --output)." short:"w"`
	Summary bool   `help:"Print a line summary after building." default:"true" negatable:""`
}

func (cmd *BuildCmd) Run(ctx *kong.Context, globals *Globals) error {
	if cmd.Watch && cmd.Output == "" {
		printError(ctx.Stderr, "--watch requires --output")
		return NewCommandError(1)
	}

	if err := cmd.buildOnce(ctx, true); err != nil {
		return err
	}
	if !cmd.Watch {
		return nil
	}
	return cmd.watch(ctx)
}

// buildOnce loads the description and writes the document. The overwrite
// prompt only runs on the first build; watch-mode rebuilds overwrite
// silently.
func (cmd *BuildCmd) buildOnce(ctx *kong.Context, confirmOverwrite bool) error {
	b, err := loader.Load(cmd.File)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	if cmd.Output == "" {
		content, err := b.Content()
		if err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
		_, _ = ctx.Stdout.Write(content)
		return nil
	}

	if confirmOverwrite && !cmd.Force {
		if _, err := os.Stat(cmd.Output); err == nil {
			ok, err := promptYesNo(fmt.Sprintf("Overwrite %s?", cmd.Output))
			if err != nil {
				return err
			}
			if !ok {
				printInfof(ctx.Stderr, "aborted, %s left untouched", cmd.Output)
				return nil
			}
		}
	}

	if err := b.WriteFile(cmd.Output); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	printSuccess(ctx.Stderr, fmt.Sprintf("wrote %s", cmd.Output))
	if cmd.Summary {
		printLineSummary(ctx.Stderr, b)
	}
	return nil
}

// watch rebuilds the output whenever the description file changes.
// Editors often replace files in multiple steps, so events are debounced
// and the watch is re-added after rename/remove.
func (cmd *BuildCmd) watch(ctx *kong.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cmd.File); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	printInfof(ctx.Stderr, "watching %s, press Ctrl-C to stop", cmd.File)

	const debounceDelay = 100 * time.Millisecond
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				// Atomic saves replace the file; make sure it is watched again.
				_ = watcher.Add(cmd.File)
				if err := cmd.buildOnce(ctx, false); err != nil {
					printError(ctx.Stderr, fmt.Sprintf("rebuild failed: %v", err))
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}

// printLineSummary prints one row per order line with the totals column
// right-aligned. Widths are measured with runewidth so names with wide
// runes stay aligned.
func printLineSummary(w io.Writer, b *builder.Builder) {
	doc := b.Document()
	lines := doc.Transaction.LineItems
	if len(lines) == 0 {
		return
	}

	styles := output.NewStyles(w)
	currency := doc.Transaction.Settlement.OrderCurrencyCode

	nameWidth := 0
	totalWidth := 0
	for _, line := range lines {
		if line.Product != nil {
			nameWidth = max(nameWidth, runewidth.StringWidth(line.Product.Name))
		}
		totalWidth = max(totalWidth, runewidth.StringWidth(lineTotal(line)))
	}

	for _, line := range lines {
		name := ""
		if line.Product != nil {
			name = line.Product.Name
		}
		total := lineTotal(line)
		pad := strings.Repeat(" ", totalWidth-runewidth.StringWidth(total))
		_, _ = fmt.Fprintf(w, "  %s %s  %s%s %s\n",
			styles.LineID(fmt.Sprintf("%4s", line.LineDocument.LineID)),
			runewidth.FillRight(name, nameWidth),
			pad,
			styles.Amount(total),
			styles.Dim(currency),
		)
	}
}

func lineTotal(line *schema.SupplyChainTradeLineItem) string {
	if line.Settlement == nil || line.Settlement.Summation == nil || line.Settlement.Summation.LineTotalAmount == nil {
		return "-"
	}
	return line.Settlement.Summation.LineTotalAmount.Value
}
