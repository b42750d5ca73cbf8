package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/anybox/box"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	inlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	heapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

func main() {
	var (
		filter      = flag.String("filter", "", "Only show types whose name or storage contains this")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log operation record creation")
		width       = flag.Int("width", 0, "Table width (default: terminal width)")
		round       = flag.Bool("round", false, "Run a construct/copy/move/swap round per type")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		box.SetLogger(logger)
	}

	samples := filterSamples(catalogue(), *filter)

	if *interactive {
		if err := runInteractive(samples); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(samples) == 0 {
		fmt.Fprintln(os.Stderr, "no types match", strconv.Quote(*filter))
		os.Exit(1)
	}

	fmt.Println(render(samples, *round, terminalWidth(*width)))
}

func terminalWidth(override int) int {
	if override > 0 {
		return override
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 0
}

func render(samples []sample, withRound bool, width int) string {
	headers := []string{"type", "size", "align", "pure", "cloner", "dropper", "storage", "ops"}
	if withRound {
		headers = append(headers, "round")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 6 && row >= 0 && row < len(samples) {
				if samples[row].desc.Storage == box.StorageInline {
					return inlineStyle.Padding(0, 1)
				}
				return heapStyle.Padding(0, 1)
			}
			return cellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}

	for _, s := range samples {
		row := []string{
			s.name,
			strconv.FormatUint(uint64(s.desc.Size), 10),
			strconv.FormatUint(uint64(s.desc.Align), 10),
			strconv.FormatBool(s.desc.Pure),
			strconv.FormatBool(s.desc.Cloner),
			strconv.FormatBool(s.desc.Dropper),
			s.desc.Storage.String(),
			fmt.Sprintf("%p", s.ops()),
		}
		if withRound {
			stats, err := s.round()
			if err != nil {
				row = append(row, errorStyle.Render(err.Error()))
			} else {
				row = append(row, stats.String())
			}
		}
		t = t.Row(row...)
	}

	return t.Render()
}
