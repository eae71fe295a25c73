package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/retree/pkg/types"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	summaryStyle = lipgloss.NewStyle().Faint(true)
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Renderer writes rename results in a chosen format
type Renderer struct {
	w      io.Writer
	format Format
}

// NewRenderer creates a Renderer for w. FormatAuto resolves against
// the writer when it is a file, and falls back to plain text.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		} else {
			format = FormatText
		}
	}
	return &Renderer{w: w, format: format}
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

// RenderResults writes the (source, destination) pairs. The dry flag
// only changes the wording of the summary line.
func (r *Renderer) RenderResults(results []types.RenameResult, dry bool) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(results, dry)
	case FormatTerminal:
		return r.renderTerminal(results, dry)
	default:
		return r.renderText(results)
	}
}

type jsonResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Changed     bool   `json:"changed"`
}

type jsonReport struct {
	DryRun  bool         `json:"dry_run"`
	Results []jsonResult `json:"results"`
}

func (r *Renderer) renderJSON(results []types.RenameResult, dry bool) error {
	report := jsonReport{
		DryRun:  dry,
		Results: make([]jsonResult, 0, len(results)),
	}
	for _, res := range results {
		report.Results = append(report.Results, jsonResult{
			Source:      res.Source,
			Destination: res.Destination,
			Changed:     res.Source != res.Destination,
		})
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func (r *Renderer) renderText(results []types.RenameResult) error {
	for _, res := range results {
		if _, err := fmt.Fprintf(r.w, "%s -> %s\n", res.Source, res.Destination); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderTerminal(results []types.RenameResult, dry bool) error {
	rows := pterm.TableData{{
		headerStyle.Render("Source"),
		headerStyle.Render("Destination"),
	}}
	changed := 0
	for _, res := range results {
		destination := res.Destination
		if res.Source != res.Destination {
			destination = changedStyle.Render(destination)
			changed++
		}
		rows = append(rows, []string{res.Source, destination})
	}

	if err := pterm.DefaultTable.
		WithWriter(r.w).
		WithHasHeader().
		WithData(rows).
		Render(); err != nil {
		return err
	}

	verb := "renamed"
	if dry {
		verb = "planned"
	}
	summary := summaryStyle.Render(
		fmt.Sprintf("%d files, %d %s", len(results), changed, verb))
	_, err := fmt.Fprintln(r.w, summary)
	return err
}
