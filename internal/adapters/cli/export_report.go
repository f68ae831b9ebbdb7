package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"
)

type cliOutputWithColors interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

type ReportFile struct {
	Path string
	Kind string
}

type ReportError struct {
	Route   string
	Message string
	Details []string
}

// ExportReport summarizes one export pass: the files written and any
// failure that stopped it.
type ExportReport struct {
	colors     cliOutputWithColors
	out        io.Writer
	startTime  time.Time
	routeCount int
	outputDir  string
	files      []ReportFile
	warnings   []string
	errors     []ReportError
}

func NewExportReport(colors cliOutputWithColors, out io.Writer, outputDir string) *ExportReport {
	return &ExportReport{
		colors:    colors,
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *ExportReport) SetRouteCount(count int) {
	r.routeCount = count
}

func (r *ExportReport) AddFile(path, kind string) {
	if rel, err := filepath.Rel(r.outputDir, path); err == nil {
		path = rel
	}
	r.files = append(r.files, ReportFile{Path: filepath.ToSlash(path), Kind: kind})
}

func (r *ExportReport) AddWarning(message string) {
	r.warnings = append(r.warnings, message)
}

func (r *ExportReport) AddError(route, message string, details []string) {
	r.errors = append(r.errors, ReportError{Route: route, Message: message, Details: details})
}

func (r *ExportReport) HasFailures() bool {
	return len(r.errors) > 0
}

func (r *ExportReport) Render() {
	r.render(time.Since(r.startTime))
}

func (r *ExportReport) render(duration time.Duration) {
	fmt.Fprintf(r.out, "  "+r.colors.Green("✓ ")+"%d routes found\n", r.routeCount)

	if len(r.files) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "  Generated files:")
		for _, f := range r.files {
			fmt.Fprintf(r.out, "    %s %s\n", f.Path, r.colors.Gray("("+f.Kind+")"))
		}
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  "+r.colors.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		for _, w := range deduplicateStrings(r.warnings) {
			fmt.Fprintf(r.out, "    %s\n", w)
		}
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  "+r.colors.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		for _, e := range r.errors {
			fmt.Fprintf(r.out, "  %s %s\n", r.colors.Red("✗"), e.Route)
			fmt.Fprintf(r.out, "    %s\n", e.Message)
			for _, detail := range deduplicateStrings(e.Details) {
				fmt.Fprintf(r.out, "      • %s\n", detail)
			}
		}
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  %s\n", r.colors.Red(fmt.Sprintf("Export failed after %s", formatDuration(duration))))
	} else {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  "+r.colors.Green("✓ ")+"Export complete in %s\n", formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(r.out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings keeps first-seen order and annotates repeats.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	seen := make(map[string]int)
	var order []string
	for _, item := range items {
		if seen[item] == 0 {
			order = append(order, item)
		}
		seen[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if count := seen[item]; count > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, count))
		} else {
			result = append(result, item)
		}
	}
	return result
}
