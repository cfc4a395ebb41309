// Package report renders detection results for humans and machines.
package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/dsnscout/dsnscout/internal/detect"
	"github.com/dsnscout/dsnscout/internal/dsn"
	"github.com/dsnscout/dsnscout/internal/types"
)

var (
	foundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	dsnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

type PrintOptions struct {
	NoColor      bool
	ShowSource   bool
	FromCache    bool
	Duration     time.Duration
	FilesScanned int
}

// PrintDetection writes the human-readable result for a found DSN.
func PrintDetection(w io.Writer, d *types.Detection, opts PrintOptions) {
	header := "DSN found"
	if opts.FromCache {
		header += " (cached)"
	}
	value := d.DSN
	if !opts.NoColor {
		header = foundStyle.Render(header)
		value = dsnStyle.Render(value)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+value)
	fmt.Fprintln(w)
	printField(w, "Source", d.Path, opts.NoColor)
	printField(w, "Detector", d.Detector, opts.NoColor)
	if dsn.IsHosted(d.DSN) {
		printField(w, "Hosted", "sentry.io (SaaS)", opts.NoColor)
	}
	if opts.ShowSource {
		if line, n := sourceLine(d.Path, d.DSN); line != "" {
			fmt.Fprintln(w)
			loc := fmt.Sprintf("%s:%d", d.Path, n)
			if !opts.NoColor {
				loc = dimStyle.Render(loc)
				line = highlightLine(line, d.Path)
			}
			fmt.Fprintf(w, "  %s\n  %s\n", loc, strings.TrimRight(line, "\r\n"))
		}
	}
	printFooter(w, opts)
}

// PrintAbsence writes the human-readable result for an exhausted scan.
// Absence is an answer, not an error, so this goes to stdout.
func PrintAbsence(w io.Writer, opts PrintOptions) {
	msg := "No DSN found"
	if !opts.NoColor {
		msg = missStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
	printFooter(w, opts)
}

func printField(w io.Writer, key, val string, noColor bool) {
	if !noColor {
		key = keyStyle.Render(key)
	}
	fmt.Fprintf(w, "  %s: %s\n", key, val)
}

func printFooter(w io.Writer, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return
	}
	fmt.Fprintln(w)
	line := fmt.Sprintf("Files scanned: %d  Duration: %.2fs", opts.FilesScanned, opts.Duration.Seconds())
	if !opts.NoColor {
		line = dimStyle.Render(line)
	}
	fmt.Fprintln(w, line)
}

type jsonResult struct {
	Found     bool   `json:"found"`
	DSN       string `json:"dsn,omitempty"`
	Path      string `json:"path,omitempty"`
	Detector  string `json:"detector,omitempty"`
	Hosted    bool   `json:"hosted,omitempty"`
	FromCache bool   `json:"from_cache,omitempty"`
}

// WriteJSON emits the machine-readable result. d may be nil when no DSN was
// found.
func WriteJSON(w io.Writer, d *types.Detection, fromCache bool) error {
	res := jsonResult{FromCache: fromCache}
	if d != nil {
		res.Found = true
		res.DSN = d.DSN
		res.Path = d.Path
		res.Detector = d.Detector
		res.Hosted = dsn.IsHosted(d.DSN)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// DetectorTable renders the registered detectors as a table.
func DetectorTable(w io.Writer, detectors []detect.Detector) {
	table := tablewriter.NewWriter(w)
	table.Header("Detector", "Extensions", "Skipped dirs")
	for _, d := range detectors {
		_ = table.Append([]string{d.Name, strings.Join(d.Extensions, " "), strings.Join(d.SkipDirs, " ")})
	}
	_ = table.Render()
}

// sourceLine finds the first line of path containing the DSN value. Returns
// an empty string when the file cannot be read or the value moved.
func sourceLine(path, value string) (string, int) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	n := 0
	for sc.Scan() {
		n++
		if strings.Contains(sc.Text(), value) {
			return sc.Text(), n
		}
	}
	return "", 0
}

func highlightLine(line string, filename string) string {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		ext := filepath.Ext(filename)
		if ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		return line
	}

	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return line
	}
	return strings.TrimRight(buf.String(), "\n")
}
