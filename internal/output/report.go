// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/staranto/eulergo/internal/config"
	"github.com/staranto/eulergo/internal/filters"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "yaml"}

// Status values reported for a problem run.
const (
	StatusSolved   = "solved"
	StatusUnsolved = "unsolved"
	StatusFailed   = "failed"
)

// Row is one problem's line in a run report.
type Row struct {
	Problem int    `json:"problem" yaml:"problem"`
	Name    string `json:"name" yaml:"name"`
	Status  string `json:"status" yaml:"status"`
	// ExitCode is the failed child's status; zero for every other row.
	ExitCode int           `json:"exit_code,omitempty" yaml:"exit_code,omitempty"`
	Answer   string        `json:"answer,omitempty" yaml:"answer,omitempty"`
	Elapsed  time.Duration `json:"elapsed_ns" yaml:"-"`
	// Elapsed rendered for humans; yaml carries only this form.
	Took string `json:"-" yaml:"elapsed"`
}

// Options controls how a report is rendered.
type Options struct {
	Format string
	Filter string
	Sort   string
	Titles bool
	Color  bool
}

// ColorDefault reports whether colored output suits w when the user has not
// asked either way.
func ColorDefault(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Render writes rows to w in the requested format, dropping rows that fail
// opts.Filter. Surviving rows are sorted in place.
func Render(w io.Writer, rows []Row, opts Options) error {
	rows, err := FilterRows(rows, opts.Filter)
	if err != nil {
		return err
	}
	if err := SortRows(rows, opts.Sort); err != nil {
		return err
	}
	for i := range rows {
		rows[i].Took = rows[i].Elapsed.Round(time.Microsecond).String()
	}

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
	case "text", "":
		TableWriter(w, rows, opts)
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", opts.Format, Formats)
	}
	return nil
}

// FilterRows keeps the rows matching every expression in spec. Keys are the
// JSON field names of Row, so "status=failed" or "elapsed_ns>1000000".
func FilterRows(rows []Row, spec string) ([]Row, error) {
	fs := filters.BuildFilters(spec)
	if len(fs) == 0 {
		return rows, nil
	}

	kept := rows[:0:0]
	for _, r := range rows {
		raw, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal row %s: %w", r.Name, err)
		}
		if filters.Match(gjson.ParseBytes(raw), fs) {
			kept = append(kept, r)
		}
	}
	log.Debugf("filter %q kept %d of %d rows", spec, len(kept), len(rows))
	return kept, nil
}

// SortRows orders rows by a comma-separated list of keys. A leading '-'
// sorts that key descending. Valid keys are problem, name, status, answer and
// elapsed. An empty spec sorts by problem number.
func SortRows(rows []Row, spec string) error {
	if spec == "" {
		spec = "problem"
	}

	type key struct {
		name string
		desc bool
	}
	var keys []key
	for _, k := range strings.Split(spec, ",") {
		k = strings.TrimSpace(k)
		desc := strings.HasPrefix(k, "-")
		k = strings.TrimPrefix(k, "-")
		switch k {
		case "problem", "name", "status", "answer", "elapsed":
		default:
			return fmt.Errorf("unknown sort key %q", k)
		}
		keys = append(keys, key{k, desc})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for _, k := range keys {
			c := compareRows(rows[i], rows[j], k.name)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return nil
}

func compareRows(a, b Row, key string) int {
	switch key {
	case "problem":
		return a.Problem - b.Problem
	case "elapsed":
		switch {
		case a.Elapsed < b.Elapsed:
			return -1
		case a.Elapsed > b.Elapsed:
			return 1
		}
		return 0
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "status":
		return strings.Compare(a.Status, b.Status)
	default:
		return strings.Compare(a.Answer, b.Answer)
	}
}

// TableWriter renders the report in a tabular form honoring color and titles
// options.
func TableWriter(w io.Writer, rows []Row, opts Options) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)
	log.Debugf("padding: %v", pad)

	var data [][]string
	for _, r := range rows {
		answer := r.Answer
		if answer == "" {
			answer = "-"
		}
		status := r.Status
		if r.ExitCode != 0 {
			status = fmt.Sprintf("%s (exit %d)", status, r.ExitCode)
		}
		data = append(data, []string{r.Name, status, answer, r.Took})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Rows(data...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("problem", "status", "answer", "elapsed").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
