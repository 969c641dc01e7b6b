package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	apperrors "github.com/matzehuels/metcollection/pkg/errors"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputTOML = "toml"
)

var validOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
	OutputTOML: true,
}

// validateOutput checks that format is a supported --output value.
func validateOutput(format string) error {
	if !validOutputs[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid output format: %q (must be text, json or toml)", format)
	}
	return nil
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTOML encodes v as a TOML document. v must encode to a table, so
// callers wrap lists in a struct or map.
func writeTOML(w io.Writer, v any) error {
	return toml.NewEncoder(w).Encode(v)
}

// writeStructured writes v in a machine-readable format. It reports false
// for text output, which each command renders itself.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case OutputJSON:
		return true, writeJSON(w, v)
	case OutputTOML:
		return true, writeTOML(w, v)
	default:
		return false, nil
	}
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable renders rows under headers with rounded borders.
func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// limitIDs returns at most limit ids. A limit of 0 or less returns all.
func limitIDs(ids []int, limit int) []int {
	if limit <= 0 || len(ids) <= limit {
		return ids
	}
	return ids[:limit]
}

// idRows lays ids out as single-column table rows.
func idRows(ids []int) [][]string {
	rows := make([][]string, len(ids))
	for i, id := range ids {
		rows[i] = []string{strconv.Itoa(id)}
	}
	return rows
}
