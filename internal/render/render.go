// SPDX-License-Identifier: MIT

// Package render turns model results into terminal text (lipgloss tables,
// bars and sparklines) or machine-readable JSON and CSV.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "text", "json" or "csv"; empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("render: unknown format %q (want text, json or csv)", s)
	}
}

// Report is one model result that knows its three renditions.
type Report interface {
	// Text renders the styled terminal view.
	Text() string
	// Data returns the value marshaled for JSON output.
	Data() any
	// Table returns the CSV header and rows.
	Table() (header []string, rows [][]string)
}

// Write renders r to w in format f.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatText, "":
		_, err := io.WriteString(w, r.Text()+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Data())
	case FormatCSV:
		header, rows := r.Table()
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
		return cw.Error()
	default:
		return fmt.Errorf("render: unknown format %q", f)
	}
}

// jsonFloat is a float64 that encodes NaN and ±Inf as JSON null.
type jsonFloat float64

// MarshalJSON implements json.Marshaler.
func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(v)
}

func jsonFloats(vs []float64) []jsonFloat {
	out := make([]jsonFloat, len(vs))
	for i, v := range vs {
		out[i] = jsonFloat(v)
	}

	return out
}

// num formats a float for CSV cells with the shortest exact representation.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// fixed formats a float for text cells.
func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
