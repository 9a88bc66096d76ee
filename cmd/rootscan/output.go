package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/rootscan/rootscan/roots"
)

// polishIterations caps the big-float Newton updates per root.
const polishIterations = 100

type result struct {
	Function   string           `json:"function"`
	Lower      float64          `json:"lower"`
	Upper      float64          `json:"upper"`
	Parameters roots.Parameters `json:"parameters"`
	Roots      []float64        `json:"roots"`
	Polished   []string         `json:"polished,omitempty"`
	Digest     string           `json:"digest"`
}

func newResult(function string, report roots.Report) *result {
	return &result{
		Function:   function,
		Lower:      report.Lower,
		Upper:      report.Upper,
		Parameters: report.Parameters,
		Roots:      report.Roots,
		Digest:     hex.EncodeToString(report.Roots.Digest()),
	}
}

// polish adds the decimal expansion of every root refined to prec bits.
func (r *result) polish(f roots.BigFunction, prec uint) {
	digits := int(math.Ceil(float64(prec) * math.Log10(2)))
	polished := roots.Polish(f, r.Roots, prec, polishIterations)
	r.Polished = make([]string, len(polished))
	for i, x := range polished {
		r.Polished[i] = formatBig(x, digits)
	}
}

func formatBig(x *big.Float, digits int) string {
	return x.Text('g', digits)
}

// formatRoot prints the shortest decimal representation of x that keeps a fractional part.
func formatRoot(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") && !math.IsInf(x, 0) && !math.IsNaN(x) {
		s += ".0"
	}
	return s
}

func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func (r *result) writeText(w io.Writer) error {

	items := make([]string, len(r.Roots))
	for i, x := range r.Roots {
		items[i] = formatRoot(x)
	}

	if _, err := fmt.Fprintln(w, formatList(items)); err != nil {
		return err
	}

	if r.Polished != nil {
		if _, err := fmt.Fprintln(w, formatList(r.Polished)); err != nil {
			return err
		}
	}

	return nil
}

func (r *result) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
