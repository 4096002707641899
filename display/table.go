package display

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/fuzzy"
)

// SetColor toggles ANSI styling for all pterm output
func SetColor(enabled bool) {
	if enabled {
		pterm.EnableStyling()
		return
	}
	pterm.DisableStyling()
}

// RenderTable writes header and rows to w as an aligned table
func RenderTable(w io.Writer, header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// Sign classifies a value as positive, negative or unknown
func Sign(b *fuzzy.Bool) string {
	switch {
	case b.IsPositive():
		return "positive"
	case b.IsNegative():
		return "negative"
	default:
		return "unknown"
	}
}

// FormatTruth renders a truth value with an explicit sign, e.g. "+0.54"
func FormatTruth(truth float64) string {
	return fmt.Sprintf("%+.2f", truth)
}

// FormatBool converts a trigger result to yes/no
func FormatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
