package briefing

import (
	"errors"
	"io"
	"strings"
)

// ErrNoBriefings is returned when an export is attempted with nothing cached.
var ErrNoBriefings = errors.New("no briefings to export")

var csvHeader = []string{
	"Competitor",
	"Product Line",
	"Feature/Update",
	"Summary",
	"PM Analysis",
	"Source URL",
	"Processed At",
}

// WriteCSV renders briefings as a UTF-8 comma-delimited document: a fixed
// header row, then one row per briefing in input order. Every value is
// double-quote-enclosed with embedded quotes doubled, which also keeps
// embedded commas and newlines inside their field. Empty fields export as
// the placeholder, matching what the dashboard displays.
func WriteCSV(w io.Writer, briefings []Briefing) error {
	if len(briefings) == 0 {
		return ErrNoBriefings
	}

	if err := writeCSVRow(w, csvHeader); err != nil {
		return err
	}
	for _, b := range briefings {
		d := b.Display()
		row := []string{
			d.Competitor,
			d.ProductLine,
			d.FeatureUpdate,
			d.Summary,
			d.PMAnalysis,
			d.SourceURL,
			d.ProcessedAt,
		}
		if err := writeCSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
