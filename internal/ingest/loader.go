// Package ingest loads helpdesk CSV exports into ticket collections,
// binding columns by header name rather than position.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/jszwec/csvutil"

	"github.com/spec-kit/ticket-reports/internal/domain"
)

// Labels for the two export sources.
const (
	SourceActive = "active"
	SourceClosed = "closed"
)

// ErrMissingColumn indicates a required header column is absent.
var ErrMissingColumn = errors.New("missing required column")

// requiredColumns must appear in every export. Team is optional; some
// exports omit it.
var requiredColumns = []string{"Requester", "Assignee", "Status", "Last Modified Date"}

// record binds one CSV row by header name.
type record struct {
	Requester    string `csv:"Requester"`
	Assignee     string `csv:"Assignee"`
	Status       string `csv:"Status"`
	Team         string `csv:"Team"`
	LastModified string `csv:"Last Modified Date"`
}

// Collection is the outcome of loading one CSV export.
type Collection struct {
	Label         string
	Path          string
	Rows          []domain.Ticket
	HasTeamColumn bool
	CoercedTimes  int
}

// Load reads one export file. Unparseable last-modified cells are
// coerced to nil rather than failing the load; a missing file or a
// missing required column fails it.
func Load(path, label string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	col, err := decode(f, label)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	col.Path = path
	return col, nil
}

func decode(r io.Reader, label string) (*Collection, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	header := dec.Header()
	for _, name := range requiredColumns {
		if !slices.Contains(header, name) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	col := &Collection{
		Label:         label,
		HasTeamColumn: slices.Contains(header, "Team"),
	}
	for {
		var rec record
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}

		row := domain.Ticket{
			Requester:       rec.Requester,
			Assignee:        rec.Assignee,
			Status:          rec.Status,
			Team:            rec.Team,
			RawLastModified: rec.LastModified,
		}
		if raw := strings.TrimSpace(rec.LastModified); raw != "" {
			if ts, perr := dateparse.ParseAny(raw); perr == nil {
				row.LastModified = &ts
			} else {
				col.CoercedTimes++
			}
		}
		col.Rows = append(col.Rows, row)
	}
	return col, nil
}
