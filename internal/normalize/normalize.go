// Package normalize merges the two ticket exports into one labeled
// collection: team filter, recency filter, timezone strip, resolved
// reclassification, labeling, concatenation. The order is fixed and
// load-bearing; reclassified rows are deliberately not re-checked
// against the recency cutoff.
package normalize

import (
	"strings"
	"time"

	"github.com/spec-kit/ticket-reports/internal/domain"
)

// Input is one source collection entering normalization.
type Input struct {
	Rows    []domain.Ticket
	HasTeam bool
}

// Params pins the matching literals and the clock for one run.
type Params struct {
	Team   string
	Window time.Duration
	Now    time.Time
}

// Result is the merged collection with per-step counts.
type Result struct {
	// Tickets holds surviving active rows first, then closed rows,
	// insertion order preserved within each group.
	Tickets       []domain.Ticket
	ActiveCount   int
	ClosedCount   int
	Reclassified  int
	TeamFiltered  int
	WindowDropped int
}

// Merge runs the normalization sequence over the two collections.
// Inputs are never mutated.
func Merge(active, closed Input, p Params) *Result {
	res := &Result{}

	activeRows := filterTeam(active, p.Team)
	closedRows := filterTeam(closed, p.Team)
	res.TeamFiltered = (len(active.Rows) - len(activeRows)) + (len(closed.Rows) - len(closedRows))

	// Recency applies to closed rows only, on true instants, so rows
	// carrying UTC offsets are judged before the strip discards them.
	cutoff := p.Now.Add(-p.Window)
	recent := make([]domain.Ticket, 0, len(closedRows))
	for _, row := range closedRows {
		if row.LastModified != nil && !row.LastModified.Before(cutoff) {
			recent = append(recent, row)
		}
	}
	res.WindowDropped = len(closedRows) - len(recent)

	stripZones(activeRows)
	stripZones(recent)

	remaining := activeRows[:0]
	for _, row := range activeRows {
		if strings.Contains(strings.ToLower(row.Status), "resolved") {
			recent = append(recent, row)
			res.Reclassified++
			continue
		}
		remaining = append(remaining, row)
	}

	for i := range remaining {
		remaining[i].StatusType = domain.StatusTypeActive
	}
	for i := range recent {
		recent[i].StatusType = domain.StatusTypeClosed
	}

	res.ActiveCount = len(remaining)
	res.ClosedCount = len(recent)
	res.Tickets = append(remaining, recent...)
	return res
}

// filterTeam keeps matching rows when the source carried a Team
// column. The returned slice is always a fresh copy.
func filterTeam(in Input, team string) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(in.Rows))
	for _, row := range in.Rows {
		if in.HasTeam && row.Team != team {
			continue
		}
		out = append(out, row)
	}
	return out
}

// stripZones rewrites each timestamp as the same wall-clock reading in
// UTC. The clock fields are kept as parsed, never shifted.
func stripZones(rows []domain.Ticket) {
	for i, row := range rows {
		if row.LastModified == nil {
			continue
		}
		t := row.LastModified
		u := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
		rows[i].LastModified = &u
	}
}
