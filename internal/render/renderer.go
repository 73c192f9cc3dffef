// Package render writes the chart artifacts consumed by the report
// document. A chart whose view is empty is skipped, never an error.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spec-kit/ticket-reports/internal/domain"
)

// Artifact file names under the charts directory.
const (
	StoresPieFile = "stores_pie.png"
	TopStoresFile = "top_stores.png"
	TechsFile     = "techs.png"
)

// Chart pixel density, matching the document's print sizing.
const chartDPI = 150

// Artifact describes one rendered chart.
type Artifact struct {
	Name   string
	Path   string
	Groups int
}

// Result reports what was rendered and what was skipped.
type Result struct {
	Rendered []Artifact
	Skipped  []string
}

// Renderer writes the chart artifacts for one run.
type Renderer struct {
	dir         string
	windowLabel string
}

// NewRenderer returns a renderer writing into dir. windowLabel names
// the recency window in chart titles, e.g. "Last 7 Days".
func NewRenderer(dir, windowLabel string) *Renderer {
	return &Renderer{dir: dir, windowLabel: windowLabel}
}

// RenderAll produces the pie, store bar, and technician bar artifacts.
// The charts directory is created up front; existing artifacts are
// overwritten.
func (r *Renderer) RenderAll(views domain.SummaryViews) (*Result, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create charts dir %s: %w", r.dir, err)
	}

	res := &Result{}

	if len(views.TopStores) == 0 {
		res.Skipped = append(res.Skipped, StoresPieFile)
	} else {
		path := filepath.Join(r.dir, StoresPieFile)
		title := fmt.Sprintf("Top 10 Stores - Closed Tickets (%s)", r.windowLabel)
		if err := renderPie(path, title, views.TopStores); err != nil {
			return nil, fmt.Errorf("render %s: %w", StoresPieFile, err)
		}
		res.Rendered = append(res.Rendered, Artifact{Name: StoresPieFile, Path: path, Groups: len(views.TopStores)})
	}

	if len(views.TopStoresWide) == 0 {
		res.Skipped = append(res.Skipped, TopStoresFile)
	} else {
		path := filepath.Join(r.dir, TopStoresFile)
		spec := barSpec{
			title:  fmt.Sprintf("Top 15 Stores by Closed Tickets (%s)", r.windowLabel),
			xLabel: "Number of Closed Tickets",
			yLabel: "Store",
			color:  storeBarColor,
			width:  12,
			height: 8,
		}
		if err := renderBars(path, spec, views.TopStoresWide); err != nil {
			return nil, fmt.Errorf("render %s: %w", TopStoresFile, err)
		}
		res.Rendered = append(res.Rendered, Artifact{Name: TopStoresFile, Path: path, Groups: len(views.TopStoresWide)})
	}

	if len(views.Technicians) == 0 {
		res.Skipped = append(res.Skipped, TechsFile)
	} else {
		path := filepath.Join(r.dir, TechsFile)
		spec := barSpec{
			title:  fmt.Sprintf("Closed Tickets by Assignee (%s)", r.windowLabel),
			xLabel: "Number of Closed Tickets",
			yLabel: "Assignee",
			color:  techBarColor,
			width:  10,
			height: 6,
		}
		if err := renderBars(path, spec, views.Technicians); err != nil {
			return nil, fmt.Errorf("render %s: %w", TechsFile, err)
		}
		res.Rendered = append(res.Rendered, Artifact{Name: TechsFile, Path: path, Groups: len(views.Technicians)})
	}

	return res, nil
}
