package analysis_test

import (
	"fmt"
	"testing"

	"github.com/spec-kit/ticket-reports/internal/analysis"
	"github.com/spec-kit/ticket-reports/internal/config"
	"github.com/spec-kit/ticket-reports/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.ReportConfig {
	return config.ReportConfig{
		Team:               "IT Helpdesk",
		WindowDays:         7,
		StoreCatalog:       []string{"Jenkins", "Hyden", "Harlan 1", "Harlan 2", "Isom"},
		ExcludedRequesters: []string{"Jacob Sexton"},
		RequesterAliases:   []config.Alias{{From: "Isom Deli", To: "Isom"}},
		TechnicianNames:    []string{"Jacob", "Richard", "Jon", "Rick"},
	}
}

func closedT(requester, assignee string) domain.Ticket {
	return domain.Ticket{Requester: requester, Assignee: assignee, StatusType: domain.StatusTypeClosed}
}

func TestBuildUsesClosedRowsOnly(t *testing.T) {
	b := analysis.NewBuilder(testConfig())

	res := b.Build([]domain.Ticket{
		{Requester: "Jenkins kiosk", StatusType: domain.StatusTypeActive},
		closedT("Jenkins kiosk", ""),
	})

	assert.Equal(t, 1, res.ClosedTotal)
	require.Len(t, res.Views.TopStores, 1)
	assert.Equal(t, domain.GroupCount{Name: "Jenkins kiosk", Count: 1}, res.Views.TopStores[0])
}

func TestBuildExclusionIsWholeValueMatch(t *testing.T) {
	tests := map[string]struct {
		requester string
		excluded  bool
	}{
		"ExactName":      {requester: "Jacob Sexton", excluded: true},
		"DifferentCase":  {requester: "jacob SEXTON", excluded: true},
		"SubstringOnly":  {requester: "Jacob Sexton Jr", excluded: false},
		"UnrelatedJacob": {requester: "Jacob", excluded: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			b := analysis.NewBuilder(testConfig())
			res := b.Build([]domain.Ticket{closedT(tc.requester, "")})

			if tc.excluded {
				assert.Zero(t, res.ClosedTotal)
				assert.Equal(t, 1, res.Excluded)
			} else {
				assert.Equal(t, 1, res.ClosedTotal)
				assert.Zero(t, res.Excluded)
			}
		})
	}
}

func TestBuildAliasRewrite(t *testing.T) {
	b := analysis.NewBuilder(testConfig())

	res := b.Build([]domain.Ticket{closedT("ISOM DELI - Register 2", "")})

	// The matched span is rewritten to its canonical form and the row
	// then matches the Isom catalog entry.
	assert.Equal(t, 1, res.StoreMatched)
	require.Len(t, res.Views.TopStores, 1)
	assert.Equal(t, "Isom - Register 2", res.Views.TopStores[0].Name)
}

func TestBuildAliasTreatsPatternLiterally(t *testing.T) {
	cfg := testConfig()
	cfg.StoreCatalog = []string{"Catnip (Nicholasville)", "Catnip"}
	cfg.RequesterAliases = []config.Alias{{From: "Catnip (Nicholasville)", To: "Catnip"}}
	b := analysis.NewBuilder(cfg)

	res := b.Build([]domain.Ticket{closedT("CATNIP (NICHOLASVILLE) kiosk", "")})

	require.Len(t, res.Views.TopStores, 1)
	assert.Equal(t, "Catnip kiosk", res.Views.TopStores[0].Name)
}

func TestBuildTopStoresGroupByLiteralRequester(t *testing.T) {
	b := analysis.NewBuilder(testConfig())

	rows := []domain.Ticket{
		closedT("Jenkins A", ""),
		closedT("Jenkins B", ""),
		closedT("Jenkins A", ""),
		closedT("Hyden front desk", ""),
		closedT("Jenkins B", ""),
		closedT("Jenkins A", ""),
		closedT("Hyden front desk", ""),
		closedT("Some Person", ""), // no catalog match, invisible to store views
	}
	res := b.Build(rows)

	assert.Equal(t, 7, res.StoreMatched)
	assert.Equal(t, []domain.GroupCount{
		{Name: "Jenkins A", Count: 3},
		{Name: "Jenkins B", Count: 2},
		{Name: "Hyden front desk", Count: 2},
	}, res.Views.TopStores)
}

func TestBuildTopViewTruncation(t *testing.T) {
	b := analysis.NewBuilder(testConfig())

	var rows []domain.Ticket
	for i := 1; i <= 12; i++ {
		rows = append(rows, closedT(fmt.Sprintf("Jenkins unit %d", i), ""))
	}
	res := b.Build(rows)

	assert.Len(t, res.Views.TopStores, 10)
	assert.Len(t, res.Views.TopStoresWide, 12)
	for i := 1; i < len(res.Views.TopStoresWide); i++ {
		assert.GreaterOrEqual(t, res.Views.TopStoresWide[i-1].Count, res.Views.TopStoresWide[i].Count)
	}
}

func TestBuildTechnicianView(t *testing.T) {
	b := analysis.NewBuilder(testConfig())

	rows := []domain.Ticket{
		closedT("Jenkins", "Jacob Abrams"),
		closedT("Jenkins", "Richard Roe"),
		closedT("Jenkins", "Jacob Abrams"),
		closedT("Jenkins", "RICK Stone"),
		closedT("Jenkins", "Jon-Michael"),
		closedT("Jenkins", "Sarah Lee"), // not on the allow-list
		closedT("Jenkins", ""),          // empty assignee never counts
		closedT("Jenkins", "Patrick O"), // matches by substring, same as the allow-list semantics
	}
	res := b.Build(rows)

	assert.Equal(t, []domain.GroupCount{
		{Name: "Jacob Abrams", Count: 2},
		{Name: "Richard Roe", Count: 1},
		{Name: "RICK Stone", Count: 1},
		{Name: "Jon-Michael", Count: 1},
		{Name: "Patrick O", Count: 1},
	}, res.Views.Technicians)
}

func TestBuildCatalogView(t *testing.T) {
	b := analysis.NewBuilder(testConfig())

	rows := []domain.Ticket{
		closedT("Harlan 1 & Harlan 2 office", ""), // counted under both entries
		closedT("Jenkins kiosk", ""),
		closedT("jenkins back room", ""),
	}
	res := b.Build(rows)

	assert.Equal(t, []domain.GroupCount{
		{Name: "Jenkins", Count: 2},
		{Name: "Harlan 1", Count: 1},
		{Name: "Harlan 2", Count: 1},
		{Name: "Hyden", Count: 0},
		{Name: "Isom", Count: 0},
	}, res.Views.Catalog)
}

func TestBuildCatalogViewAllZerosKeepsCatalogOrder(t *testing.T) {
	b := analysis.NewBuilder(testConfig())

	res := b.Build([]domain.Ticket{closedT("Someone Unrelated", "")})

	require.Len(t, res.Views.Catalog, 5)
	names := make([]string, 0, 5)
	for _, g := range res.Views.Catalog {
		assert.Zero(t, g.Count)
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Jenkins", "Hyden", "Harlan 1", "Harlan 2", "Isom"}, names)
}

func TestBuildEmptyCollection(t *testing.T) {
	b := analysis.NewBuilder(testConfig())

	res := b.Build(nil)

	assert.Zero(t, res.ClosedTotal)
	assert.Empty(t, res.Views.TopStores)
	assert.Empty(t, res.Views.TopStoresWide)
	assert.Empty(t, res.Views.Technicians)
	assert.Len(t, res.Views.Catalog, 5)
}
