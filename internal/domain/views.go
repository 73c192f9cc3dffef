package domain

// GroupCount is one entry of a grouped-count view.
type GroupCount struct {
	Name  string
	Count int
}

// SummaryViews holds the aggregate views derived from one analysis pass
// over the closed tickets.
type SummaryViews struct {
	// TopStores are the ten busiest store requesters, descending.
	TopStores []GroupCount
	// TopStoresWide are the fifteen busiest, descending. Feeds the bar chart.
	TopStoresWide []GroupCount
	// Technicians are closed counts per matched assignee, descending,
	// never truncated.
	Technicians []GroupCount
	// Catalog has one entry per configured store, zero counts included,
	// descending by count with catalog order preserved on ties.
	Catalog []GroupCount
}

// Total sums the counts of a view.
func Total(view []GroupCount) int {
	var n int
	for _, g := range view {
		n += g.Count
	}
	return n
}
