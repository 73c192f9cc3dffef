// Package analysis derives the closed-ticket summary views from the
// normalized collection.
package analysis

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/spec-kit/ticket-reports/internal/config"
	"github.com/spec-kit/ticket-reports/internal/domain"
)

// Builder computes summary views under one report definition.
type Builder struct {
	cfg     config.ReportConfig
	aliases []aliasRule
}

type aliasRule struct {
	pattern *regexp.Regexp
	to      string
}

// NewBuilder compiles the definition's matching rules.
func NewBuilder(cfg config.ReportConfig) *Builder {
	b := &Builder{cfg: cfg}
	for _, a := range cfg.RequesterAliases {
		b.aliases = append(b.aliases, aliasRule{
			pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(a.From)),
			to:      a.To,
		})
	}
	return b
}

// Result carries the views plus analysis counters.
type Result struct {
	Views        domain.SummaryViews
	ClosedTotal  int
	Excluded     int
	StoreMatched int
}

// Build derives every view from the normalized collection. Only rows
// labeled Closed take part; exclusion and alias fix-up run once before
// any aggregation.
func (b *Builder) Build(tickets []domain.Ticket) *Result {
	res := &Result{}

	closed := make([]domain.Ticket, 0, len(tickets))
	for _, row := range tickets {
		if !row.IsClosed() {
			continue
		}
		if b.isExcluded(row.Requester) {
			res.Excluded++
			continue
		}
		row.Requester = b.applyAliases(row.Requester)
		closed = append(closed, row)
	}
	res.ClosedTotal = len(closed)

	members := make([]domain.Ticket, 0, len(closed))
	for _, row := range closed {
		if b.matchesCatalog(row.Requester) {
			members = append(members, row)
		}
	}
	res.StoreMatched = len(members)

	// Groups key on the literal requester string, so two raw strings
	// naming the same store stay separate. Ties keep first-seen order.
	stores := groupCounts(members, func(t domain.Ticket) string { return t.Requester })
	slices.SortStableFunc(stores, byCountDesc)
	res.Views.TopStores = head(stores, 10)
	res.Views.TopStoresWide = head(stores, 15)

	techs := make([]domain.Ticket, 0, len(closed))
	for _, row := range closed {
		if row.Assignee == "" || !containsAnyFold(row.Assignee, b.cfg.TechnicianNames) {
			continue
		}
		techs = append(techs, row)
	}
	techGroups := groupCounts(techs, func(t domain.Ticket) string { return t.Assignee })
	slices.SortStableFunc(techGroups, byCountDesc)
	res.Views.Technicians = techGroups

	// Every catalog entry is counted independently, so a requester
	// matching two entries counts under both.
	catalog := make([]domain.GroupCount, 0, len(b.cfg.StoreCatalog))
	for _, store := range b.cfg.StoreCatalog {
		var n int
		for _, row := range closed {
			if containsFold(row.Requester, store) {
				n++
			}
		}
		catalog = append(catalog, domain.GroupCount{Name: store, Count: n})
	}
	slices.SortStableFunc(catalog, byCountDesc)
	res.Views.Catalog = catalog

	return res
}

func (b *Builder) isExcluded(requester string) bool {
	for _, name := range b.cfg.ExcludedRequesters {
		if strings.EqualFold(requester, name) {
			return true
		}
	}
	return false
}

func (b *Builder) applyAliases(requester string) string {
	for _, rule := range b.aliases {
		requester = rule.pattern.ReplaceAllLiteralString(requester, rule.to)
	}
	return requester
}

func (b *Builder) matchesCatalog(requester string) bool {
	for _, store := range b.cfg.StoreCatalog {
		if containsFold(requester, store) {
			return true
		}
	}
	return false
}

// groupCounts tallies rows by key, preserving first-seen order.
func groupCounts(rows []domain.Ticket, key func(domain.Ticket) string) []domain.GroupCount {
	index := make(map[string]int, len(rows))
	groups := make([]domain.GroupCount, 0, len(rows))
	for _, row := range rows {
		k := key(row)
		if i, ok := index[k]; ok {
			groups[i].Count++
			continue
		}
		index[k] = len(groups)
		groups = append(groups, domain.GroupCount{Name: k, Count: 1})
	}
	return groups
}

func head(groups []domain.GroupCount, n int) []domain.GroupCount {
	if len(groups) > n {
		groups = groups[:n]
	}
	return slices.Clone(groups)
}

func byCountDesc(a, b domain.GroupCount) int {
	return cmp.Compare(b.Count, a.Count)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func containsAnyFold(s string, subs []string) bool {
	for _, sub := range subs {
		if containsFold(s, sub) {
			return true
		}
	}
	return false
}
