package domain

import "time"

// StatusType labels which collection a ticket belongs to after normalization.
type StatusType string

const (
	StatusTypeActive StatusType = "Active"
	StatusTypeClosed StatusType = "Closed"
)

// Ticket is one row of a helpdesk CSV export.
type Ticket struct {
	Requester       string
	Assignee        string
	Status          string
	Team            string
	LastModified    *time.Time
	RawLastModified string
	StatusType      StatusType
}

// IsClosed reports whether the ticket carries the closed label.
func (t Ticket) IsClosed() bool {
	return t.StatusType == StatusTypeClosed
}
