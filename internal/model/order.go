package model

import "time"

type OrderStatus string

const (
	OrderStatusQueued     OrderStatus = "queued"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusQueued, OrderStatusInProgress, OrderStatusDone, OrderStatusCancelled:
		return true
	}
	return false
}

// WorkOrder is one physical unit moving through the line, keyed by serial.
type WorkOrder struct {
	ID        int64
	Serial    string
	ModelCode string
	Status    OrderStatus

	// CurrentStation is a station id or one of the StationStock / StationFinal markers.
	CurrentStation string

	CreatedAt  time.Time
	UpdatedAt  time.Time
	FinishedAt *time.Time

	ExternalTestFlag   bool
	ExternalTestStatus string
	ExternalTestLastAt *time.Time
}

// Closed reports whether the order no longer accepts scans.
func (o *WorkOrder) Closed() bool {
	return o.Status == OrderStatusDone || o.Status == OrderStatusCancelled
}

// ReachedFinal reports whether finishing the route already produced the unit.
func (o *WorkOrder) ReachedFinal() bool {
	return o.Status == OrderStatusDone || o.CurrentStation == StationFinal
}

// OrderUpdate lists the mutable columns. Nil fields are left untouched;
// ClearFinishedAt wins over FinishedAt.
type OrderUpdate struct {
	Status          *OrderStatus
	CurrentStation  *string
	FinishedAt      *time.Time
	ClearFinishedAt bool

	ExternalTestFlag   *bool
	ExternalTestStatus *string
	ExternalTestLastAt *time.Time
}

func (u OrderUpdate) Empty() bool {
	return u.Status == nil && u.CurrentStation == nil && u.FinishedAt == nil && !u.ClearFinishedAt &&
		u.ExternalTestFlag == nil && u.ExternalTestStatus == nil && u.ExternalTestLastAt == nil
}

type LaunchParams struct {
	ModelCode string
	Quantity  int
	User      string
}

type LaunchResult struct {
	ModelCode string
	Serials   []string
	Consumed  []Part
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// OrderFilter narrows a traceability search. Serial and ModelCode match as
// case-insensitive substrings; the date bounds apply to UpdatedAt.
type OrderFilter struct {
	Serial    string
	ModelCode string
	Status    OrderStatus
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}

// Normalize clamps the paging fields into range.
func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.PageSize < 1:
		f.PageSize = DefaultPageSize
	case f.PageSize > MaxPageSize:
		f.PageSize = MaxPageSize
	}
}

func (f OrderFilter) Offset() uint64 { return uint64((f.Page - 1) * f.PageSize) }

type OrderPage struct {
	Page     int
	PageSize int
	Total    int64
	Items    []WorkOrder
}

// TraceSummary condenses the history of one unit.
type TraceSummary struct {
	Order        *WorkOrder
	Visits       int
	ClosedVisits int
	ReworkVisits int
	LastActivity *StationVisit
}
