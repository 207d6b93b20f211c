package model

import "time"

type VisitResult string

const (
	ResultNone     VisitResult = ""
	ResultPass     VisitResult = "pass"
	ResultFail     VisitResult = "fail"
	ResultApproved VisitResult = "approved"
	ResultRepeat   VisitResult = "repeat"
)

func (r VisitResult) Valid() bool {
	switch r {
	case ResultNone, ResultPass, ResultFail, ResultApproved, ResultRepeat:
		return true
	default:
		return false
	}
}

// Passing results arm the debounce lock on the safety station.
func (r VisitResult) Passing() bool {
	return r == ResultPass || r == ResultApproved
}

// StationVisit records one stay of a unit at a station. FinishedAt == nil means open.
type StationVisit struct {
	ID          int64
	OrderID     int64
	StationID   string
	StartedAt   time.Time
	FinishedAt  *time.Time
	Operator    string
	Result      VisitResult
	ReworkFlag  bool
	Workstation string
	Notes       string
}

func (v *StationVisit) Open() bool { return v.FinishedAt == nil }

// VisitClose carries what a finish may stamp on the visit.
type VisitClose struct {
	FinishedAt  time.Time
	Result      VisitResult
	ReworkFlag  bool
	Workstation string
	Notes       string
}
