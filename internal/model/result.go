package model

import "time"

// ResultSource names the subsystem pushing a verdict.
type ResultSource string

const (
	SourceSafetyTest ResultSource = "safety_test"
	SourceChecklist  ResultSource = "checklist"
)

type ExternalStatus string

const (
	ExternalApproved ExternalStatus = "approved"
	ExternalRejected ExternalStatus = "rejected"
	ExternalOK       ExternalStatus = "ok"
)

func (s ExternalStatus) Valid() bool {
	return s == ExternalApproved || s == ExternalRejected || s == ExternalOK
}

// VisitResult maps the external verdict onto the visit result and rework flag.
func (s ExternalStatus) VisitResult() (VisitResult, bool) {
	switch s {
	case ExternalApproved:
		return ResultApproved, false
	case ExternalOK:
		return ResultPass, false
	default:
		return ResultFail, true
	}
}

type RejectPolicy string

const (
	// RejectAdvance moves a rejected unit on to the next station flagged for rework.
	RejectAdvance RejectPolicy = "advance"
	// RejectHold keeps a rejected unit at the station.
	RejectHold RejectPolicy = "hold"
)

type ExternalResult struct {
	Serial     string         `json:"serial"`
	Source     ResultSource   `json:"source"`
	Status     ExternalStatus `json:"status"`
	Operator   string         `json:"operator,omitempty"`
	Notes      string         `json:"notes,omitempty"`
	ReportedAt *time.Time     `json:"reported_at,omitempty"`
}

type ResultOutcome struct {
	Order       *WorkOrder
	Station     string
	Visit       *StationVisit
	VisitClosed bool
	Advanced    bool
	Held        bool

	// FinishedGood is set when the verdict completed the route.
	FinishedGood *Part
}
