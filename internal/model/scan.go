package model

type ScanAction string

const (
	ActionAuto   ScanAction = ""
	ActionStart  ScanAction = "start"
	ActionFinish ScanAction = "finish"
)

func (a ScanAction) Valid() bool {
	return a == ActionAuto || a == ActionStart || a == ActionFinish
}

type ScanOutcome string

const (
	OutcomeStarted   ScanOutcome = "started"
	OutcomeFinished  ScanOutcome = "finished"
	OutcomeCompleted ScanOutcome = "completed"
	OutcomeLocked    ScanOutcome = "locked"
	OutcomeNoop      ScanOutcome = "noop"
)

// ScanRequest is either a raw reader token in Raw or an explicit
// serial/station pair. Raw wins when both are set.
type ScanRequest struct {
	Raw         string
	Serial      string
	Station     string
	Operator    string
	Action      ScanAction
	Result      VisitResult
	Rework      bool
	Workstation string
	Notes       string

	// Force bypasses the debounce lock for a deliberate retest.
	Force bool
}

type ScanResult struct {
	Serial  string
	Station string
	Action  ScanAction
	Outcome ScanOutcome

	// Realigned is set when the requested station was not on the route.
	Realigned         bool
	LockedMinutesLeft int
	Order             *WorkOrder
	Visit             *StationVisit
	FinishedGood      *Part
}

func (r *ScanResult) Locked() bool { return r.Outcome == OutcomeLocked }

type UndoRequest struct {
	Serial   string
	Operator string
}

type UndoOutcome string

const (
	UndoOpenVisitRemoved UndoOutcome = "open_visit_removed"
	UndoVisitReopened    UndoOutcome = "visit_reopened"
	UndoBackToStock      UndoOutcome = "back_to_stock"
)

type UndoResult struct {
	Outcome              UndoOutcome
	Order                *WorkOrder
	Visit                *StationVisit
	FinishedGoodReversed bool
}
