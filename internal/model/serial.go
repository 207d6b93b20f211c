package model

import "time"

// SerialAudit is one line of the year-partitioned serial log.
type SerialAudit struct {
	At        time.Time
	ModelCode string
	Serial    string
	User      string
}
