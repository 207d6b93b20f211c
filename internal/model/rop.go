package model

import (
	"time"

	"github.com/google/uuid"
)

type RopAlertState struct {
	PartCode   string
	InAlert    bool
	LastSentAt *time.Time
}

type RopEvaluation struct {
	InAlert      bool
	SuggestedQty int64
}

// ReorderNotice is built inside the stock transaction and delivered after it commits.
type ReorderNotice struct {
	EventID      uuid.UUID `json:"event_id"`
	PartCode     string    `json:"part_code"`
	Description  string    `json:"description"`
	CurrentStock int64     `json:"current_stock"`
	ReorderPoint int64     `json:"reorder_point"`
	MaximumStock int64     `json:"maximum_stock"`
	SuggestedQty int64     `json:"suggested_qty"`
	To           []string  `json:"to"`
	Subject      string    `json:"subject"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
}

type Need struct {
	Code         string `json:"code"`
	Description  string `json:"description"`
	CurrentStock int64  `json:"current_stock"`
	ReorderPoint int64  `json:"reorder_point"`
	MaximumStock int64  `json:"maximum_stock"`
	SuggestedQty int64  `json:"suggested_qty"`
	CapacityZero bool   `json:"capacity_zero"`
}
