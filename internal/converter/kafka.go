package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

// TestResultRecord is the JSON body published by the safety tester and the
// checklist terminal.
type TestResultRecord struct {
	EventID    string     `json:"event_id,omitempty"`
	Serial     string     `json:"serial"`
	Source     string     `json:"source"`
	Status     string     `json:"status"`
	Operator   string     `json:"operator,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	ReportedAt *time.Time `json:"reported_at,omitempty"`
}

type ReorderRecord struct {
	EventID      string    `json:"event_id"`
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

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) TestResultToModel(data []byte) (model.ExternalResult, error) {
	var rec TestResultRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.ExternalResult{}, fmt.Errorf("failed to unmarshal test result: %w", err)
	}

	return model.ExternalResult{
		Serial:     rec.Serial,
		Source:     model.ResultSource(rec.Source),
		Status:     model.ExternalStatus(rec.Status),
		Operator:   rec.Operator,
		Notes:      rec.Notes,
		ReportedAt: rec.ReportedAt,
	}, nil
}

func (c *kafkaConverter) ReorderNoticeToRecord(n model.ReorderNotice) ([]byte, error) {
	id := n.EventID
	if id == uuid.Nil {
		id = uuid.New()
	}

	payload, err := json.Marshal(ReorderRecord{
		EventID:      id.String(),
		PartCode:     n.PartCode,
		Description:  n.Description,
		CurrentStock: n.CurrentStock,
		ReorderPoint: n.ReorderPoint,
		MaximumStock: n.MaximumStock,
		SuggestedQty: n.SuggestedQty,
		To:           n.To,
		Subject:      n.Subject,
		Body:         n.Body,
		CreatedAt:    n.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reorder notice: %w", err)
	}

	return payload, nil
}
