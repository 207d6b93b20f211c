package model

import (
	"fmt"
	"strings"
)

type PartKind string

const (
	PartKindComponent PartKind = "component"
	PartKindAssembly  PartKind = "assembly"
)

type Part struct {
	Code         string   `json:"code"`
	Kind         PartKind `json:"kind"`
	Description  string   `json:"description"`
	CurrentStock int64    `json:"current_stock"`
	MinimumStock int64    `json:"minimum_stock"`
	ReorderPoint int64    `json:"reorder_point"`
	MaximumStock int64    `json:"maximum_stock"`
	Cost         float64  `json:"cost"`
}

type BomEntry struct {
	AssemblyCode    string
	ComponentCode   string
	QuantityPerUnit int64
}

// ProductModel maps a sellable model onto the assembly it produces and the
// digit used in its serial numbers.
type ProductModel struct {
	Code         string
	Name         string
	AssemblyCode string
	SerialCode   string
}

type Shortage struct {
	Code      string `json:"code"`
	Required  int64  `json:"required"`
	Available int64  `json:"available"`
}

func (s Shortage) Missing() int64 { return s.Required - s.Available }

// ShortageError lists every component that could not cover a reservation.
// It matches ErrInsufficientStock with errors.Is.
type ShortageError struct {
	ModelCode string
	Quantity  int
	Shortages []Shortage
}

func (e *ShortageError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s need %d have %d", s.Code, s.Required, s.Available))
	}
	return fmt.Sprintf("%s: model %s x%d: %s", ErrInsufficientStock, e.ModelCode, e.Quantity, strings.Join(parts, ", "))
}

func (e *ShortageError) Unwrap() error { return ErrInsufficientStock }
