package model

// Bottleneck is one BOM line seen from the capacity side. Missing is set
// when the component has no part record, which pins the capacity at zero.
type Bottleneck struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Stock       int64  `json:"stock"`
	PerUnit     int64  `json:"per_unit"`
	Units       int64  `json:"units"`
	Missing     bool   `json:"missing,omitempty"`
}

// Capacity is how many units of a model the component stock can build.
// Bottlenecks are ordered most limiting first.
type Capacity struct {
	ModelCode    string       `json:"model"`
	AssemblyCode string       `json:"assembly_code"`
	Units        int64        `json:"units"`
	Bottlenecks  []Bottleneck `json:"bottlenecks"`
}

// CapacityPlan holds the capacity of every model plus a balanced split
// that gives each model an equal share of its own capacity.
type CapacityPlan struct {
	Models   []Capacity       `json:"models"`
	Balanced map[string]int64 `json:"balanced"`
}

type PlanLine struct {
	ModelCode string `json:"model"`
	Quantity  int    `json:"quantity"`
}

type PlanIssue struct {
	ModelCode string `json:"model"`
	Reason    string `json:"reason"`
}
