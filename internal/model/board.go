package model

import "time"

type BoardItem struct {
	Serial           string        `json:"serial"`
	ModelCode        string        `json:"model_code"`
	Status           OrderStatus   `json:"status"`
	Since            *time.Time    `json:"since,omitempty"`
	Expected         time.Duration `json:"expected"`
	ExternalTestFlag bool          `json:"external_test_flag"`
	Rework           bool          `json:"rework"`

	// Returned marks a unit sent back to a station after finishing a later one.
	Returned bool `json:"returned"`
}

type BoardColumn struct {
	Station string      `json:"station"`
	Title   string      `json:"title"`
	Items   []BoardItem `json:"items"`
}
