package model

import (
	"slices"
	"time"
)

// Markers that are valid values of WorkOrder.CurrentStation but never part of a route.
const (
	StationStock = "stock"
	StationFinal = "final"
)

func IsMarker(station string) bool {
	return station == StationStock || station == StationFinal
}

type StationRole string

const (
	RoleAssembly   StationRole = "assembly"
	RoleSafetyTest StationRole = "safety_test"
	RoleChecklist  StationRole = "checklist"
)

// Mandatory roles are part of every route regardless of configuration.
func (r StationRole) Mandatory() bool {
	return r == RoleSafetyTest || r == RoleChecklist
}

type Station struct {
	ID       string        `yaml:"id"`
	Title    string        `yaml:"title"`
	Role     StationRole   `yaml:"role"`
	Expected time.Duration `yaml:"expected"`
}

// StationRouteConfig is one (model, station) row owned by the configuration side.
type StationRouteConfig struct {
	ModelCode string
	StationID string
	Enabled   bool
	Mandatory bool
	Expected  time.Duration
	Min       time.Duration
	Max       time.Duration
}

// Route is the ordered list of stations a model visits. UsedFallback is set
// when configuration was missing and only mandatory stations were returned.
type Route struct {
	ModelCode    string                   `json:"model_code"`
	Stations     []string                 `json:"stations"`
	Expected     map[string]time.Duration `json:"expected,omitempty"`
	UsedFallback bool                     `json:"used_fallback"`
}

func (r Route) Contains(station string) bool {
	return slices.Contains(r.Stations, station)
}

// First returns the first station, or StationFinal for an empty route.
func (r Route) First() string {
	if len(r.Stations) == 0 {
		return StationFinal
	}
	return r.Stations[0]
}

// NextAfter returns the first station after current that has no finished
// visit. Stations skipped earlier are picked up afterwards, so the unit only
// reaches StationFinal once every route station is finished.
func (r Route) NextAfter(current string, finished map[string]bool) string {
	idx := slices.Index(r.Stations, current)

	for _, st := range r.Stations[idx+1:] {
		if !finished[st] {
			return st
		}
	}
	for _, st := range r.Stations[:max(idx, 0)] {
		if !finished[st] {
			return st
		}
	}

	return StationFinal
}

// Prev returns the station before the given one, StationStock at the start.
func (r Route) Prev(station string) string {
	if station == StationFinal {
		if len(r.Stations) == 0 {
			return StationStock
		}
		return r.Stations[len(r.Stations)-1]
	}

	idx := slices.Index(r.Stations, station)
	if idx <= 0 {
		return StationStock
	}
	return r.Stations[idx-1]
}

func (r Route) ExpectedFor(station string) time.Duration {
	return r.Expected[station]
}
