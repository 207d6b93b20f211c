// Package layout describes the physical line: which stations exist, their
// canonical order and which of them are mandatory for every unit.
package layout

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

//go:embed default.yaml
var defaultYAML []byte

type Layout struct {
	Name     string          `yaml:"name"`
	Stations []model.Station `yaml:"stations"`

	index map[string]int
}

// Default returns the built-in eight bench line.
func Default() *Layout {
	l, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("layout: embedded default is invalid: %v", err))
	}
	return l
}

// Load reads a layout file; an empty path yields Default.
func Load(path string) (*Layout, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	return New(l.Name, l.Stations)
}

// New validates stations and builds the lookup index. Exactly one
// safety_test and one checklist station are required.
func New(name string, stations []model.Station) (*Layout, error) {
	l := &Layout{
		Name:     name,
		Stations: make([]model.Station, 0, len(stations)),
		index:    make(map[string]int, len(stations)),
	}

	var safety, checklist int
	for _, st := range stations {
		st.ID = strings.ToLower(strings.TrimSpace(st.ID))
		if st.ID == "" {
			return nil, fmt.Errorf("layout: station without id")
		}
		if model.IsMarker(st.ID) {
			return nil, fmt.Errorf("layout: %q is reserved", st.ID)
		}
		if _, dup := l.index[st.ID]; dup {
			return nil, fmt.Errorf("layout: duplicate station %q", st.ID)
		}

		switch st.Role {
		case "":
			st.Role = model.RoleAssembly
		case model.RoleAssembly:
		case model.RoleSafetyTest:
			safety++
		case model.RoleChecklist:
			checklist++
		default:
			return nil, fmt.Errorf("layout: station %q has unknown role %q", st.ID, st.Role)
		}
		if st.Title == "" {
			st.Title = strings.ToUpper(st.ID)
		}

		l.index[st.ID] = len(l.Stations)
		l.Stations = append(l.Stations, st)
	}

	if safety != 1 || checklist != 1 {
		return nil, fmt.Errorf("layout: need exactly one safety_test and one checklist station, got %d and %d",
			safety, checklist)
	}

	return l, nil
}

func (l *Layout) Has(id string) bool {
	_, ok := l.index[id]
	return ok
}

// Index is the canonical position of a station, -1 when unknown.
func (l *Layout) Index(id string) int {
	if i, ok := l.index[id]; ok {
		return i
	}
	return -1
}

func (l *Layout) Station(id string) (model.Station, bool) {
	i, ok := l.index[id]
	if !ok {
		return model.Station{}, false
	}
	return l.Stations[i], true
}

func (l *Layout) IDs() []string {
	ids := make([]string, len(l.Stations))
	for i, st := range l.Stations {
		ids[i] = st.ID
	}
	return ids
}

// Sort orders known station ids canonically and drops unknown ones.
func (l *Layout) Sort(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if l.Has(id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	slices.SortFunc(out, func(a, b string) int { return l.index[a] - l.index[b] })
	return out
}

func (l *Layout) Mandatory() []string {
	var ids []string
	for _, st := range l.Stations {
		if st.Role.Mandatory() {
			ids = append(ids, st.ID)
		}
	}
	return ids
}

func (l *Layout) byRole(role model.StationRole) string {
	for _, st := range l.Stations {
		if st.Role == role {
			return st.ID
		}
	}
	return ""
}

// SafetyStation is the debounce-protected station.
func (l *Layout) SafetyStation() string    { return l.byRole(model.RoleSafetyTest) }
func (l *Layout) ChecklistStation() string { return l.byRole(model.RoleChecklist) }

// StationFor maps an external result source onto the station it closes.
func (l *Layout) StationFor(source model.ResultSource) (string, bool) {
	switch source {
	case model.SourceSafetyTest:
		return l.SafetyStation(), true
	case model.SourceChecklist:
		return l.ChecklistStation(), true
	default:
		return "", false
	}
}

func (l *Layout) Expected(id string) time.Duration {
	st, ok := l.Station(id)
	if !ok {
		return 0
	}
	return st.Expected
}
