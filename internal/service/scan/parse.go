package scan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

var (
	separatorRe = regexp.MustCompile(`[:;/\s]+`)
	suffixRe    = regexp.MustCompile(`(?i)(\+S|\+F|\$)+$`)
)

// ParseToken splits a reader token such as "B5-531008+S" into a station
// and a serial. A token without a separator is a bare serial.
func ParseToken(raw string) (station, serial string, err error) {
	tok := strings.TrimSpace(raw)
	tok = separatorRe.ReplaceAllString(tok, "-")
	tok = suffixRe.ReplaceAllString(tok, "")
	tok = strings.Trim(tok, "-")

	// Some readers send the whole token twice. Only station-serial tokens
	// are folded: a bare serial like 531531 is legitimately periodic.
	if n := len(tok); strings.Contains(tok, "-") && n%2 == 0 && tok[:n/2] == tok[n/2:] {
		tok = tok[:n/2]
	}

	if tok == "" {
		return "", "", fmt.Errorf("%w: empty scan token", model.ErrValidation)
	}

	before, after, found := strings.Cut(tok, "-")
	if !found {
		return "", strings.ToUpper(tok), nil
	}

	serial = strings.ToUpper(strings.Trim(after, "-"))
	if serial == "" {
		return "", "", fmt.Errorf("%w: scan token %q has no serial", model.ErrValidation, raw)
	}

	return NormalizeStation(before), serial, nil
}

// NormalizeStation lowercases station ids and maps the stock aliases.
func NormalizeStation(station string) string {
	st := strings.ToLower(strings.TrimSpace(station))
	switch st {
	case "sep", model.StationStock:
		return model.StationStock
	default:
		return st
	}
}

func normalizeRequest(req model.ScanRequest) (model.ScanRequest, error) {
	if req.Raw != "" {
		station, serial, err := ParseToken(req.Raw)
		if err != nil {
			return req, err
		}
		req.Serial = serial
		if station != "" {
			req.Station = station
		}
	}

	req.Serial = strings.ToUpper(strings.TrimSpace(req.Serial))
	req.Station = NormalizeStation(req.Station)
	req.Operator = strings.TrimSpace(req.Operator)

	if req.Serial == "" {
		return req, fmt.Errorf("%w: serial is required", model.ErrValidation)
	}
	if !req.Action.Valid() {
		return req, fmt.Errorf("%w: unknown action %q", model.ErrValidation, req.Action)
	}
	if !req.Result.Valid() {
		return req, fmt.Errorf("%w: unknown result %q", model.ErrValidation, req.Result)
	}

	return req, nil
}
