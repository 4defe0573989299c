package entity

import (
	"fmt"
	"math"
	"strings"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point is a usable location: finite, within range,
// and not the (0,0) placeholder that clients send when they have no fix.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) || math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return false
	}

	return c.Latitude != 0 || c.Longitude != 0
}

// MetroArea groups localities that are treated as one matching area,
// e.g. Santa Monica and Pasadena inside Los Angeles.
type MetroArea struct {
	CanonicalName string   `json:"canonical_name" yaml:"canonical"`
	State         string   `json:"state,omitempty" yaml:"state"`
	Country       string   `json:"country" yaml:"country"`
	Members       []string `json:"members" yaml:"members"`
}

// CanonicalLocation is the resolved matching identity of a place.
// A locality that belongs to no metro area is its own canonical location.
type CanonicalLocation struct {
	Name    string `json:"name"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	IsMetro bool   `json:"is_metro"`
}

// SameArea compares two canonical locations case-insensitively. State and
// country only discriminate when both sides carry them.
func (l CanonicalLocation) SameArea(other CanonicalLocation) bool {
	if !strings.EqualFold(strings.TrimSpace(l.Name), strings.TrimSpace(other.Name)) {
		return false
	}
	if l.State != "" && other.State != "" && !strings.EqualFold(l.State, other.State) {
		return false
	}
	if l.Country != "" && other.Country != "" && !strings.EqualFold(l.Country, other.Country) {
		return false
	}

	return true
}

// Place is a human-entered city with optional region qualifiers and an
// optional last-known point.
type Place struct {
	City        string       `json:"city"`
	State       string       `json:"state,omitempty"`
	Country     string       `json:"country,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// String renders the place as "City, State, Country", skipping empty parts.
func (p Place) String() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.City, p.State, p.Country} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, ", ")
}

// Describe renders the raw place together with the area it resolved to.
func (p Place) Describe(canonical CanonicalLocation) string {
	raw := p.String()
	if canonical.Name == "" || strings.EqualFold(canonical.Name, strings.TrimSpace(p.City)) {
		return raw
	}

	return fmt.Sprintf("%s (%s)", raw, canonical.Name)
}
