// Package geo resolves free-text places into canonical matching areas.
package geo

import (
	_ "embed"
	"os"
	"strings"

	"nomad/config"
	"nomad/internal/domain/entity"
	"nomad/internal/domain/service"
	"nomad/internal/errors"

	"github.com/goccy/go-yaml"
)

//go:embed metros.yaml
var defaultTable []byte

type countryEntry struct {
	Code    string   `yaml:"code"`
	Aliases []string `yaml:"aliases"`
}

type metroEntry struct {
	entity.MetroArea `yaml:",inline"`
	StateAliases     []string `yaml:"stateAliases"`
}

type metroTable struct {
	Countries []countryEntry `yaml:"countries"`
	Metros    []metroEntry   `yaml:"metros"`
}

type metro struct {
	area       entity.MetroArea
	states     map[string]struct{}
	localities map[string]struct{} // folded canonical name and members
}

// Resolver is an immutable, table driven LocationResolver.
type Resolver struct {
	metros    []*metro
	countries map[string]string // folded code or alias -> code
}

var _ service.LocationResolver = (*Resolver)(nil)

// New builds the resolver from the configured metro table, falling back to
// the embedded one.
func New(cfg *config.Config) (*Resolver, error) {
	if cfg.Geo == nil || cfg.Geo.MetroTablePath == "" {
		return Parse(defaultTable)
	}

	data, err := os.ReadFile(cfg.Geo.MetroTablePath)
	if err != nil {
		return nil, errors.Wrapf(err, "read metro table %s", cfg.Geo.MetroTablePath)
	}

	return Parse(data)
}

// Parse decodes a YAML metro table and validates that every locality
// belongs to at most one metro area per country.
func Parse(data []byte) (*Resolver, error) {
	var table metroTable
	if err := yaml.UnmarshalWithOptions(data, &table, yaml.Strict()); err != nil {
		return nil, errors.Wrap(err, "decode metro table")
	}

	r := &Resolver{
		metros:    make([]*metro, 0, len(table.Metros)),
		countries: make(map[string]string),
	}

	for _, c := range table.Countries {
		code := strings.TrimSpace(c.Code)
		if code == "" {
			return nil, errors.New("metro table: country entry without code")
		}
		r.countries[fold(code)] = code
		for _, alias := range c.Aliases {
			r.countries[fold(alias)] = code
		}
	}

	seen := make(map[string]string) // country|locality -> canonical name
	for i := range table.Metros {
		entry := table.Metros[i]
		if strings.TrimSpace(entry.CanonicalName) == "" || strings.TrimSpace(entry.Country) == "" {
			return nil, errors.Errorf("metro table: entry %d needs canonical and country", i)
		}

		entry.Country = r.countryCode(entry.Country)
		m := &metro{
			area:       entry.MetroArea,
			states:     make(map[string]struct{}),
			localities: make(map[string]struct{}),
		}
		if entry.State != "" {
			m.states[fold(entry.State)] = struct{}{}
			for _, alias := range entry.StateAliases {
				m.states[fold(alias)] = struct{}{}
			}
		}

		for _, name := range append([]string{entry.CanonicalName}, entry.Members...) {
			key := fold(name)
			if key == "" {
				return nil, errors.Errorf("metro table: empty locality in %s", entry.CanonicalName)
			}
			if _, dup := m.localities[key]; dup {
				continue
			}

			countryKey := fold(entry.Country) + "|" + key
			if owner, dup := seen[countryKey]; dup {
				return nil, errors.Errorf("metro table: %q in %s already belongs to %s", name, entry.Country, owner)
			}
			seen[countryKey] = entry.CanonicalName
			m.localities[key] = struct{}{}
		}

		r.metros = append(r.metros, m)
	}

	return r, nil
}

// Canonicalize resolves a city to the first metro area that lists it and
// whose state and country agree with the given qualifiers. Qualifiers the
// area does not carry are not compared. Without a match the city is its own
// canonical location.
func (r *Resolver) Canonicalize(city, state, country string) entity.CanonicalLocation {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	country = r.countryCode(country)

	if m := r.find(city, state, country); m != nil {
		return entity.CanonicalLocation{
			Name:    m.area.CanonicalName,
			State:   m.area.State,
			Country: m.area.Country,
			IsMetro: true,
		}
	}

	return entity.CanonicalLocation{Name: city, State: state, Country: country}
}

// MembersOf lists the canonical name followed by the members of the named
// metro area, or just the name when it is not a metro area.
func (r *Resolver) MembersOf(canonicalName, state, country string) []string {
	canonicalName = strings.TrimSpace(canonicalName)
	country = r.countryCode(country)
	key := fold(canonicalName)

	for _, m := range r.metros {
		if fold(m.area.CanonicalName) != key || !m.accepts(strings.TrimSpace(state), country) {
			continue
		}

		out := make([]string, 0, len(m.area.Members)+1)
		out = append(out, m.area.CanonicalName)

		return append(out, m.area.Members...)
	}

	if canonicalName == "" {
		return nil
	}

	return []string{canonicalName}
}

// LocalityKey returns the comparison key of a locality name. Two names
// denote the same locality exactly when their keys are equal.
func (r *Resolver) LocalityKey(name string) string {
	return fold(name)
}

// Metros returns a copy of the loaded metro areas in table order.
func (r *Resolver) Metros() []entity.MetroArea {
	out := make([]entity.MetroArea, 0, len(r.metros))
	for _, m := range r.metros {
		area := m.area
		area.Members = append([]string(nil), m.area.Members...)
		out = append(out, area)
	}

	return out
}

func (r *Resolver) find(city, state, country string) *metro {
	key := fold(city)
	if key == "" {
		return nil
	}

	for _, m := range r.metros {
		if _, ok := m.localities[key]; !ok {
			continue
		}
		if m.accepts(state, country) {
			return m
		}
	}

	return nil
}

func (m *metro) accepts(state, country string) bool {
	if country != "" && !strings.EqualFold(country, m.area.Country) {
		return false
	}
	if state != "" && len(m.states) > 0 {
		if _, ok := m.states[fold(state)]; !ok {
			return false
		}
	}

	return true
}

// countryCode maps a country name or alias to its table code, keeping
// unknown values as given.
func (r *Resolver) countryCode(country string) string {
	country = strings.TrimSpace(country)
	if code, ok := r.countries[fold(country)]; ok {
		return code
	}

	return country
}
