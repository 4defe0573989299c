package geo

import (
	"testing"

	"nomad/config"
	"nomad/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	r, err := New(&config.Config{})
	require.NoError(t, err)

	return r
}

func TestCanonicalize(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name    string
		city    string
		state   string
		country string
		want    entity.CanonicalLocation
	}{
		{
			name:    "member resolves to metro",
			city:    "Santa Monica",
			state:   "CA",
			country: "US",
			want:    entity.CanonicalLocation{Name: "Los Angeles", State: "CA", Country: "US", IsMetro: true},
		},
		{
			name: "case insensitive without qualifiers",
			city: "  santa MONICA ",
			want: entity.CanonicalLocation{Name: "Los Angeles", State: "CA", Country: "US", IsMetro: true},
		},
		{
			name:    "state alias and country alias",
			city:    "Pasadena",
			state:   "California",
			country: "United States",
			want:    entity.CanonicalLocation{Name: "Los Angeles", State: "CA", Country: "US", IsMetro: true},
		},
		{
			name:    "canonical name resolves to itself",
			city:    "Los Angeles",
			country: "USA",
			want:    entity.CanonicalLocation{Name: "Los Angeles", State: "CA", Country: "US", IsMetro: true},
		},
		{
			name:    "accent folding",
			city:    "Medellin",
			country: "Colombia",
			want:    entity.CanonicalLocation{Name: "Medellín", Country: "CO", IsMetro: true},
		},
		{
			name:  "abbreviation folding",
			city:  "Saint Louis",
			state: "MO",
			want:  entity.CanonicalLocation{Name: "St. Louis", State: "MO", Country: "US", IsMetro: true},
		},
		{
			name:    "mismatched state falls back to identity",
			city:    "Glendale",
			state:   "AZ",
			country: "US",
			want:    entity.CanonicalLocation{Name: "Glendale", State: "AZ", Country: "US"},
		},
		{
			name:    "mismatched country falls back to identity",
			city:    "Venice",
			country: "Italy",
			want:    entity.CanonicalLocation{Name: "Venice", Country: "Italy"},
		},
		{
			name: "never matches by substring",
			city: "Santa",
			want: entity.CanonicalLocation{Name: "Santa"},
		},
		{
			name:    "unknown city is its own identity",
			city:    "Boise",
			state:   "ID",
			country: "US",
			want:    entity.CanonicalLocation{Name: "Boise", State: "ID", Country: "US"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Canonicalize(tt.city, tt.state, tt.country))
		})
	}
}

func TestMembersOf(t *testing.T) {
	r := newTestResolver(t)

	members := r.MembersOf("Los Angeles", "CA", "US")
	require.NotEmpty(t, members)
	assert.Equal(t, "Los Angeles", members[0])
	assert.Contains(t, members, "Santa Monica")

	assert.Equal(t, []string{"Boise"}, r.MembersOf("Boise", "ID", "US"))
	assert.Nil(t, r.MembersOf("", "", ""))
	assert.Equal(t, []string{"Los Angeles"}, r.MembersOf("Los Angeles", "NY", "US"))
}

func TestParseRejectsDuplicateLocality(t *testing.T) {
	table := []byte(`
metros:
  - canonical: Medellín
    country: CO
    members: [Envigado]
  - canonical: Valle de Aburrá
    country: CO
    members: [Medellin]
`)

	_, err := Parse(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already belongs to")
}

func TestParseAllowsSameLocalityInDifferentCountries(t *testing.T) {
	table := []byte(`
metros:
  - canonical: London
    country: GB
    members: [Camden]
  - canonical: Toronto
    country: CA
    members: [London]
`)

	r, err := Parse(table)
	require.NoError(t, err)
	assert.Equal(t, "Toronto", r.Canonicalize("London", "", "CA").Name)
	assert.Equal(t, "London", r.Canonicalize("London", "", "GB").Name)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("metros:\n  - canonical: X\n    country: US\n    bogus: 1\n"))
	require.Error(t, err)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "medellin", fold("Medellín"))
	assert.Equal(t, "saint louis", fold("St. Louis"))
	assert.Equal(t, "itagui", fold("ITAGÜÍ"))
	assert.Equal(t, "boulogne billancourt", fold("Boulogne-Billancourt"))
	assert.Equal(t, "", fold("  . "))
}
