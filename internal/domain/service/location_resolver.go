package service

import "nomad/internal/domain/entity"

// LocationResolver maps free-text places to canonical matching areas.
// It never fails: an unknown locality is its own canonical location.
type LocationResolver interface {
	// Canonicalize resolves a city with optional state and country qualifiers.
	Canonicalize(city, state, country string) entity.CanonicalLocation

	// MembersOf lists the localities of the named area. For a locality that
	// is not a metro area the result is just that locality.
	MembersOf(canonicalName, state, country string) []string

	// LocalityKey folds a locality name into the key used to compare it.
	LocalityKey(name string) string
}
