package repository

import (
	"context"

	"nomad/internal/domain/entity"

	"github.com/google/uuid"
)

// BoundingBox is a latitude/longitude rectangle used to prefilter proximity candidates.
type BoundingBox struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

// CandidateQuery selects the businesses worth evaluating for one user.
type CandidateQuery struct {
	Localities  []string     // Locality keys of the user's canonical area, see LocationResolver.LocalityKey.
	Box         *BoundingBox // Optional; proximity-enabled locations inside the box are included.
	ExcludeUser uuid.UUID    // Businesses owned by this user are skipped.
	Limit       int
}

// BusinessRepository reads business profiles, which are owned by the profile service.
type BusinessRepository interface {
	// FindProfileByID retrieves a business profile by business ID.
	FindProfileByID(ctx context.Context, businessID uuid.UUID) (*entity.BusinessProfile, error)

	// FindProfileByOwner retrieves the business owned by a user.
	FindProfileByOwner(ctx context.Context, ownerUserID uuid.UUID) (*entity.BusinessProfile, error)

	// FindCandidates returns businesses located in one of the localities or
	// pinned inside the box, each with its location when one exists.
	FindCandidates(ctx context.Context, query CandidateQuery) ([]*entity.Business, error)
}

// BusinessLocationRepository persists the pinned point of each business.
type BusinessLocationRepository interface {
	// UpsertLocation creates or replaces the location of location.BusinessID.
	UpsertLocation(ctx context.Context, location *entity.BusinessLocation) error

	// FindLocationByBusiness retrieves the location of a business.
	FindLocationByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.BusinessLocation, error)
}
