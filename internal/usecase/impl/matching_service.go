package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"nomad/config"
	deliverycontext "nomad/internal/delivery/context"
	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/domain/service"
	"nomad/internal/usecase"
	"nomad/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// matchingService implements the MatchingUsecase interface.
type matchingService struct {
	businessRepo  repository.BusinessRepository
	resolver      service.LocationResolver
	notifications usecase.NotificationUsecase
	publisher     service.EventPublisher
	logger        *slog.Logger
	radiusKm      float64
	maxCandidates int
	now           func() time.Time
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(
	businessRepo repository.BusinessRepository,
	resolver service.LocationResolver,
	notifications usecase.NotificationUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MatchingUsecase {
	matching := cfg.Matching
	if matching == nil {
		matching = config.DefaultMatchingConfig()
	}
	radius := matching.ProximityRadiusKm
	if radius <= 0 {
		radius = config.DefaultMatchingConfig().ProximityRadiusKm
	}
	maxCandidates := matching.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = config.DefaultMatchingConfig().MaxCandidates
	}

	return &matchingService{
		businessRepo:  businessRepo,
		resolver:      resolver,
		notifications: notifications,
		publisher:     publisher,
		logger:        logger,
		radiusKm:      radius,
		maxCandidates: maxCandidates,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *matchingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// userSnapshot is the part of a user context the rules look at, resolved once per evaluation.
type userSnapshot struct {
	userID     uuid.UUID
	place      entity.Place
	canonical  entity.CanonicalLocation
	point      *orb.Point
	traveling  bool
	window     *entity.TravelWindow
	interests  []string
	activities []string
}

// Evaluate matches the user against candidate businesses and creates at most
// one notification per business.
func (srv *matchingService) Evaluate(ctx context.Context, userContext *entity.UserContext) ([]*entity.BusinessNotification, error) {
	if err := validateUserContext(userContext); err != nil {
		return nil, err
	}
	if userContext.IsBusiness {
		srv.log(ctx).Debug("Skipping business account", slog.String("user_id", userContext.UserID.String()))

		return nil, nil
	}

	user := srv.snapshot(userContext)

	query := repository.CandidateQuery{
		ExcludeUser: user.userID,
		Limit:       srv.maxCandidates,
	}
	if user.canonical.Name != "" {
		query.Localities = srv.localityKeys(user.canonical)
	}
	if user.point != nil {
		bound := geo.NewBoundAroundPoint(*user.point, srv.radiusKm*1000)
		query.Box = &repository.BoundingBox{
			MinLatitude:  bound.Min.Lat(),
			MaxLatitude:  bound.Max.Lat(),
			MinLongitude: bound.Min.Lon(),
			MaxLongitude: bound.Max.Lon(),
		}
	}
	if len(query.Localities) == 0 && query.Box == nil {
		return nil, nil
	}

	candidates, err := srv.businessRepo.FindCandidates(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidate businesses")
	}
	if len(candidates) >= query.Limit {
		srv.log(ctx).Warn("Candidate limit reached, later businesses were not evaluated",
			slog.String("user_id", user.userID.String()),
			slog.String("area", user.canonical.Name),
			slog.Int("limit", query.Limit),
		)
	}

	created := make([]*entity.BusinessNotification, 0)
	for _, candidate := range candidates {
		if candidate == nil || candidate.Profile == nil {
			continue
		}

		notification := srv.match(user, candidate)
		if notification == nil {
			continue
		}

		ok, err := srv.notifications.Create(ctx, candidate.Profile, notification)
		if err != nil {
			return created, errors.Wrapf(err, "failed to create notification for business %s", candidate.Profile.BusinessID)
		}
		if ok {
			created = append(created, notification)
		}
	}

	srv.log(ctx).Info("Evaluated user context",
		slog.String("user_id", user.userID.String()),
		slog.String("area", user.canonical.Name),
		slog.Bool("traveling", user.traveling),
		slog.Int("candidates", len(candidates)),
		slog.Int("created", len(created)),
	)

	return created, nil
}

// localityKeys folds the members of an area so the store can compare them
// with the folded city of each business.
func (srv *matchingService) localityKeys(area entity.CanonicalLocation) []string {
	members := srv.resolver.MembersOf(area.Name, area.State, area.Country)
	keys := make([]string, 0, len(members))
	for _, member := range members {
		if key := srv.resolver.LocalityKey(member); key != "" && !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}

	return keys
}

func validateUserContext(userContext *entity.UserContext) error {
	if userContext == nil || userContext.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("user context requires a user id")
	}

	return nil
}

func (srv *matchingService) snapshot(userContext *entity.UserContext) *userSnapshot {
	now := srv.now()
	place := userContext.CurrentPlace(now)

	user := &userSnapshot{
		userID:     userContext.UserID,
		place:      place,
		traveling:  userContext.IsTraveling(now),
		interests:  util.NormalizeTags(userContext.Interests),
		activities: util.NormalizeTags(userContext.Activities),
	}
	if strings.TrimSpace(place.City) != "" {
		user.canonical = srv.resolver.Canonicalize(place.City, place.State, place.Country)
	}
	if place.Coordinates != nil && place.Coordinates.Valid() {
		user.point = &orb.Point{place.Coordinates.Longitude, place.Coordinates.Latitude}
	}
	if user.traveling {
		user.window = userContext.TravelWindow
	}

	return user
}

// match applies the rules to one business. Proximity outranks interest and
// an active traveller outranks a local user.
func (srv *matchingService) match(user *userSnapshot, business *entity.Business) *entity.BusinessNotification {
	profile := business.Profile

	interests := util.IntersectTags(user.interests, profile.TargetInterests)
	activities := util.IntersectTags(user.activities, profile.TargetActivities)

	interestMatch := false
	if user.canonical.Name != "" && len(interests)+len(activities) > 0 {
		area := srv.resolver.Canonicalize(profile.City, profile.State, profile.Country)
		interestMatch = user.canonical.SameArea(area)
	}

	var distanceKm *float64
	if user.point != nil && business.Location.ProximityEvaluable() {
		loc := business.Location.Coordinates()
		d := geo.DistanceHaversine(*user.point, orb.Point{loc.Longitude, loc.Latitude}) / 1000
		distanceKm = &d
	}
	proximityMatch := distanceKm != nil && *distanceKm <= srv.radiusKm

	var (
		matchType entity.MatchType
		priority  entity.Priority
	)
	switch {
	case proximityMatch && user.traveling:
		matchType, priority = entity.MatchTypeProximity, entity.PriorityUrgent
	case proximityMatch:
		matchType, priority = entity.MatchTypeProximity, entity.PriorityHigh
	case interestMatch && user.traveling:
		matchType, priority = entity.MatchTypeTravelerInterest, entity.PriorityNormal
	case interestMatch:
		matchType, priority = entity.MatchTypeLocalInterest, entity.PriorityLow
	default:
		return nil
	}

	notification := &entity.BusinessNotification{
		BusinessID:        profile.BusinessID,
		UserID:            user.userID,
		MatchType:         matchType,
		MatchedInterests:  interests,
		MatchedActivities: activities,
		UserLocation:      user.place.Describe(user.canonical),
		Priority:          priority,
		TravelWindow:      user.window,
		NaturalKey:        naturalKey(profile.BusinessID, user.userID, matchType, interests, activities),
	}
	if matchType == entity.MatchTypeProximity {
		notification.DistanceKm = distanceKm
	}

	return notification
}

// naturalKey identifies a match independent of when it was found. Tags are
// already sorted by IntersectTags.
func naturalKey(businessID, userID uuid.UUID, matchType entity.MatchType, interests, activities []string) string {
	return util.HashKey(
		businessID.String(),
		userID.String(),
		string(matchType),
		strings.Join(interests, ","),
		strings.Join(activities, ","),
	)
}

// Enqueue publishes the change for the match worker.
func (srv *matchingService) Enqueue(ctx context.Context, userContext *entity.UserContext) error {
	if err := validateUserContext(userContext); err != nil {
		return err
	}

	event := &service.ContextChangedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Context:   userContext,
		ChangedAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishContextChanged(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish context change")
	}

	return nil
}
