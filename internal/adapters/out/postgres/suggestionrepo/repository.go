package suggestionrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/suggestion"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSuggestionRepository implements SuggestionRepository using GORM.
type GormSuggestionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSuggestionRepository creates a new GORM suggested round repository.
func NewGormSuggestionRepository(db *gorm.DB, tracker aggregateTracker) *GormSuggestionRepository {
	return &GormSuggestionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new suggestion and its members to the database.
func (r *GormSuggestionRepository) Add(ctx context.Context, aggregate *suggestion.Suggestion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing suggestion to the database.
func (r *GormSuggestionRepository) Update(ctx context.Context, aggregate *suggestion.Suggestion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested members
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a suggestion by ID with its members ordered by sequence.
func (r *GormSuggestionRepository) Get(ctx context.Context, id kernel.UUID) (*suggestion.Suggestion, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SuggestedRoundDTO
	if err := r.db.WithContext(ctx).
		Preload("Members", orderBySequence).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("suggested round", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim persists the aggregate's claim fields with a conditional update.
// Only an accepted, unexpired, unclaimed suggestion can be taken; zero
// affected rows means another driver won the race.
func (r *GormSuggestionRepository) Claim(ctx context.Context, aggregate *suggestion.Suggestion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.DriverID() == nil || aggregate.ClaimedAt() == nil {
		return errs.NewValueIsRequiredError("claim fields")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SuggestedRoundDTO{}).
		Where("id = ? AND status = ? AND driver_id IS NULL AND expires_at > ?",
			dto.ID, int(suggestion.Accepted), *dto.ClaimedAt).
		Updates(map[string]any{
			"driver_id":  dto.DriverID,
			"claimed_at": dto.ClaimedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewResourceConflictErrorWithCause(
			"suggested round", aggregate.ID().String(), suggestion.ErrSuggestionAlreadyClaimed)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// RevertToPending persists the aggregate's reopened state, guarded by
// "not expired" so an expired suggestion is never revived.
func (r *GormSuggestionRepository) RevertToPending(ctx context.Context, aggregate *suggestion.Suggestion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SuggestedRoundDTO{}).
		Where("id = ? AND status <> ?", dto.ID, int(suggestion.Expired)).
		Updates(map[string]any{
			"status":     int(suggestion.Pending),
			"driver_id":  nil,
			"claimed_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedErrorWithCause(
			"suggestion cannot be reverted", suggestion.ErrSuggestionExpired)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExpireAllDue transitions every unclaimed pending or accepted suggestion
// whose expiry timestamp has passed. Claimed suggestions are left alone;
// their fate is decided by the round lifecycle.
func (r *GormSuggestionRepository) ExpireAllDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&SuggestedRoundDTO{}).
		Where("status IN (?, ?) AND driver_id IS NULL AND expires_at <= ?",
			int(suggestion.Pending), int(suggestion.Accepted), now).
		Update("status", int(suggestion.Expired))
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func orderBySequence(db *gorm.DB) *gorm.DB {
	return db.Order("suggestion_members.sequence")
}
