package roundrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/round"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRoundRepository implements RoundRepository using GORM.
type GormRoundRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRoundRepository creates a new GORM delivery round repository.
func NewGormRoundRepository(db *gorm.DB, tracker aggregateTracker) *GormRoundRepository {
	return &GormRoundRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new round and its stops to the database.
func (r *GormRoundRepository) Add(ctx context.Context, aggregate *round.Round) error {
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

// Update saves an existing round to the database, stop children included.
func (r *GormRoundRepository) Update(ctx context.Context, aggregate *round.Round) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested stops
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

// Get retrieves a round by ID with its stops ordered by sequence.
func (r *GormRoundRepository) Get(ctx context.Context, id kernel.UUID) (*round.Round, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RoundDTO
	if err := r.db.WithContext(ctx).
		Preload("Stops", orderBySequence).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("round", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetReadyByDriver retrieves the driver's round still in Ready status.
// A driver holds at most one at any time.
func (r *GormRoundRepository) GetReadyByDriver(ctx context.Context, driverID kernel.UUID) (*round.Round, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto RoundDTO
	if err := r.db.WithContext(ctx).
		Preload("Stops", orderBySequence).
		First(&dto, "driver_id = ? AND status = ?", driverID.Bytes(), int(round.Ready)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ready round for driver", driverID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a round; the stop rows go with it via the cascade constraint.
func (r *GormRoundRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RoundDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("round", id.String())
	}

	return nil
}

func orderBySequence(db *gorm.DB) *gorm.DB {
	return db.Order("stops.sequence")
}
