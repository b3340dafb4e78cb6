package lockerrepo

import (
	"context"
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLockerRepository implements LockerRepository using GORM.
// Claims go through a conditional UPDATE whose guard sits in the WHERE
// clause, so two planning runs racing for the same locker resolve at the
// database without ever observing each other's intermediate state.
type GormLockerRepository struct {
	db *gorm.DB
}

// NewGormLockerRepository creates a new GORM locker repository.
func NewGormLockerRepository(db *gorm.DB) *GormLockerRepository {
	return &GormLockerRepository{db: db}
}

// Add saves a new locker to the database.
func (r *GormLockerRepository) Add(ctx context.Context, aggregate *locker.Locker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceFailureError("postgres", err)
	}
	return nil
}

// Get retrieves a locker by ID.
func (r *GormLockerRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LockerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locker", id.String())
		}
		return nil, errs.NewPersistenceFailureError("postgres", err)
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves every available locker ordered by ID.
func (r *GormLockerRepository) GetAllAvailable(ctx context.Context) ([]*locker.Locker, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).Where("available = ?", true))
}

// GetAll retrieves every locker ordered by ID.
func (r *GormLockerRepository) GetAll(ctx context.Context) ([]*locker.Locker, error) {
	return r.findAll(ctx, r.db.WithContext(ctx))
}

func (r *GormLockerRepository) findAll(_ context.Context, tx *gorm.DB) ([]*locker.Locker, error) {
	var dtos []LockerDTO
	if err := tx.Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceFailureError("postgres", err)
	}

	lockers := make([]*locker.Locker, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lockers = append(lockers, l)
	}

	return lockers, nil
}

// TryClaim marks the locker unavailable if it is still available.
// Reports false without error when another caller claimed it first.
func (r *GormLockerRepository) TryClaim(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Exec(
		"UPDATE lockers SET available = false WHERE id = ? AND available = true",
		id.Bytes(),
	)
	if result.Error != nil {
		return false, errs.NewPersistenceFailureError("postgres", result.Error)
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	if _, err := r.Get(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

// Release marks the locker available again.
func (r *GormLockerRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(
		"UPDATE lockers SET available = true WHERE id = ?",
		id.Bytes(),
	)
	if result.Error != nil {
		return errs.NewPersistenceFailureError("postgres", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("locker", id.String())
	}

	return nil
}
