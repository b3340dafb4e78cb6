package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/shipment"
	"galapagos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment record to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceFailureError("postgres", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment record to the database.
// Uses a column map so the nulled locker reference persists on delivery.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"order_id":       dto.OrderID,
			"trip_id":        dto.TripID,
			"locker_id":      dto.LockerID,
			"status":         dto.Status,
			"estimated_date": dto.EstimatedDate,
		})
	if result.Error != nil {
		return errs.NewPersistenceFailureError("postgres", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment record by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, errs.NewPersistenceFailureError("postgres", err)
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every shipment record of the given order.
func (r *GormShipmentRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, errs.NewPersistenceFailureError("postgres", err)
	}

	return r.toDomainAll(dtos)
}

// GetAllInProgress retrieves every shipment record currently underway.
func (r *GormShipmentRepository) GetAllInProgress(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(shipment.InProgress)).Error; err != nil {
		return nil, errs.NewPersistenceFailureError("postgres", err)
	}

	return r.toDomainAll(dtos)
}

// GetAllInProgressDueBy retrieves in-progress shipment records whose
// estimated date is at or before the given moment.
func (r *GormShipmentRepository) GetAllInProgressDueBy(ctx context.Context, due time.Time) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND estimated_date <= ?", int(shipment.InProgress), due).Error; err != nil {
		return nil, errs.NewPersistenceFailureError("postgres", err)
	}

	return r.toDomainAll(dtos)
}

func (r *GormShipmentRepository) toDomainAll(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	records := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
