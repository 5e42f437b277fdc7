package workorderrepo

import (
	"context"
	"errors"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/ports"
	"boutique/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormWorkOrderRepository implements ports.WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the work order and assigns the generated id to it. An unknown
// client fails with errs.ObjectNotFoundError.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(err, aggregate)
	}
	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every mutable column, so cleared fields are stored too.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("id = ?", dto.ID).
		Select(
			"expected_delivery_date", "actual_delivery_date", "description", "notes", "status",
			"advance_paid", "total_estimate", "actual_amount", "due_cleared", "updated_at",
		).
		Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error, aggregate)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work order", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWorkOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&WorkOrderDTO{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work order", id)
	}
	return nil
}

func (r *GormWorkOrderRepository) Get(ctx context.Context, id int64) (*workorder.WorkOrder, error) {
	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", id)
		}
		return nil, err
	}

	return ToDomain(dto)
}

func (r *GormWorkOrderRepository) List(ctx context.Context, page ports.Page) ([]*workorder.WorkOrder, error) {
	return r.find(r.db.WithContext(ctx).Scopes(paginate(page)))
}

func (r *GormWorkOrderRepository) GetAll(ctx context.Context) ([]*workorder.WorkOrder, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormWorkOrderRepository) GetAllByClient(ctx context.Context, clientID int64) ([]*workorder.WorkOrder, error) {
	return r.find(r.db.WithContext(ctx).Where("client_id = ?", clientID))
}

func (r *GormWorkOrderRepository) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Where("client_id = ?", clientID).Count(&n).Error
	return n, err
}

func (r *GormWorkOrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Count(&n).Error
	return n, err
}

func (r *GormWorkOrderRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&WorkOrderDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormWorkOrderRepository) find(q *gorm.DB) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	if err := q.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		w, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, w)
	}

	return orders, nil
}

func paginate(page ports.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		limit := page.Limit
		if limit <= 0 {
			limit = -1
		}
		return db.Offset(page.Offset).Limit(limit)
	}
}

// translateWriteError reports a missing client as errs.ObjectNotFoundError.
func translateWriteError(err error, w *workorder.WorkOrder) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewObjectNotFoundErrorWithCause("client", w.ClientID(), err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return errs.NewObjectNotFoundErrorWithCause("client", w.ClientID(), err)
	}

	return err
}
