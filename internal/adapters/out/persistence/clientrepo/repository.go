package clientrepo

import (
	"context"
	"errors"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/ports"
	"boutique/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the client and assigns the generated id to it.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
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

// Update writes every column, so cleared optional fields are stored as NULL.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ClientDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "mobile_number", "email", "address", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error, aggregate)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormClientRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ClientDTO{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", id)
	}
	return nil
}

func (r *GormClientRepository) Get(ctx context.Context, id int64) (*client.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id)
		}
		return nil, err
	}

	return ToDomain(dto)
}

func (r *GormClientRepository) GetByMobile(ctx context.Context, mobile kernel.Mobile) (*client.Client, error) {
	if err := mobile.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "mobile_number = ?", mobile.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client with mobile number", mobile.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

func (r *GormClientRepository) List(ctx context.Context, page ports.Page) ([]*client.Client, error) {
	var dtos []ClientDTO
	if err := r.db.WithContext(ctx).
		Scopes(paginate(page)).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	clients := make([]*client.Client, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, nil
}

func (r *GormClientRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ClientDTO{}).Count(&n).Error
	return n, err
}

func (r *GormClientRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&ClientDTO{})
	return result.RowsAffected, result.Error
}

// paginate applies page. A non-positive limit means no limit.
func paginate(page ports.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		limit := page.Limit
		if limit <= 0 {
			limit = -1
		}
		return db.Offset(page.Offset).Limit(limit)
	}
}

// translateWriteError reports unique violations on the mobile number as
// errs.ObjectAlreadyExistsError. lib/pq errors are not translated by GORM.
func translateWriteError(err error, c *client.Client) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsErrorWithCause("client with mobile number", c.Mobile().String(), err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return errs.NewObjectAlreadyExistsErrorWithCause("client with mobile number", c.Mobile().String(), err)
	}

	return err
}
