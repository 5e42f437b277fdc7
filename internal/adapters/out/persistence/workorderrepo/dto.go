// Package workorderrepo maps work order aggregates to the work_orders table.
package workorderrepo

import (
	"time"

	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"

	"github.com/shopspring/decimal"
)

// WorkOrderDTO is a row of the work_orders table. Status is stored as its
// display name.
type WorkOrderDTO struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	ClientID             int64     `gorm:"not null;index:idx_work_orders_client_id"`
	OrderDate            time.Time `gorm:"not null"`
	ExpectedDeliveryDate time.Time `gorm:"not null;index:idx_work_orders_expected_delivery_date"`
	ActualDeliveryDate   *time.Time
	Description          string          `gorm:"size:1000;not null;default:''"`
	Notes                string          `gorm:"size:1000;not null;default:''"`
	Status               string          `gorm:"size:50;not null;index:idx_work_orders_status"`
	AdvancePaid          decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	TotalEstimate        decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	ActualAmount         decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	DueCleared           bool            `gorm:"not null;default:false"`
	CreatedAt            time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt            time.Time       `gorm:"not null;autoUpdateTime:false"`
}

func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

func fromDomain(w *workorder.WorkOrder) WorkOrderDTO {
	s := w.Snapshot()
	dto := WorkOrderDTO{
		ID:                   s.ID,
		ClientID:             s.ClientID,
		OrderDate:            s.OrderDate.UTC(),
		ExpectedDeliveryDate: s.ExpectedDeliveryDate.UTC(),
		Description:          s.Description,
		Notes:                s.Notes,
		Status:               s.Status.String(),
		AdvancePaid:          s.Billing.AdvancePaid.Decimal(),
		TotalEstimate:        s.Billing.TotalEstimate.Decimal(),
		ActualAmount:         s.Billing.ActualAmount.Decimal(),
		DueCleared:           s.DueCleared,
		CreatedAt:            s.CreatedAt.UTC(),
		UpdatedAt:            s.UpdatedAt.UTC(),
	}
	if s.ActualDeliveryDate != nil {
		actual := s.ActualDeliveryDate.UTC()
		dto.ActualDeliveryDate = &actual
	}
	return dto
}

// ToDomain rebuilds a work order from a row.
func ToDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	status, err := workorder.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	advance, errA := kernel.NewMoneyFromDecimal("advance paid", dto.AdvancePaid)
	estimate, errE := kernel.NewMoneyFromDecimal("total estimate", dto.TotalEstimate)
	actual, errX := kernel.NewMoneyFromDecimal("actual amount", dto.ActualAmount)
	for _, err = range []error{errA, errE, errX} {
		if err != nil {
			return nil, err
		}
	}

	return workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:                   dto.ID,
		ClientID:             dto.ClientID,
		OrderDate:            dto.OrderDate,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
		ActualDeliveryDate:   dto.ActualDeliveryDate,
		Description:          dto.Description,
		Notes:                dto.Notes,
		Status:               status,
		Billing: workorder.Billing{
			AdvancePaid:   advance,
			TotalEstimate: estimate,
			ActualAmount:  actual,
		},
		DueCleared: dto.DueCleared,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	})
}
