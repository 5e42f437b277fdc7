// Package clientrepo maps client aggregates to the clients table.
package clientrepo

import (
	"time"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
)

// ClientDTO is a row of the clients table. Timestamps come from the domain
// clock, so GORM's automatic time tracking is off.
type ClientDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"size:100;not null"`
	MobileNumber string    `gorm:"size:10;not null;uniqueIndex:idx_clients_mobile_number"`
	Email        *string   `gorm:"size:100"`
	Address      *string   `gorm:"size:500"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	dto := ClientDTO{
		ID:           c.ID(),
		Name:         c.Name(),
		MobileNumber: c.Mobile().String(),
		CreatedAt:    c.CreatedAt().UTC(),
		UpdatedAt:    c.UpdatedAt().UTC(),
	}
	if e := c.Email(); e.IsPresent() {
		v := e.String()
		dto.Email = &v
	}
	if a := c.Address(); a != "" {
		dto.Address = &a
	}
	return dto
}

// ToDomain rebuilds a client from a row.
func ToDomain(dto ClientDTO) (*client.Client, error) {
	mobile, err := kernel.NewMobile(dto.MobileNumber)
	if err != nil {
		return nil, err
	}

	var email kernel.Email
	if dto.Email != nil {
		if email, err = kernel.NewEmail(*dto.Email); err != nil {
			return nil, err
		}
	}

	var address string
	if dto.Address != nil {
		address = *dto.Address
	}

	return client.RestoreClient(dto.ID, dto.Name, mobile, email, address, dto.CreatedAt, dto.UpdatedAt)
}
