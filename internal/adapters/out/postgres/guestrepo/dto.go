// Package guestrepo persists guest aggregates with GORM.
package guestrepo

import (
	"time"

	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// GuestDTO is the row of the guests table. Status is stored by its wire name.
type GuestDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	CheckInTime  time.Time  `gorm:"type:timestamptz;not null;index:idx_guests_check_in,priority:1"`
	CheckOutTime *time.Time `gorm:"type:timestamptz"`
}

func (GuestDTO) TableName() string {
	return "guests"
}

func fromDomain(g *guest.Guest) GuestDTO {
	return GuestDTO{
		ID:           g.ID().Bytes(),
		Name:         g.Name(),
		Status:       g.Status().String(),
		CheckInTime:  g.CheckInTime(),
		CheckOutTime: g.CheckOutTime(),
	}
}

func toDomain(dto GuestDTO) (*guest.Guest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := guest.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return guest.RestoreGuest(id, dto.Name, status, dto.CheckInTime, dto.CheckOutTime)
}
