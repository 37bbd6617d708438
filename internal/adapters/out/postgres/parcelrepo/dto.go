// Package parcelrepo persists parcel aggregates with GORM.
package parcelrepo

import (
	"time"

	"parceltracker/internal/adapters/out/postgres/guestrepo"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the row of the parcels table. Guest is only declared so the
// migration creates the foreign key; it is never loaded.
type ParcelDTO struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	GuestID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	Guest        *guestrepo.GuestDTO `gorm:"foreignKey:GuestID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Description  string              `gorm:"type:varchar(1024);not null"`
	ReceivedTime time.Time           `gorm:"type:timestamptz;not null;index"`
	Status       string              `gorm:"type:varchar(16);not null;index"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:           p.ID().Bytes(),
		GuestID:      p.GuestID().Bytes(),
		Description:  p.Description(),
		ReceivedTime: p.ReceivedTime(),
		Status:       p.Status().String(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	guestID, err := kernel.UUIDFromBytes(dto.GuestID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, guestID, dto.Description, dto.ReceivedTime, status)
}
