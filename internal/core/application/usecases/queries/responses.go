// Package queries contains the read operations over guests and parcels.
// Lookups by id and page listings go through the read-through cache;
// searches always hit the store.
package queries

import (
	"time"

	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
)

// GuestResponse is the read model of a guest. It is also the cached form.
type GuestResponse struct {
	ID           kernel.UUID  `json:"id"`
	Name         string       `json:"name"`
	Status       guest.Status `json:"status"`
	CheckInTime  time.Time    `json:"checkInTime"`
	CheckOutTime *time.Time   `json:"checkOutTime"`
}

func NewGuestResponse(g *guest.Guest) GuestResponse {
	return GuestResponse{
		ID:           g.ID(),
		Name:         g.Name(),
		Status:       g.Status(),
		CheckInTime:  g.CheckInTime(),
		CheckOutTime: g.CheckOutTime(),
	}
}

// ParcelResponse is the read model of a parcel.
type ParcelResponse struct {
	ID           kernel.UUID   `json:"id"`
	GuestID      kernel.UUID   `json:"guestId"`
	Description  string        `json:"description"`
	ReceivedTime time.Time     `json:"receivedTime"`
	Status       parcel.Status `json:"status"`
}

func NewParcelResponse(p *parcel.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:           p.ID(),
		GuestID:      p.GuestID(),
		Description:  p.Description(),
		ReceivedTime: p.ReceivedTime(),
		Status:       p.Status(),
	}
}

// PageResponse is one page of a FindAll listing.
type PageResponse[T any] struct {
	Items         []T   `json:"items"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func newPageResponse[T any](items []T, page kernel.PageRequest, total int64) PageResponse[T] {
	return PageResponse[T]{
		Items:         items,
		Page:          page.Page(),
		Size:          page.Size(),
		TotalElements: total,
		TotalPages:    page.TotalPages(total),
	}
}

func mapAll[S, T any](items []S, fn func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
