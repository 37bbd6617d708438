package guestrepo

import (
	"context"

	"parceltracker/internal/adapters/out/postgres/pgutil"
	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/services"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.GuestRepository = (*GormGuestRepository)(nil)

var columns = pgutil.Columns{
	guest.FieldName:   "name",
	guest.FieldStatus: "status",
}

// GormGuestRepository implements ports.GuestRepository using GORM.
type GormGuestRepository struct {
	db *gorm.DB
}

// NewGormGuestRepository returns a repository over db, which may be a transaction.
func NewGormGuestRepository(db *gorm.DB) *GormGuestRepository {
	return &GormGuestRepository{db: db}
}

// NextID asks the database for a fresh random UUID.
func (r *GormGuestRepository) NextID(ctx context.Context) (kernel.UUID, error) {
	var raw uuid.UUID
	if err := r.db.WithContext(ctx).Raw("SELECT gen_random_uuid()").Scan(&raw).Error; err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(raw[:])
}

func (r *GormGuestRepository) Add(ctx context.Context, aggregate *guest.Guest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Classify(err, "guest")
	}
	return nil
}

// Update writes the mutable columns. Zero rows affected means the guest is gone.
func (r *GormGuestRepository) Update(ctx context.Context, aggregate *guest.Guest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&GuestDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "status", "check_out_time").
		Updates(&dto)
	if result.Error != nil {
		return pgutil.Classify(result.Error, "guest")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("guest", aggregate.ID().String())
	}
	return nil
}

// Delete removes a guest. The parcels foreign key restricts deletion of
// guests that still own parcels.
func (r *GormGuestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&GuestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if pgutil.IsForeignKeyViolation(result.Error) {
			return errs.NewConflictErrorWithCause(services.ErrGuestHasParcels.Reason, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("guest", id.String())
	}
	return nil
}

func (r *GormGuestRepository) Get(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the row with SELECT ... FOR UPDATE until the transaction ends.
func (r *GormGuestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*guest.Guest, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormGuestRepository) get(db *gorm.DB, id kernel.UUID) (*guest.Guest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GuestDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "guest", id)
	}

	return toDomain(dto)
}

func (r *GormGuestRepository) List(ctx context.Context, page kernel.PageRequest) ([]*guest.Guest, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&GuestDTO{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []GuestDTO
	err := r.db.WithContext(ctx).
		Order("check_in_time, id").
		Offset(page.Offset()).
		Limit(page.Size()).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, err
	}

	items, err := toDomainAll(dtos)
	return items, total, err
}

// Find translates spec into a WHERE clause over whitelisted columns.
func (r *GormGuestRepository) Find(
	ctx context.Context,
	spec kernel.Specification[*guest.Guest],
) ([]*guest.Guest, error) {
	db, err := pgutil.Where(r.db.WithContext(ctx).Model(&GuestDTO{}), spec.Criteria(), columns)
	if err != nil {
		return nil, err
	}

	var dtos []GuestDTO
	if err := db.Order("check_in_time, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []GuestDTO) ([]*guest.Guest, error) {
	guests := make([]*guest.Guest, 0, len(dtos))
	for _, dto := range dtos {
		g, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, nil
}
