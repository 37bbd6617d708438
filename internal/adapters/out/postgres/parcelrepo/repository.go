package parcelrepo

import (
	"context"

	"parceltracker/internal/adapters/out/postgres/pgutil"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.ParcelRepository = (*GormParcelRepository)(nil)

var columns = pgutil.Columns{
	parcel.FieldGuestID: "guest_id",
	parcel.FieldStatus:  "status",
}

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

func (r *GormParcelRepository) NextID(ctx context.Context) (kernel.UUID, error) {
	var raw uuid.UUID
	if err := r.db.WithContext(ctx).Raw("SELECT gen_random_uuid()").Scan(&raw).Error; err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(raw[:])
}

// Add inserts a parcel. A dangling guest id surfaces as not found.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if pgutil.IsForeignKeyViolation(err) {
			return errs.NewObjectNotFoundErrorWithCause("guest", aggregate.GuestID().String(), err)
		}
		return pgutil.Classify(err, "parcel")
	}
	return nil
}

func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("description", "status").
		Updates(&dto)
	if result.Error != nil {
		return pgutil.Classify(result.Error, "parcel")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
	}
	return nil
}

func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgutil.Classify(result.Error, "parcel")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}
	return nil
}

func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormParcelRepository) get(db *gorm.DB, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "parcel", id)
	}

	return toDomain(dto)
}

func (r *GormParcelRepository) List(ctx context.Context, page kernel.PageRequest) ([]*parcel.Parcel, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ParcelDTO{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Order("received_time, id").
		Offset(page.Offset()).
		Limit(page.Size()).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, err
	}

	items, err := toDomainAll(dtos)
	return items, total, err
}

func (r *GormParcelRepository) Find(
	ctx context.Context,
	spec kernel.Specification[*parcel.Parcel],
) ([]*parcel.Parcel, error) {
	db, err := pgutil.Where(r.db.WithContext(ctx).Model(&ParcelDTO{}), spec.Criteria(), columns)
	if err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	if err := db.Order("received_time, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Exists runs SELECT EXISTS over the translated criteria.
func (r *GormParcelRepository) Exists(ctx context.Context, spec kernel.Specification[*parcel.Parcel]) (bool, error) {
	sub, err := pgutil.Where(r.db.WithContext(ctx).Model(&ParcelDTO{}).Select("1"), spec.Criteria(), columns)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.db.WithContext(ctx).Raw("SELECT EXISTS (?)", sub).Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

func toDomainAll(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}
	return parcels, nil
}
