package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"gorm.io/gorm"
)

type AddressUpdate struct {
	Label      *string
	Line1      *string
	Line2      *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// AddressRepository scopes every call to the owning user.
type AddressRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error)
	Create(ctx context.Context, address *model.Address) error
	Update(ctx context.Context, userID, id uuid.UUID, in AddressUpdate) (*model.Address, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SetDefault(ctx context.Context, userID, id uuid.UUID) (*model.Address, error)
}

type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	var addresses []model.Address
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at ASC").
		Find(&addresses).Error; err != nil {

		return nil, err
	}
	return addresses, nil
}

// Create makes the first address of a user its default. An address created
// with IsDefault set takes the default over from the previous one.
func (r *GormAddressRepository) Create(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.Address{}).Where("user_id = ?", address.UserID).Count(&existing).Error; err != nil {
			return err
		}

		if existing == 0 {
			address.IsDefault = true
		} else if address.IsDefault {
			if err := clearDefault(tx, address.UserID); err != nil {
				return err
			}
		}

		return tx.Create(address).Error
	})
}

func (r *GormAddressRepository) Update(ctx context.Context, userID, id uuid.UUID, in AddressUpdate) (*model.Address, error) {
	updates := map[string]any{}
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	set("label", in.Label)
	set("line1", in.Line1)
	set("line2", in.Line2)
	set("city", in.City)
	set("state", in.State)
	set("postal_code", in.PostalCode)
	set("country", in.Country)

	db := r.db.WithContext(ctx)

	if len(updates) > 0 {
		result := db.Model(&model.Address{}).Where("id = ? AND user_id = ?", id, userID).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return findAddress(db, userID, id)
}

// Delete removes the address. When it was the default, the oldest remaining
// address becomes the default.
func (r *GormAddressRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		address, err := findAddress(tx, userID, id)
		if err != nil {
			return err
		}

		if err := tx.Delete(&model.Address{}, "id = ?", address.ID).Error; err != nil {
			return err
		}

		if !address.IsDefault {
			return nil
		}

		var next model.Address
		err = tx.Where("user_id = ?", userID).Order("created_at ASC").First(&next).Error
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return tx.Model(&next).Update("is_default", true).Error
	})
}

// SetDefault leaves exactly one default address for the user.
func (r *GormAddressRepository) SetDefault(ctx context.Context, userID, id uuid.UUID) (*model.Address, error) {
	var address *model.Address

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findAddress(tx, userID, id)
		if err != nil {
			return err
		}

		if err := clearDefault(tx, userID); err != nil {
			return err
		}

		if err := tx.Model(found).Update("is_default", true).Error; err != nil {
			return err
		}

		found.IsDefault = true
		address = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

func findAddress(db *gorm.DB, userID, id uuid.UUID) (*model.Address, error) {
	var address model.Address
	if err := db.First(&address, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func clearDefault(db *gorm.DB, userID uuid.UUID) error {
	return db.Model(&model.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
