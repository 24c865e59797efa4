package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/slug"
	"gorm.io/gorm"
)

type LibraryUpdate struct {
	Name        *string
	Phone       *string
	AddressLine *string
	City        *string
	State       *string
	PostalCode  *string
	OpeningTime *string
	ClosingTime *string
}

type LibraryRepository interface {
	Create(ctx context.Context, library *model.Library) error
	FindByEmail(ctx context.Context, email string) (*model.Library, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Library, error)
	FindBySlug(ctx context.Context, slug string) (*model.Library, error)
	Update(ctx context.Context, id uuid.UUID, in LibraryUpdate) (*model.Library, error)
}

type GormLibraryRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormLibraryRepository(db *gorm.DB) *GormLibraryRepository {
	return &GormLibraryRepository{db: db, now: time.Now}
}

// Create derives the slug from the name. A taken slug gets the current Unix
// timestamp appended.
func (r *GormLibraryRepository) Create(ctx context.Context, library *model.Library) error {
	db := r.db.WithContext(ctx)

	library.Email = normalizeEmail(library.Email)
	library.Slug = slug.Make(library.Name)

	var taken int64
	if err := db.Model(&model.Library{}).Where("slug = ?", library.Slug).Count(&taken).Error; err != nil {
		return err
	}
	if taken > 0 {
		library.Slug = slug.WithSuffix(library.Slug, strconv.FormatInt(r.now().Unix(), 10))
	}

	return db.Create(library).Error
}

func (r *GormLibraryRepository) FindByEmail(ctx context.Context, email string) (*model.Library, error) {
	var library model.Library
	if err := r.db.WithContext(ctx).First(&library, "email = ?", normalizeEmail(email)).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

func (r *GormLibraryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Library, error) {
	var library model.Library
	if err := r.db.WithContext(ctx).First(&library, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

func (r *GormLibraryRepository) FindBySlug(ctx context.Context, s string) (*model.Library, error) {
	var library model.Library
	if err := r.db.WithContext(ctx).First(&library, "slug = ?", s).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

// Update keeps the slug stable when the name changes so shared links keep
// working.
func (r *GormLibraryRepository) Update(ctx context.Context, id uuid.UUID, in LibraryUpdate) (*model.Library, error) {
	updates := map[string]any{}
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = strings.TrimSpace(*v)
		}
	}
	set("name", in.Name)
	set("phone", in.Phone)
	set("address_line", in.AddressLine)
	set("city", in.City)
	set("state", in.State)
	set("postal_code", in.PostalCode)
	set("opening_time", in.OpeningTime)
	set("closing_time", in.ClosingTime)

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&model.Library{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindByID(ctx, id)
}
