package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"itinera/internal/models/db_models"
)

type POIRepository interface {
	// ListByCountry matches the canonical country key.
	ListByCountry(ctx context.Context, country string) ([]db_models.POI, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.POI, error)
	UpsertPoi(ctx context.Context, poi *db_models.POI) error
	DeleteBySlug(ctx context.Context, slug string) error
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, pois []db_models.POI) error
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) ListByCountry(ctx context.Context, country string) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Where("country_key = ?", country).
		Order("id").
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

// GetBySlug returns nil, nil when no row matches.
func (r *poiRepository) GetBySlug(ctx context.Context, slug string) (*db_models.POI, error) {
	var poi db_models.POI
	err := r.db.WithContext(ctx).First(&poi, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &poi, nil
}

func (r *poiRepository) UpsertPoi(ctx context.Context, poi *db_models.POI) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "city", "country", "country_key", "latitude", "longitude",
			"tags", "popularity", "duration_min", "updated_at", "deleted_at",
		}),
	}).Create(poi).Error
	if err != nil {
		return fmt.Errorf("failed to upsert POI %s: %w", poi.Slug, err)
	}
	return nil
}

func (r *poiRepository) DeleteBySlug(ctx context.Context, slug string) error {
	result := r.db.WithContext(ctx).Delete(&db_models.POI{}, "slug = ?", slug)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *poiRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.POI{}).Count(&n).Error
	return n, err
}

func (r *poiRepository) CreateBatch(ctx context.Context, pois []db_models.POI) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(pois, 100).Error
	})
}
