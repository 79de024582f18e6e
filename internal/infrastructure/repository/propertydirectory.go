package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/instamakaan/instamakaan/internal/domain/property"
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/models"
	"github.com/instamakaan/instamakaan/internal/shared/db"
)

// PropertyDirectory reads the listing service's properties table.
type PropertyDirectory struct {
	db *gorm.DB
}

func NewPropertyDirectory(db *gorm.DB) *PropertyDirectory {
	return &PropertyDirectory{db: db}
}

var _ property.Directory = (*PropertyDirectory)(nil)

func toListing(m *models.PropertyModel) *property.Listing {
	return &property.Listing{ID: m.ID, OwnerID: m.OwnerID, Title: m.Title}
}

func (d *PropertyDirectory) GetListing(ctx context.Context, listingID string) (*property.Listing, error) {
	var model models.PropertyModel
	if err := db.GetTxFromContext(ctx, d.db).Where("id = ?", listingID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, property.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return toListing(&model), nil
}

func (d *PropertyDirectory) GetListings(ctx context.Context, listingIDs []string) (map[string]*property.Listing, error) {
	result := make(map[string]*property.Listing, len(listingIDs))
	if len(listingIDs) == 0 {
		return result, nil
	}

	var rows []models.PropertyModel
	if err := db.GetTxFromContext(ctx, d.db).Where("id IN ?", listingIDs).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	for idx := range rows {
		result[rows[idx].ID] = toListing(&rows[idx])
	}
	return result, nil
}

func (d *PropertyDirectory) ListingsOfOwner(ctx context.Context, ownerID string) ([]*property.Listing, error) {
	var rows []models.PropertyModel
	if err := db.GetTxFromContext(ctx, d.db).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list owner listings: %w", err)
	}

	listings := make([]*property.Listing, 0, len(rows))
	for idx := range rows {
		listings = append(listings, toListing(&rows[idx]))
	}
	return listings, nil
}

// Upsert writes a listing row. Only the seed command uses it; in production the
// listing service owns the table.
func (d *PropertyDirectory) Upsert(ctx context.Context, listing *property.Listing) error {
	model := models.PropertyModel{ID: listing.ID, OwnerID: listing.OwnerID, Title: listing.Title}
	err := db.GetTxFromContext(ctx, d.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"owner_id", "title"}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert listing: %w", err)
	}
	return nil
}
