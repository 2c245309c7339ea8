package repository

import (
	"hospital-staff-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItemRepository handles database operations for pharmacy stock
type InventoryItemRepository struct {
	db *gorm.DB
}

// NewInventoryItemRepository creates a new inventory item repository
func NewInventoryItemRepository(db *gorm.DB) *InventoryItemRepository {
	return &InventoryItemRepository{db: db}
}

// Create creates a new inventory item
func (r *InventoryItemRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves an inventory item by ID
func (r *InventoryItemRepository) GetByID(id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByNameAndPresentation retrieves an item by its natural key
func (r *InventoryItemRepository) GetByNameAndPresentation(name, presentation string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.First(&item, "name = ? AND presentation = ?", name, presentation).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Search retrieves items matching a name or presentation fragment,
// optionally filtered by item type
func (r *InventoryItemRepository) Search(q string, itemType models.InventoryItemType, limit, offset int) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	var total int64

	query := r.db.Model(&models.InventoryItem{})
	if q != "" {
		pattern := "%" + q + "%"
		query = query.Where("name ILIKE ? OR presentation ILIKE ?", pattern, pattern)
	}
	if itemType != "" {
		query = query.Where("item_type = ?", itemType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// GetLowStock retrieves items at or below the given quantity threshold
func (r *InventoryItemRepository) GetLowStock(threshold int, limit, offset int) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	var total int64

	query := r.db.Model(&models.InventoryItem{}).Where("quantity <= ?", threshold)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("quantity ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// Update updates an inventory item
func (r *InventoryItemRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

// Delete deletes an inventory item
func (r *InventoryItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.InventoryItem{}, "id = ?", id).Error
}
