package service

import (
	"errors"
	"fmt"
	"sync"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"
	"hospital-staff-backend/internal/logger"
	"hospital-staff-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLowStockThreshold flags items running out when no explicit
// threshold is requested.
const DefaultLowStockThreshold = 10

// InventoryService handles business logic for pharmacy stock
type InventoryService struct {
	repo      repository.InventoryItemRepositoryInterface
	validator *validator.Validate
	threshold int

	// Stock adjustments are read-modify-write.
	mu sync.Mutex
}

// Ensure InventoryService implements InventoryServiceInterface
var _ InventoryServiceInterface = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service. lowStockThreshold
// comes from LOW_STOCK_THRESHOLD; values below 1 fall back to the default.
func NewInventoryService(repo repository.InventoryItemRepositoryInterface, validator *validator.Validate, lowStockThreshold int) *InventoryService {
	if lowStockThreshold < 1 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &InventoryService{repo: repo, validator: validator, threshold: lowStockThreshold}
}

// CreateInventoryItemRequest represents the request to create a stock item
type CreateInventoryItemRequest struct {
	Name            string                   `json:"name" validate:"required,min=1,max=100"`
	Presentation    string                   `json:"presentation" validate:"required,max=100"`
	ItemType        models.InventoryItemType `json:"item_type" validate:"required"`
	Quantity        int                      `json:"quantity" validate:"min=0"`
	RecommendedDose string                   `json:"recommended_dose,omitempty" validate:"max=100"`
}

// UpdateInventoryItemRequest represents the request to update a stock item
type UpdateInventoryItemRequest struct {
	Name            *string                   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Presentation    *string                   `json:"presentation,omitempty" validate:"omitempty,max=100"`
	ItemType        *models.InventoryItemType `json:"item_type,omitempty"`
	Quantity        *int                      `json:"quantity,omitempty" validate:"omitempty,min=0"`
	RecommendedDose *string                   `json:"recommended_dose,omitempty" validate:"omitempty,max=100"`
}

// AdjustStockRequest represents a relative stock movement: positive delta
// restocks, negative delta dispenses.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// InventoryItemResponse represents the response for inventory operations
type InventoryItemResponse struct {
	ID              uuid.UUID                `json:"id"`
	Name            string                   `json:"name"`
	Presentation    string                   `json:"presentation"`
	ItemType        models.InventoryItemType `json:"item_type"`
	Quantity        int                      `json:"quantity"`
	RecommendedDose string                   `json:"recommended_dose,omitempty"`
	LowStock        bool                     `json:"low_stock"`
	CreatedAt       string                   `json:"created_at"`
	UpdatedAt       string                   `json:"updated_at"`
}

// InventoryListResponse represents a paginated list of stock items
type InventoryListResponse struct {
	Items    []InventoryItemResponse `json:"items"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Create validates and stores a new stock item. Name plus presentation is
// the natural key and must be unique.
func (s *InventoryService) Create(req *CreateInventoryItemRequest) (*InventoryItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ItemType.IsValid() {
		return nil, apperrors.NewValidationError("item_type", fmt.Sprintf("unknown item type %q", req.ItemType))
	}

	if _, err := s.repo.GetByNameAndPresentation(req.Name, req.Presentation); err == nil {
		return nil, apperrors.ErrInventoryItemExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check inventory item: %w", err)
	}

	item := &models.InventoryItem{
		Name:            req.Name,
		Presentation:    req.Presentation,
		ItemType:        req.ItemType,
		Quantity:        req.Quantity,
		RecommendedDose: req.RecommendedDose,
	}

	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	return s.toInventoryItemResponse(item), nil
}

// GetByID retrieves a stock item by ID
func (s *InventoryService) GetByID(id uuid.UUID) (*InventoryItemResponse, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return s.toInventoryItemResponse(item), nil
}

// GetAll retrieves stock items with pagination, optionally filtered by a
// search query or item type
func (s *InventoryService) GetAll(q string, itemType models.InventoryItemType, page, pageSize int) (*InventoryListResponse, error) {
	if itemType != "" && !itemType.IsValid() {
		return nil, apperrors.NewValidationError("item_type", fmt.Sprintf("unknown item type %q", itemType))
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	items, total, err := s.repo.Search(q, itemType, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory items: %w", err)
	}

	responses := make([]InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = *s.toInventoryItemResponse(&items[i])
	}

	return &InventoryListResponse{
		Items:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetLowStock retrieves items at or below the threshold, scarcest first.
// A threshold below 1 means "use the configured one".
func (s *InventoryService) GetLowStock(threshold, page, pageSize int) (*InventoryListResponse, error) {
	if threshold < 1 {
		threshold = s.threshold
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	items, total, err := s.repo.GetLowStock(threshold, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock items: %w", err)
	}

	responses := make([]InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = *s.toInventoryItemResponse(&items[i])
	}

	return &InventoryListResponse{
		Items:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a stock item
func (s *InventoryService) Update(id uuid.UUID, req *UpdateInventoryItemRequest) (*InventoryItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Presentation != nil {
		item.Presentation = *req.Presentation
	}
	if req.ItemType != nil {
		if !req.ItemType.IsValid() {
			return nil, apperrors.NewValidationError("item_type", fmt.Sprintf("unknown item type %q", *req.ItemType))
		}
		item.ItemType = *req.ItemType
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.RecommendedDose != nil {
		item.RecommendedDose = *req.RecommendedDose
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	return s.toInventoryItemResponse(item), nil
}

// AdjustStock applies a relative quantity change. Dispensing more than the
// available stock is rejected and the quantity is left untouched.
func (s *InventoryService) AdjustStock(id uuid.UUID, req *AdjustStockRequest) (*InventoryItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	next := item.Quantity + req.Delta
	if next < 0 {
		return nil, apperrors.NewConflictError(apperrors.ErrInsufficientStock, map[string]string{
			"item_name": item.Name,
			"available": fmt.Sprintf("%d", item.Quantity),
			"requested": fmt.Sprintf("%d", -req.Delta),
		})
	}
	item.Quantity = next

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	if item.Quantity <= s.threshold {
		logger.New().WithFields(map[string]interface{}{
			"item_name": item.Name,
			"quantity":  item.Quantity,
		}).Warn("inventory item at or below low stock threshold")
	}

	return s.toInventoryItemResponse(item), nil
}

// Delete removes a stock item
func (s *InventoryService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInventoryItemNotFound
		}
		return fmt.Errorf("failed to get inventory item: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

// toInventoryItemResponse converts an InventoryItem model to API response,
// flagging it low-stock against the service's configured threshold
func (s *InventoryService) toInventoryItemResponse(item *models.InventoryItem) *InventoryItemResponse {
	return &InventoryItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Presentation:    item.Presentation,
		ItemType:        item.ItemType,
		Quantity:        item.Quantity,
		RecommendedDose: item.RecommendedDose,
		LowStock:        item.Quantity <= s.threshold,
		CreatedAt:       item.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       item.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
