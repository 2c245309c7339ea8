package handlers

import (
	"net/http"
	"strconv"

	"hospital-staff-backend/internal/database/models"
	"hospital-staff-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler handles HTTP requests for pharmacy stock
type InventoryHandler struct {
	inventoryService service.InventoryServiceInterface
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService service.InventoryServiceInterface) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// CreateInventoryItem handles POST /inventory
// @Summary Create a stock item
// @Description Add a medication or supply to the pharmacy inventory. Name plus presentation must be unique.
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body service.CreateInventoryItemRequest true "Item data"
// @Success 201 {object} service.InventoryItemResponse "Item created"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Item already exists"
// @Router /inventory [post]
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var req service.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.inventoryService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetInventoryItem handles GET /inventory/:id
// @Summary Get a stock item
// @Description Get a stock item by ID
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} service.InventoryItemResponse "Item found"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item ID"})
		return
	}

	resp, err := h.inventoryService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListInventory handles GET /inventory
// @Summary List stock items
// @Description Get stock items with pagination, optionally filtered by a search query or item type
// @Tags inventory
// @Accept json
// @Produce json
// @Param q query string false "Search by name or presentation"
// @Param item_type query string false "Filter by item type (medication, supply)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.InventoryListResponse "Items retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /inventory [get]
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	q := c.Query("q")
	itemType := models.InventoryItemType(c.Query("item_type"))

	resp, err := h.inventoryService.GetAll(q, itemType, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListLowStock handles GET /inventory/low-stock
// @Summary List low stock items
// @Description Get items at or below the quantity threshold, scarcest first
// @Tags inventory
// @Accept json
// @Produce json
// @Param threshold query int false "Quantity threshold" default(10)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.InventoryListResponse "Items retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "0"))

	resp, err := h.inventoryService.GetLowStock(threshold, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateInventoryItem handles PUT /inventory/:id
// @Summary Update a stock item
// @Description Apply a partial update to a stock item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body service.UpdateInventoryItemRequest true "Item data"
// @Success 200 {object} service.InventoryItemResponse "Item updated"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item ID"})
		return
	}

	var req service.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.inventoryService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AdjustStock handles POST /inventory/:id/adjust
// @Summary Adjust stock quantity
// @Description Apply a relative quantity change: positive delta restocks, negative delta dispenses. Dispensing more than the available stock returns 409.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param adjustment body service.AdjustStockRequest true "Stock movement"
// @Success 200 {object} service.InventoryItemResponse "Stock adjusted"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Router /inventory/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item ID"})
		return
	}

	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.inventoryService.AdjustStock(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteInventoryItem handles DELETE /inventory/:id
// @Summary Delete a stock item
// @Description Remove a stock item from the inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 204 "Item deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item ID"})
		return
	}

	if err := h.inventoryService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
