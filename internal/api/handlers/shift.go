package handlers

import (
	"net/http"
	"strconv"

	"hospital-staff-backend/internal/database/models"
	"hospital-staff-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for shift catalog operations
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// CreateShift handles POST /shifts
// @Summary Create a shift
// @Description Create a new shift definition. The kind is derived from the times unless explicitly set to special. An overlap with an existing shift returns 409 with confirm_required; resubmit with confirm=true to commit anyway.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Shift created"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Overlapping shift"
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.shiftService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetShift handles GET /shifts/:id
// @Summary Get a shift
// @Description Get a shift definition by its ID
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftResponse "Shift found"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	resp, err := h.shiftService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListShifts handles GET /shifts
// @Summary List shifts
// @Description Get shifts with pagination, optionally filtered by status or area
// @Tags shifts
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (active, inactive, special)"
// @Param area query string false "Filter by area"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ShiftListResponse "Shifts retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	status := models.ShiftStatus(c.Query("status"))
	area := c.Query("area")

	resp, err := h.shiftService.GetAll(status, area, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateShift handles PUT /shifts/:id
// @Summary Update a shift
// @Description Apply a partial update to a shift. Changing the times re-derives the kind and re-runs overlap detection.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param shift body service.UpdateShiftRequest true "Shift data"
// @Success 200 {object} service.ShiftResponse "Shift updated"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Failure 409 {object} ErrorResponse "Overlapping shift"
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.shiftService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DuplicateShift handles POST /shifts/:id/duplicate
// @Summary Duplicate a shift
// @Description Copy a shift into a new definition with a copy marker on the name
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 201 {object} service.ShiftResponse "Shift duplicated"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id}/duplicate [post]
func (h *ShiftHandler) DuplicateShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	resp, err := h.shiftService.Duplicate(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ToggleShiftStatus handles POST /shifts/:id/toggle
// @Summary Toggle shift status
// @Description Flip a shift between active and inactive
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftResponse "Shift updated"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id}/toggle [post]
func (h *ShiftHandler) ToggleShiftStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	resp, err := h.shiftService.ToggleStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteShift handles DELETE /shifts/:id
// @Summary Delete a shift
// @Description Delete a shift definition. Shifts still referenced by active assignments cannot be deleted.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 204 "Shift deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Failure 409 {object} ErrorResponse "Shift has active assignments"
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	if err := h.shiftService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
