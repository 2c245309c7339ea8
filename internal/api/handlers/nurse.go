package handlers

import (
	"net/http"
	"strconv"

	"hospital-staff-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NurseHandler handles HTTP requests for the nursing staff directory
type NurseHandler struct {
	nurseService service.NurseServiceInterface
}

// NewNurseHandler creates a new nurse handler
func NewNurseHandler(nurseService service.NurseServiceInterface) *NurseHandler {
	return &NurseHandler{
		nurseService: nurseService,
	}
}

// CreateNurse handles POST /nurses
// @Summary Create a nurse
// @Description Add a nurse to the staff directory. CURP must be unique.
// @Tags nurses
// @Accept json
// @Produce json
// @Param nurse body service.CreateNurseRequest true "Nurse data"
// @Success 201 {object} service.NurseResponse "Nurse created"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "CURP already registered"
// @Router /nurses [post]
func (h *NurseHandler) CreateNurse(c *gin.Context) {
	var req service.CreateNurseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.nurseService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetNurse handles GET /nurses/:id
// @Summary Get a nurse
// @Description Get a nurse by ID
// @Tags nurses
// @Accept json
// @Produce json
// @Param id path string true "Nurse ID"
// @Success 200 {object} service.NurseResponse "Nurse found"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Nurse not found"
// @Router /nurses/{id} [get]
func (h *NurseHandler) GetNurse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid nurse ID"})
		return
	}

	resp, err := h.nurseService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListNurses handles GET /nurses
// @Summary List nurses
// @Description Get nurses with pagination, optionally filtered by a search query or area
// @Tags nurses
// @Accept json
// @Produce json
// @Param q query string false "Search by name or CURP"
// @Param area query string false "Filter by area"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.NurseListResponse "Nurses retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /nurses [get]
func (h *NurseHandler) ListNurses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	q := c.Query("q")
	area := c.Query("area")

	resp, err := h.nurseService.GetAll(q, area, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListActiveNurses handles GET /nurses/active
// @Summary List active nurses
// @Description Get every active nurse, the selectable pool for new assignments
// @Tags nurses
// @Accept json
// @Produce json
// @Success 200 {array} service.NurseResponse "Active nurses retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /nurses/active [get]
func (h *NurseHandler) ListActiveNurses(c *gin.Context) {
	resp, err := h.nurseService.GetActive()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateNurse handles PUT /nurses/:id
// @Summary Update a nurse
// @Description Apply a partial update to a nurse. CURP is immutable.
// @Tags nurses
// @Accept json
// @Produce json
// @Param id path string true "Nurse ID"
// @Param nurse body service.UpdateNurseRequest true "Nurse data"
// @Success 200 {object} service.NurseResponse "Nurse updated"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Nurse not found"
// @Router /nurses/{id} [put]
func (h *NurseHandler) UpdateNurse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid nurse ID"})
		return
	}

	var req service.UpdateNurseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.nurseService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteNurse handles DELETE /nurses/:id
// @Summary Delete a nurse
// @Description Remove a nurse from the directory
// @Tags nurses
// @Accept json
// @Produce json
// @Param id path string true "Nurse ID"
// @Success 204 "Nurse deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Nurse not found"
// @Router /nurses/{id} [delete]
func (h *NurseHandler) DeleteNurse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid nurse ID"})
		return
	}

	if err := h.nurseService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
