package handlers

import (
	"net/http"
	"strconv"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"
	"hospital-staff-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for assignment operations
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// CreateAssignment handles POST /assignments
// @Summary Create an assignment
// @Description Assign a nurse to a shift on a date. A nurse may hold only one active assignment per date; violations return 409 with the blocking assignment's details.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Assignment created"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Nurse not found"
// @Failure 409 {object} ErrorResponse "Nurse already assigned on that date"
// @Failure 422 {object} ErrorResponse "Shift reference is stale"
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.assignmentService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAssignment handles GET /assignments/:id
// @Summary Get an assignment
// @Description Get an assignment by its ID
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} service.AssignmentResponse "Assignment found"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid assignment ID"})
		return
	}

	resp, err := h.assignmentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAssignments handles GET /assignments
// @Summary List assignments
// @Description Get assignments with pagination, optionally filtered by status or date
// @Tags assignments
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (active, finished)"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AssignmentListResponse "Assignments retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	status := models.AssignmentStatus(c.Query("status"))
	date := c.Query("date")

	resp, err := h.assignmentService.GetAll(status, date, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetNurseAssignments handles GET /nurses/:id/assignments
// @Summary List a nurse's assignments
// @Description Get all assignments of one nurse, newest first
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Nurse ID"
// @Success 200 {array} service.AssignmentResponse "Assignments retrieved"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Nurse not found"
// @Router /nurses/{id}/assignments [get]
func (h *AssignmentHandler) GetNurseAssignments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid nurse ID"})
		return
	}

	resp, err := h.assignmentService.GetByNurseID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllowedAreas handles GET /shifts/:id/areas
// @Summary List allowed areas for a shift
// @Description Get the areas an assignment may target for the given shift: the shift's own area when restricted, otherwise the full ward catalog
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.AllowedAreasResponse "Areas retrieved"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id}/areas [get]
func (h *AssignmentHandler) GetAllowedAreas(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	resp, err := h.assignmentService.GetAllowedAreas(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateAssignment handles PUT /assignments/:id
// @Summary Update an assignment
// @Description Apply a partial update to an assignment. Shift details are re-snapshotted from the active catalog; a reference to a shift that has left the catalog returns 422.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param assignment body service.UpdateAssignmentRequest true "Assignment data"
// @Success 200 {object} service.AssignmentResponse "Assignment updated"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Nurse already assigned on that date"
// @Failure 422 {object} ErrorResponse "Shift reference is stale"
// @Router /assignments/{id} [put]
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid assignment ID"})
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.assignmentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReleaseAssignment handles POST /assignments/:id/release
// @Summary Release an assignment
// @Description Transition an active assignment to finished, stamping today as its end date. Releasing an already finished assignment returns 200 with a notice.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} service.AssignmentResponse "Assignment released"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Router /assignments/{id}/release [post]
func (h *AssignmentHandler) ReleaseAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid assignment ID"})
		return
	}

	resp, err := h.assignmentService.Release(id)
	if err != nil {
		if apperrors.IsState(err) {
			c.JSON(http.StatusOK, gin.H{"assignment": resp, "notice": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAssignment handles DELETE /assignments/:id
// @Summary Delete an assignment
// @Description Delete a finished assignment. Active assignments must be released first.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 204 "Assignment deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment is still active"
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid assignment ID"})
		return
	}

	if err := h.assignmentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
