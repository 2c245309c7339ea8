package handlers

import (
	"net/http"
	"strconv"

	"hospital-staff-backend/internal/database/models"
	"hospital-staff-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatientHandler handles HTTP requests for patient records
type PatientHandler struct {
	patientService service.PatientServiceInterface
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService service.PatientServiceInterface) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// CreatePatient handles POST /patients
// @Summary Create a patient
// @Description Register an admitted patient
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body service.CreatePatientRequest true "Patient data"
// @Success 201 {object} service.PatientResponse "Patient created"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req service.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.patientService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPatient handles GET /patients/:id
// @Summary Get a patient
// @Description Get a patient by ID
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} service.PatientResponse "Patient found"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid patient ID"})
		return
	}

	resp, err := h.patientService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPatients handles GET /patients
// @Summary List patients
// @Description Get patients with pagination, optionally filtered by a search query, status or area
// @Tags patients
// @Accept json
// @Produce json
// @Param q query string false "Search by name or CURP"
// @Param status query string false "Filter by status (active, observation, discharged, transferred)"
// @Param area query string false "Filter by area"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PatientListResponse "Patients retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /patients [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	q := c.Query("q")
	status := models.PatientStatus(c.Query("status"))
	area := c.Query("area")

	resp, err := h.patientService.GetAll(q, status, area, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePatient handles PUT /patients/:id
// @Summary Update a patient
// @Description Apply a partial update to a patient record
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param patient body service.UpdatePatientRequest true "Patient data"
// @Success 200 {object} service.PatientResponse "Patient updated"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid patient ID"})
		return
	}

	var req service.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.patientService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeletePatient handles DELETE /patients/:id
// @Summary Delete a patient
// @Description Remove a patient record
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 204 "Patient deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid patient ID"})
		return
	}

	if err := h.patientService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
