package handlers

import (
	"net/http"
	"strconv"

	"hospital-staff-backend/internal/database/models"
	"hospital-staff-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClinicalRecordHandler handles HTTP requests for clinical history entries
type ClinicalRecordHandler struct {
	recordService service.ClinicalRecordServiceInterface
}

// NewClinicalRecordHandler creates a new clinical record handler
func NewClinicalRecordHandler(recordService service.ClinicalRecordServiceInterface) *ClinicalRecordHandler {
	return &ClinicalRecordHandler{
		recordService: recordService,
	}
}

// CreateClinicalRecord handles POST /clinical-records
// @Summary Create a clinical entry
// @Description Write a new entry into a patient's clinical history. Patient display fields are snapshotted at write time.
// @Tags clinical-records
// @Accept json
// @Produce json
// @Param record body service.CreateClinicalRecordRequest true "Clinical entry data"
// @Success 201 {object} service.ClinicalRecordResponse "Entry created"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Router /clinical-records [post]
func (h *ClinicalRecordHandler) CreateClinicalRecord(c *gin.Context) {
	var req service.CreateClinicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.recordService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetClinicalRecord handles GET /clinical-records/:id
// @Summary Get a clinical entry
// @Description Get a clinical entry by ID
// @Tags clinical-records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} service.ClinicalRecordResponse "Entry found"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Router /clinical-records/{id} [get]
func (h *ClinicalRecordHandler) GetClinicalRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid record ID"})
		return
	}

	resp, err := h.recordService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListClinicalRecords handles GET /clinical-records
// @Summary List clinical entries
// @Description Get clinical entries with pagination, newest first, optionally filtered by entry type
// @Tags clinical-records
// @Accept json
// @Produce json
// @Param entry_type query string false "Filter by entry type (note, evolution, consult, discharge)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ClinicalRecordListResponse "Entries retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /clinical-records [get]
func (h *ClinicalRecordHandler) ListClinicalRecords(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	entryType := models.ClinicalEntryType(c.Query("entry_type"))

	resp, err := h.recordService.GetAll(entryType, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPatientHistory handles GET /patients/:id/clinical-records
// @Summary Get a patient's clinical history
// @Description Get one patient's clinical entries with pagination, newest first
// @Tags clinical-records
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ClinicalRecordListResponse "Entries retrieved"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Router /patients/{id}/clinical-records [get]
func (h *ClinicalRecordHandler) GetPatientHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid patient ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.recordService.GetByPatientID(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateClinicalRecord handles PUT /clinical-records/:id
// @Summary Update a clinical entry
// @Description Apply a partial update to a clinical entry. The patient snapshot and entry type are immutable.
// @Tags clinical-records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body service.UpdateClinicalRecordRequest true "Clinical entry data"
// @Success 200 {object} service.ClinicalRecordResponse "Entry updated"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Router /clinical-records/{id} [put]
func (h *ClinicalRecordHandler) UpdateClinicalRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid record ID"})
		return
	}

	var req service.UpdateClinicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.recordService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteClinicalRecord handles DELETE /clinical-records/:id
// @Summary Delete a clinical entry
// @Description Remove a clinical entry
// @Tags clinical-records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Success 204 "Entry deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Router /clinical-records/{id} [delete]
func (h *ClinicalRecordHandler) DeleteClinicalRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid record ID"})
		return
	}

	if err := h.recordService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
