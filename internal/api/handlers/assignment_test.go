package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-staff-backend/internal/api/handlers"
	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"
	"hospital-staff-backend/internal/mocks"
	"hospital-staff-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockAssignmentSvc *mocks.MockAssignmentServiceInterface
	handler           *handlers.AssignmentHandler
	router            *gin.Engine
}

func (suite *AssignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentSvc = mocks.NewMockAssignmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAssignmentHandler(suite.mockAssignmentSvc)

	suite.router = gin.New()
	suite.router.POST("/assignments", suite.handler.CreateAssignment)
	suite.router.GET("/assignments", suite.handler.ListAssignments)
	suite.router.GET("/assignments/:id", suite.handler.GetAssignment)
	suite.router.PUT("/assignments/:id", suite.handler.UpdateAssignment)
	suite.router.POST("/assignments/:id/release", suite.handler.ReleaseAssignment)
	suite.router.DELETE("/assignments/:id", suite.handler.DeleteAssignment)
	suite.router.GET("/shifts/:id/areas", suite.handler.GetAllowedAreas)
}

func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_Success() {
	resp := &service.AssignmentResponse{
		ID:        uuid.New(),
		NurseName: "Maria Lopez",
		ShiftName: "Night Shift",
		Area:      "ICU",
		Date:      "2025-03-10",
		Status:    models.AssignmentStatusActive,
	}
	suite.mockAssignmentSvc.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body, _ := json.Marshal(map[string]string{
		"nurse_id": uuid.NewString(),
		"shift_id": uuid.NewString(),
		"area":     "ICU",
		"date":     "2025-03-10",
	})
	req := httptest.NewRequest(http.MethodPost, "/assignments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_DuplicateIsConflict() {
	conflictErr := apperrors.NewConflictError(apperrors.ErrDuplicateAssignment, map[string]string{
		"nurse_name": "Maria Lopez",
		"shift_name": "Night Shift",
		"date":       "2025-03-10",
	})
	suite.mockAssignmentSvc.EXPECT().Create(gomock.Any()).Return(nil, conflictErr)

	body, _ := json.Marshal(map[string]string{
		"nurse_id": uuid.NewString(),
		"shift_id": uuid.NewString(),
		"area":     "ICU",
		"date":     "2025-03-10",
	})
	req := httptest.NewRequest(http.MethodPost, "/assignments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)

	var got handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.False(got.ConfirmRequired)
	suite.Equal("Night Shift", got.Details["shift_name"])
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_StaleShiftIsUnprocessable() {
	suite.mockAssignmentSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrStaleShiftReference)

	body, _ := json.Marshal(map[string]string{
		"nurse_id": uuid.NewString(),
		"shift_id": uuid.NewString(),
		"area":     "ICU",
		"date":     "2025-03-10",
	})
	req := httptest.NewRequest(http.MethodPost, "/assignments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestReleaseAssignment_Success() {
	id := uuid.New()
	suite.mockAssignmentSvc.EXPECT().Release(id).Return(&service.AssignmentResponse{
		ID:      id,
		Status:  models.AssignmentStatusFinished,
		EndDate: "2025-03-12",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/assignments/"+id.String()+"/release", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var got service.AssignmentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(models.AssignmentStatusFinished, got.Status)
	suite.Equal("2025-03-12", got.EndDate)
}

func (suite *AssignmentHandlerTestSuite) TestReleaseAssignment_AlreadyFinishedIsOKWithNotice() {
	id := uuid.New()
	resp := &service.AssignmentResponse{
		ID:      id,
		Status:  models.AssignmentStatusFinished,
		EndDate: "2025-03-11",
	}
	suite.mockAssignmentSvc.EXPECT().Release(id).Return(resp, apperrors.ErrAssignmentAlreadyFinished)

	req := httptest.NewRequest(http.MethodPost, "/assignments/"+id.String()+"/release", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var got map[string]json.RawMessage
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Contains(got, "assignment")
	suite.Contains(got, "notice")
}

func (suite *AssignmentHandlerTestSuite) TestDeleteAssignment_ActiveIsConflict() {
	id := uuid.New()
	conflictErr := apperrors.NewConflictError(apperrors.ErrAssignmentStillActive, nil)
	suite.mockAssignmentSvc.EXPECT().Delete(id).Return(conflictErr)

	req := httptest.NewRequest(http.MethodDelete, "/assignments/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestDeleteAssignment_Success() {
	id := uuid.New()
	suite.mockAssignmentSvc.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/assignments/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetAllowedAreas_Success() {
	id := uuid.New()
	suite.mockAssignmentSvc.EXPECT().GetAllowedAreas(id).Return(&service.AllowedAreasResponse{
		ShiftID: id,
		Areas:   []string{"Emergency"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/shifts/"+id.String()+"/areas", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var got service.AllowedAreasResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal([]string{"Emergency"}, got.Areas)
}

func (suite *AssignmentHandlerTestSuite) TestListAssignments_BadDateFilter() {
	suite.mockAssignmentSvc.EXPECT().
		GetAll(models.AssignmentStatus(""), "bad-date", 1, 20).
		Return(nil, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format"))

	req := httptest.NewRequest(http.MethodGet, "/assignments?date=bad-date", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// TestAssignmentHandlerTestSuite runs the test suite
func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
