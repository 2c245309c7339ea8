package service_test

import (
	"testing"
	"time"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"
	"hospital-staff-backend/internal/mocks"
	"hospital-staff-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssignmentServiceTestSuite defines the test suite for AssignmentService
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockShiftRepo      *mocks.MockShiftRepositoryInterface
	mockNurseRepo      *mocks.MockNurseRepositoryInterface
	svc                *service.AssignmentService

	nurse models.Nurse
	shift models.Shift
}

// SetupTest sets up the test suite
func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockNurseRepo = mocks.NewMockNurseRepositoryInterface(suite.ctrl)
	suite.svc = service.NewAssignmentService(suite.mockAssignmentRepo, suite.mockShiftRepo, suite.mockNurseRepo, validator.New())

	suite.nurse = models.Nurse{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Maria Lopez",
		CURP:      "LOMA900101MDFPRR08",
		Area:      "ICU",
		Status:    models.NurseStatusActive,
	}
	suite.shift = models.Shift{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Night Shift",
		Kind:      models.ShiftKindNight,
		StartTime: "22:00",
		EndTime:   "06:00",
		Status:    models.ShiftStatusActive,
	}
}

// TearDownTest cleans up after each test
func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) TestCreateAssignment_SnapshotsShiftDetails() {
	suite.mockNurseRepo.EXPECT().GetByID(suite.nurse.ID).Return(&suite.nurse, nil)
	suite.mockShiftRepo.EXPECT().GetActive().Return([]models.Shift{suite.shift}, nil)
	suite.mockAssignmentRepo.EXPECT().GetByNurseID(suite.nurse.ID).Return([]models.Assignment{}, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Assignment) error {
		suite.Equal("Night Shift", a.ShiftName)
		suite.Equal("22:00", a.StartTime)
		suite.Equal("06:00", a.EndTime)
		suite.Equal("Maria Lopez", a.NurseName)
		suite.Equal(models.AssignmentStatusActive, a.Status)
		return nil
	})

	resp, err := suite.svc.Create(&service.CreateAssignmentRequest{
		NurseID: suite.nurse.ID,
		ShiftID: suite.shift.ID,
		Area:    "ICU",
		Date:    "2025-03-10",
	})

	suite.NoError(err)
	suite.Equal("2025-03-10", resp.Date)
	suite.Equal(models.AssignmentStatusActive, resp.Status)
}

func (suite *AssignmentServiceTestSuite) TestCreateAssignment_DuplicateDateBlocked() {
	existing := models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		NurseID:   suite.nurse.ID,
		NurseName: suite.nurse.FullName,
		ShiftID:   suite.shift.ID,
		ShiftName: "Night Shift",
		Area:      "ICU",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:    models.AssignmentStatusActive,
	}

	suite.mockNurseRepo.EXPECT().GetByID(suite.nurse.ID).Return(&suite.nurse, nil)
	suite.mockShiftRepo.EXPECT().GetActive().Return([]models.Shift{suite.shift}, nil)
	suite.mockAssignmentRepo.EXPECT().GetByNurseID(suite.nurse.ID).Return([]models.Assignment{existing}, nil)

	_, err := suite.svc.Create(&service.CreateAssignmentRequest{
		NurseID: suite.nurse.ID,
		ShiftID: suite.shift.ID,
		Area:    "ICU",
		Date:    "2025-03-10",
	})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateAssignment)
	suite.True(apperrors.IsConflict(err))
	suite.False(apperrors.IsAdvisoryConflict(err))
}

func (suite *AssignmentServiceTestSuite) TestCreateAssignment_FinishedSameDateAllowed() {
	finished := models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		NurseID:   suite.nurse.ID,
		ShiftID:   suite.shift.ID,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:    models.AssignmentStatusFinished,
	}

	suite.mockNurseRepo.EXPECT().GetByID(suite.nurse.ID).Return(&suite.nurse, nil)
	suite.mockShiftRepo.EXPECT().GetActive().Return([]models.Shift{suite.shift}, nil)
	suite.mockAssignmentRepo.EXPECT().GetByNurseID(suite.nurse.ID).Return([]models.Assignment{finished}, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.svc.Create(&service.CreateAssignmentRequest{
		NurseID: suite.nurse.ID,
		ShiftID: suite.shift.ID,
		Area:    "ICU",
		Date:    "2025-03-10",
	})

	suite.NoError(err)
}

func (suite *AssignmentServiceTestSuite) TestCreateAssignment_StaleShiftRejected() {
	suite.mockNurseRepo.EXPECT().GetByID(suite.nurse.ID).Return(&suite.nurse, nil)
	suite.mockShiftRepo.EXPECT().GetActive().Return([]models.Shift{}, nil)

	_, err := suite.svc.Create(&service.CreateAssignmentRequest{
		NurseID: suite.nurse.ID,
		ShiftID: suite.shift.ID,
		Area:    "ICU",
		Date:    "2025-03-10",
	})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrStaleShiftReference)
}

func (suite *AssignmentServiceTestSuite) TestCreateAssignment_InactiveNurseRejected() {
	suite.nurse.Status = models.NurseStatusInactive
	suite.mockNurseRepo.EXPECT().GetByID(suite.nurse.ID).Return(&suite.nurse, nil)

	_, err := suite.svc.Create(&service.CreateAssignmentRequest{
		NurseID: suite.nurse.ID,
		ShiftID: suite.shift.ID,
		Area:    "ICU",
		Date:    "2025-03-10",
	})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrNurseNotActive)
}

func (suite *AssignmentServiceTestSuite) TestCreateAssignment_AreaRestrictedByShift() {
	suite.shift.Area = "Emergency"

	suite.mockNurseRepo.EXPECT().GetByID(suite.nurse.ID).Return(&suite.nurse, nil)
	suite.mockShiftRepo.EXPECT().GetActive().Return([]models.Shift{suite.shift}, nil)

	_, err := suite.svc.Create(&service.CreateAssignmentRequest{
		NurseID: suite.nurse.ID,
		ShiftID: suite.shift.ID,
		Area:    "ICU",
		Date:    "2025-03-10",
	})

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestCreateAssignment_BadDateFormat() {
	_, err := suite.svc.Create(&service.CreateAssignmentRequest{
		NurseID: suite.nurse.ID,
		ShiftID: suite.shift.ID,
		Area:    "ICU",
		Date:    "10/03/2025",
	})

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestUpdateAssignment_KeepingRemovedShiftIsStale() {
	assignment := models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		NurseID:   suite.nurse.ID,
		ShiftID:   suite.shift.ID,
		Area:      "ICU",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:    models.AssignmentStatusActive,
	}

	suite.mockAssignmentRepo.EXPECT().GetByID(assignment.ID).Return(&assignment, nil)
	// The referenced shift has since been deactivated.
	suite.mockShiftRepo.EXPECT().GetActive().Return([]models.Shift{}, nil)

	area := "Emergency"
	_, err := suite.svc.Update(assignment.ID, &service.UpdateAssignmentRequest{Area: &area})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrStaleShiftReference)
}

func (suite *AssignmentServiceTestSuite) TestUpdateAssignment_SwitchShiftResnapshots() {
	assignment := models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		NurseID:   suite.nurse.ID,
		ShiftID:   uuid.New(),
		ShiftName: "Old Shift",
		Area:      "ICU",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:    models.AssignmentStatusActive,
	}

	suite.mockAssignmentRepo.EXPECT().GetByID(assignment.ID).Return(&assignment, nil)
	suite.mockShiftRepo.EXPECT().GetActive().Return([]models.Shift{suite.shift}, nil)
	suite.mockAssignmentRepo.EXPECT().GetByNurseID(suite.nurse.ID).Return([]models.Assignment{assignment}, nil)
	suite.mockAssignmentRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.svc.Update(assignment.ID, &service.UpdateAssignmentRequest{ShiftID: &suite.shift.ID})

	suite.NoError(err)
	suite.Equal("Night Shift", resp.ShiftName)
	suite.Equal("22:00", resp.StartTime)
	suite.Equal("06:00", resp.EndTime)
}

func (suite *AssignmentServiceTestSuite) TestRelease_StampsEndDate() {
	assignment := models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		NurseID:   suite.nurse.ID,
		ShiftID:   suite.shift.ID,
		Area:      "ICU",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:    models.AssignmentStatusActive,
	}

	suite.mockAssignmentRepo.EXPECT().GetByID(assignment.ID).Return(&assignment, nil)
	suite.mockAssignmentRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.svc.Release(assignment.ID)

	suite.NoError(err)
	suite.Equal(models.AssignmentStatusFinished, resp.Status)
	suite.Equal(time.Now().Format(models.DateLayout), resp.EndDate)
}

func (suite *AssignmentServiceTestSuite) TestRelease_AlreadyFinishedIsInformational() {
	endDate := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	assignment := models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		NurseID:   suite.nurse.ID,
		ShiftID:   suite.shift.ID,
		Area:      "ICU",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:    models.AssignmentStatusFinished,
		EndDate:   &endDate,
	}

	suite.mockAssignmentRepo.EXPECT().GetByID(assignment.ID).Return(&assignment, nil)

	resp, err := suite.svc.Release(assignment.ID)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrAssignmentAlreadyFinished)
	suite.True(apperrors.IsState(err))
	suite.NotNil(resp)
	suite.Equal("2025-03-11", resp.EndDate)
}

func (suite *AssignmentServiceTestSuite) TestDelete_ActiveBlocked() {
	assignment := models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		NurseID:   suite.nurse.ID,
		Status:    models.AssignmentStatusActive,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAssignmentRepo.EXPECT().GetByID(assignment.ID).Return(&assignment, nil)

	err := suite.svc.Delete(assignment.ID)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrAssignmentStillActive)
	suite.True(apperrors.IsConflict(err))
}

func (suite *AssignmentServiceTestSuite) TestDelete_FinishedSucceeds() {
	assignment := models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		NurseID:   suite.nurse.ID,
		Status:    models.AssignmentStatusFinished,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAssignmentRepo.EXPECT().GetByID(assignment.ID).Return(&assignment, nil)
	suite.mockAssignmentRepo.EXPECT().Delete(assignment.ID).Return(nil)

	suite.NoError(suite.svc.Delete(assignment.ID))
}

func (suite *AssignmentServiceTestSuite) TestGetAllowedAreas_RestrictedShift() {
	suite.shift.Area = "Emergency"
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(&suite.shift, nil)

	resp, err := suite.svc.GetAllowedAreas(suite.shift.ID)

	suite.NoError(err)
	suite.Equal([]string{"Emergency"}, resp.Areas)
}

func (suite *AssignmentServiceTestSuite) TestGetAllowedAreas_OpenShift() {
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(&suite.shift, nil)

	resp, err := suite.svc.GetAllowedAreas(suite.shift.ID)

	suite.NoError(err)
	suite.Equal(models.Areas, resp.Areas)
}

func (suite *AssignmentServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetByID(id)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrAssignmentNotFound)
}

// TestAssignmentServiceTestSuite runs the test suite
func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
