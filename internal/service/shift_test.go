package service_test

import (
	"testing"

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

// ShiftServiceTestSuite defines the test suite for ShiftService
type ShiftServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockShiftRepo      *mocks.MockShiftRepositoryInterface
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	svc                *service.ShiftService
}

// SetupTest sets up the test suite
func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.svc = service.NewShiftService(suite.mockShiftRepo, suite.mockAssignmentRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ShiftServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func storedShift(name, start, end, area string, status models.ShiftStatus) models.Shift {
	return models.Shift{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		StartTime: start,
		EndTime:   end,
		Area:      area,
		Status:    status,
	}
}

func (suite *ShiftServiceTestSuite) TestCreateShift_DerivesMorningKind() {
	suite.mockShiftRepo.EXPECT().GetAll(gomock.Any(), 0).Return([]models.Shift{}, int64(0), nil)
	suite.mockShiftRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(gomock.Any()).Return(int64(0), nil)

	resp, err := suite.svc.Create(&service.CreateShiftRequest{
		Name:      "Day Shift",
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	suite.NoError(err)
	suite.Equal(models.ShiftKindMorning, resp.Kind)
	suite.Equal(models.ShiftStatusActive, resp.Status)
	suite.False(resp.HasAssignments)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_WrappedRangeIsNight() {
	suite.mockShiftRepo.EXPECT().GetAll(gomock.Any(), 0).Return([]models.Shift{}, int64(0), nil)
	suite.mockShiftRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(gomock.Any()).Return(int64(0), nil)

	resp, err := suite.svc.Create(&service.CreateShiftRequest{
		Name:      "Night Shift",
		StartTime: "22:00",
		EndTime:   "06:00",
	})

	suite.NoError(err)
	suite.Equal(models.ShiftKindNight, resp.Kind)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_ZeroDurationRejected() {
	suite.mockShiftRepo.EXPECT().GetAll(gomock.Any(), 0).Return([]models.Shift{}, int64(0), nil)

	_, err := suite.svc.Create(&service.CreateShiftRequest{
		Name:      "Broken",
		StartTime: "08:00",
		EndTime:   "08:00",
	})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrZeroDuration)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_InvalidTimeFormat() {
	_, err := suite.svc.Create(&service.CreateShiftRequest{
		Name:      "Broken",
		StartTime: "8am",
		EndTime:   "16:00",
	})

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ShiftServiceTestSuite) TestCreateShift_OverlapRejectedWithoutConfirm() {
	existing := storedShift("Day Shift", "08:00", "16:00", "", models.ShiftStatusActive)
	suite.mockShiftRepo.EXPECT().GetAll(gomock.Any(), 0).Return([]models.Shift{existing}, int64(1), nil)

	_, err := suite.svc.Create(&service.CreateShiftRequest{
		Name:      "Midday",
		StartTime: "10:00",
		EndTime:   "18:00",
	})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrShiftOverlap)
	suite.True(apperrors.IsAdvisoryConflict(err))
}

func (suite *ShiftServiceTestSuite) TestCreateShift_OverlapConfirmed() {
	existing := storedShift("Day Shift", "08:00", "16:00", "", models.ShiftStatusActive)
	suite.mockShiftRepo.EXPECT().GetAll(gomock.Any(), 0).Return([]models.Shift{existing}, int64(1), nil)
	suite.mockShiftRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(gomock.Any()).Return(int64(0), nil)

	resp, err := suite.svc.Create(&service.CreateShiftRequest{
		Name:      "Midday",
		StartTime: "10:00",
		EndTime:   "18:00",
		Confirm:   true,
	})

	suite.NoError(err)
	suite.Equal("Midday", resp.Name)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_DisjointAreasDoNotOverlap() {
	existing := storedShift("ICU Day", "08:00", "16:00", "ICU", models.ShiftStatusActive)
	suite.mockShiftRepo.EXPECT().GetAll(gomock.Any(), 0).Return([]models.Shift{existing}, int64(1), nil)
	suite.mockShiftRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(gomock.Any()).Return(int64(0), nil)

	resp, err := suite.svc.Create(&service.CreateShiftRequest{
		Name:      "Surgery Day",
		StartTime: "10:00",
		EndTime:   "18:00",
		Area:      "Surgery",
	})

	suite.NoError(err)
	suite.Equal("Surgery", resp.Area)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_UnknownAreaRejected() {
	_, err := suite.svc.Create(&service.CreateShiftRequest{
		Name:      "Day",
		StartTime: "08:00",
		EndTime:   "16:00",
		Area:      "Cafeteria",
	})

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ShiftServiceTestSuite) TestUpdateShift_TimeChangeRederivesKind() {
	shift := storedShift("Day Shift", "08:00", "16:00", "", models.ShiftStatusActive)
	shift.Kind = models.ShiftKindMorning

	suite.mockShiftRepo.EXPECT().GetByID(shift.ID).Return(&shift, nil)
	suite.mockShiftRepo.EXPECT().GetAll(gomock.Any(), 0).Return([]models.Shift{shift}, int64(1), nil)
	suite.mockShiftRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(shift.ID).Return(int64(0), nil)

	start, end := "14:00", "22:00"
	resp, err := suite.svc.Update(shift.ID, &service.UpdateShiftRequest{
		StartTime: &start,
		EndTime:   &end,
	})

	suite.NoError(err)
	suite.Equal(models.ShiftKindAfternoon, resp.Kind)
}

func (suite *ShiftServiceTestSuite) TestUpdateShift_ExplicitSpecialKept() {
	shift := storedShift("Holiday Cover", "08:00", "16:00", "", models.ShiftStatusActive)
	shift.Kind = models.ShiftKindMorning

	suite.mockShiftRepo.EXPECT().GetByID(shift.ID).Return(&shift, nil)
	suite.mockShiftRepo.EXPECT().GetAll(gomock.Any(), 0).Return([]models.Shift{shift}, int64(1), nil)
	suite.mockShiftRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(shift.ID).Return(int64(0), nil)

	special := models.ShiftKindSpecial
	start, end := "09:00", "13:00"
	resp, err := suite.svc.Update(shift.ID, &service.UpdateShiftRequest{
		Kind:      &special,
		StartTime: &start,
		EndTime:   &end,
	})

	suite.NoError(err)
	suite.Equal(models.ShiftKindSpecial, resp.Kind)
}

func (suite *ShiftServiceTestSuite) TestUpdateShift_NotFound() {
	id := uuid.New()
	suite.mockShiftRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Update(id, &service.UpdateShiftRequest{})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrShiftNotFound)
}

func (suite *ShiftServiceTestSuite) TestDuplicateShift_AppendsCopyMarker() {
	shift := storedShift("Day Shift", "08:00", "16:00", "ICU", models.ShiftStatusActive)
	shift.Kind = models.ShiftKindMorning

	suite.mockShiftRepo.EXPECT().GetByID(shift.ID).Return(&shift, nil)
	suite.mockShiftRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(dup *models.Shift) error {
		suite.Equal("Day Shift (Copy)", dup.Name)
		suite.NotEqual(shift.ID, dup.ID)
		suite.Equal(shift.StartTime, dup.StartTime)
		suite.Equal(shift.Area, dup.Area)
		return nil
	})
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(gomock.Any()).Return(int64(0), nil)

	resp, err := suite.svc.Duplicate(shift.ID)

	suite.NoError(err)
	suite.Equal("Day Shift (Copy)", resp.Name)
	suite.False(resp.HasAssignments)
}

func (suite *ShiftServiceTestSuite) TestToggleStatus_FlipsActiveToInactive() {
	shift := storedShift("Day Shift", "08:00", "16:00", "", models.ShiftStatusActive)

	suite.mockShiftRepo.EXPECT().GetByID(shift.ID).Return(&shift, nil)
	suite.mockShiftRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(shift.ID).Return(int64(0), nil)

	resp, err := suite.svc.ToggleStatus(shift.ID)

	suite.NoError(err)
	suite.Equal(models.ShiftStatusInactive, resp.Status)
}

func (suite *ShiftServiceTestSuite) TestDeleteShift_BlockedByActiveAssignments() {
	shift := storedShift("Night Shift", "22:00", "06:00", "", models.ShiftStatusActive)

	suite.mockShiftRepo.EXPECT().GetByID(shift.ID).Return(&shift, nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(shift.ID).Return(int64(2), nil)

	err := suite.svc.Delete(shift.ID)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrShiftHasAssignments)
	suite.True(apperrors.IsConflict(err))
	suite.False(apperrors.IsAdvisoryConflict(err))
}

func (suite *ShiftServiceTestSuite) TestDeleteShift_InactiveWithAssignmentsStillBlocked() {
	shift := storedShift("Night Shift", "22:00", "06:00", "", models.ShiftStatusInactive)

	suite.mockShiftRepo.EXPECT().GetByID(shift.ID).Return(&shift, nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(shift.ID).Return(int64(1), nil)

	err := suite.svc.Delete(shift.ID)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrShiftHasAssignments)
}

func (suite *ShiftServiceTestSuite) TestDeleteShift_Success() {
	shift := storedShift("Night Shift", "22:00", "06:00", "", models.ShiftStatusActive)

	suite.mockShiftRepo.EXPECT().GetByID(shift.ID).Return(&shift, nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveByShiftID(shift.ID).Return(int64(0), nil)
	suite.mockShiftRepo.EXPECT().Delete(shift.ID).Return(nil)

	suite.NoError(suite.svc.Delete(shift.ID))
}

func (suite *ShiftServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockShiftRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetByID(id)

	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestShiftServiceTestSuite runs the test suite
func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
