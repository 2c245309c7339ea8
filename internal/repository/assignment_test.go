//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"hospital-staff-backend/internal/database/models"
	"hospital-staff-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentRepository
	nurseRepo     *NurseRepository
	shiftRepo     *ShiftRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.nurseRepo = NewNurseRepository(suite.baseTestSuite.DB)
	suite.shiftRepo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createNurseAndShift persists the referenced rows an assignment needs
func (suite *AssignmentRepositoryTestSuite) createNurseAndShift() (*models.Nurse, *models.Shift) {
	nurse := suite.factories.Nurse.Create()
	suite.NoError(suite.nurseRepo.Create(nurse))

	shift := suite.factories.Shift.Create()
	suite.NoError(suite.shiftRepo.Create(shift))

	return nurse, shift
}

// TestCreate tests creating a new assignment
func (suite *AssignmentRepositoryTestSuite) TestCreate() {
	nurse, shift := suite.createNurseAndShift()

	assignment := suite.factories.Assignment.ForNurse(nurse)
	assignment.ShiftID = shift.ID
	assignment.ShiftName = shift.Name

	err := suite.repo.Create(assignment)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, assignment.ID)
	suite.Equal(models.AssignmentStatusActive, assignment.Status)
}

// TestGetByID tests retrieving an assignment by ID
func (suite *AssignmentRepositoryTestSuite) TestGetByID() {
	nurse, shift := suite.createNurseAndShift()

	assignment := suite.factories.Assignment.ForNurse(nurse)
	assignment.ShiftID = shift.ID
	suite.NoError(suite.repo.Create(assignment))

	retrieved, err := suite.repo.GetByID(assignment.ID)

	suite.NoError(err)
	suite.Equal(assignment.ID, retrieved.ID)
	suite.Equal(nurse.FullName, retrieved.NurseName)
}

// TestGetByIDNotFound tests retrieving a non-existent assignment
func (suite *AssignmentRepositoryTestSuite) TestGetByIDNotFound() {
	assignment, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(assignment)
}

// TestGetByNurseID tests listing a nurse's assignments
func (suite *AssignmentRepositoryTestSuite) TestGetByNurseID() {
	nurse, shift := suite.createNurseAndShift()

	first := suite.factories.Assignment.ForNurse(nurse)
	first.ShiftID = shift.ID
	first.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Assignment.ForNurse(nurse)
	second.ShiftID = shift.ID
	second.Date = time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Create(second))

	assignments, err := suite.repo.GetByNurseID(nurse.ID)

	suite.NoError(err)
	suite.Len(assignments, 2)
	// Newest date first
	suite.Equal(second.ID, assignments[0].ID)
}

// TestGetByDate tests filtering by calendar day
func (suite *AssignmentRepositoryTestSuite) TestGetByDate() {
	nurse, shift := suite.createNurseAndShift()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	match := suite.factories.Assignment.ForNurse(nurse)
	match.ShiftID = shift.ID
	match.Date = day
	suite.NoError(suite.repo.Create(match))

	other := suite.factories.Assignment.ForNurse(nurse)
	other.ShiftID = shift.ID
	other.Date = day.AddDate(0, 0, 1)
	suite.NoError(suite.repo.Create(other))

	assignments, total, err := suite.repo.GetByDate(day, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(assignments, 1)
	suite.Equal(match.ID, assignments[0].ID)
}

// TestGetByStatus tests filtering by lifecycle status
func (suite *AssignmentRepositoryTestSuite) TestGetByStatus() {
	nurse, shift := suite.createNurseAndShift()

	active := suite.factories.Assignment.ForNurse(nurse)
	active.ShiftID = shift.ID
	suite.NoError(suite.repo.Create(active))

	endDate := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	finished := suite.factories.Assignment.ForNurse(nurse)
	finished.ShiftID = shift.ID
	finished.Date = endDate.AddDate(0, 0, -2)
	finished.Status = models.AssignmentStatusFinished
	finished.EndDate = &endDate
	suite.NoError(suite.repo.Create(finished))

	assignments, total, err := suite.repo.GetByStatus(models.AssignmentStatusFinished, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(assignments, 1)
	suite.Equal(finished.ID, assignments[0].ID)
	suite.NotNil(assignments[0].EndDate)
}

// TestCountActiveByShiftID tests counting active assignments per shift
func (suite *AssignmentRepositoryTestSuite) TestCountActiveByShiftID() {
	nurse, shift := suite.createNurseAndShift()

	active := suite.factories.Assignment.ForNurse(nurse)
	active.ShiftID = shift.ID
	suite.NoError(suite.repo.Create(active))

	finished := suite.factories.Assignment.ForNurse(nurse)
	finished.ShiftID = shift.ID
	finished.Date = active.Date.AddDate(0, 0, 1)
	finished.Status = models.AssignmentStatusFinished
	suite.NoError(suite.repo.Create(finished))

	count, err := suite.repo.CountActiveByShiftID(shift.ID)

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestCountActiveByShiftIDEmpty tests counting when no assignment references the shift
func (suite *AssignmentRepositoryTestSuite) TestCountActiveByShiftIDEmpty() {
	count, err := suite.repo.CountActiveByShiftID(uuid.New())

	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestUpdate tests updating an assignment
func (suite *AssignmentRepositoryTestSuite) TestUpdate() {
	nurse, shift := suite.createNurseAndShift()

	assignment := suite.factories.Assignment.ForNurse(nurse)
	assignment.ShiftID = shift.ID
	suite.NoError(suite.repo.Create(assignment))

	endDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	assignment.Status = models.AssignmentStatusFinished
	assignment.EndDate = &endDate
	suite.NoError(suite.repo.Update(assignment))

	retrieved, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal(models.AssignmentStatusFinished, retrieved.Status)
	suite.NotNil(retrieved.EndDate)
	suite.Equal("2025-03-15", retrieved.EndDate.Format(models.DateLayout))
}

// TestDelete tests deleting an assignment
func (suite *AssignmentRepositoryTestSuite) TestDelete() {
	nurse, shift := suite.createNurseAndShift()

	assignment := suite.factories.Assignment.ForNurse(nurse)
	assignment.ShiftID = shift.ID
	suite.NoError(suite.repo.Create(assignment))

	suite.NoError(suite.repo.Delete(assignment.ID))

	_, err := suite.repo.GetByID(assignment.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestAssignmentRepositoryTestSuite runs the test suite
func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
