//go:build integration
// +build integration

package repository

import (
	"testing"

	"hospital-staff-backend/internal/database/models"
	"hospital-staff-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShiftRepositoryTestSuite tests the ShiftRepository
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new shift
func (suite *ShiftRepositoryTestSuite) TestCreate() {
	shift := suite.factories.Shift.Create()

	err := suite.repo.Create(shift)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, shift.ID)
	suite.NotZero(shift.CreatedAt)
	suite.NotZero(shift.UpdatedAt)
}

// TestGetByID tests retrieving a shift by ID
func (suite *ShiftRepositoryTestSuite) TestGetByID() {
	shift := suite.factories.Shift.WithName("Night Shift")
	err := suite.repo.Create(shift)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(shift.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(shift.ID, retrieved.ID)
	suite.Equal("Night Shift", retrieved.Name)
	suite.Equal(shift.StartTime, retrieved.StartTime)
}

// TestGetByIDNotFound tests retrieving a non-existent shift
func (suite *ShiftRepositoryTestSuite) TestGetByIDNotFound() {
	shift, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(shift)
}

// TestGetAll tests listing shifts with pagination
func (suite *ShiftRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Shift.WithName("Afternoon Shift")))
	suite.NoError(suite.repo.Create(suite.factories.Shift.WithName("Day Shift")))
	suite.NoError(suite.repo.Create(suite.factories.Shift.WithName("Night Shift")))

	shifts, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(shifts, 3)
	// Ordered by name
	suite.Equal("Afternoon Shift", shifts[0].Name)
	suite.Equal("Night Shift", shifts[2].Name)
}

// TestGetAllPagination tests that limit and offset are applied
func (suite *ShiftRepositoryTestSuite) TestGetAllPagination() {
	suite.NoError(suite.repo.Create(suite.factories.Shift.WithName("Shift A")))
	suite.NoError(suite.repo.Create(suite.factories.Shift.WithName("Shift B")))
	suite.NoError(suite.repo.Create(suite.factories.Shift.WithName("Shift C")))

	shifts, total, err := suite.repo.GetAll(2, 2)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(shifts, 1)
	suite.Equal("Shift C", shifts[0].Name)
}

// TestGetActive tests that only active shifts are returned
func (suite *ShiftRepositoryTestSuite) TestGetActive() {
	active := suite.factories.Shift.WithName("Active Shift")
	suite.NoError(suite.repo.Create(active))

	inactive := suite.factories.Shift.WithStatus(models.ShiftStatusInactive)
	inactive.Name = "Inactive Shift"
	suite.NoError(suite.repo.Create(inactive))

	shifts, err := suite.repo.GetActive()

	suite.NoError(err)
	suite.Len(shifts, 1)
	suite.Equal("Active Shift", shifts[0].Name)
}

// TestGetByArea tests that area filtering includes general shifts
func (suite *ShiftRepositoryTestSuite) TestGetByArea() {
	icu := suite.factories.Shift.WithArea("ICU")
	icu.Name = "ICU Shift"
	suite.NoError(suite.repo.Create(icu))

	er := suite.factories.Shift.WithArea("Emergency")
	er.Name = "ER Shift"
	suite.NoError(suite.repo.Create(er))

	general := suite.factories.Shift.WithName("General Shift")
	suite.NoError(suite.repo.Create(general))

	shifts, total, err := suite.repo.GetByArea("ICU", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(shifts, 2)
	names := []string{shifts[0].Name, shifts[1].Name}
	suite.Contains(names, "ICU Shift")
	suite.Contains(names, "General Shift")
}

// TestGetByStatus tests filtering by status
func (suite *ShiftRepositoryTestSuite) TestGetByStatus() {
	suite.NoError(suite.repo.Create(suite.factories.Shift.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Shift.WithStatus(models.ShiftStatusInactive)))

	shifts, total, err := suite.repo.GetByStatus(models.ShiftStatusInactive, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(shifts, 1)
	suite.Equal(models.ShiftStatusInactive, shifts[0].Status)
}

// TestUpdate tests updating a shift
func (suite *ShiftRepositoryTestSuite) TestUpdate() {
	shift := suite.factories.Shift.Create()
	suite.NoError(suite.repo.Create(shift))

	shift.Name = "Renamed Shift"
	shift.StartTime = "14:00"
	shift.EndTime = "22:00"
	err := suite.repo.Update(shift)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Equal("Renamed Shift", retrieved.Name)
	suite.Equal("14:00", retrieved.StartTime)
}

// TestDelete tests deleting a shift
func (suite *ShiftRepositoryTestSuite) TestDelete() {
	shift := suite.factories.Shift.Create()
	suite.NoError(suite.repo.Create(shift))

	err := suite.repo.Delete(shift.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(shift.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestWeekdaysRoundTrip tests that the weekday list survives persistence
func (suite *ShiftRepositoryTestSuite) TestWeekdaysRoundTrip() {
	shift := suite.factories.Shift.Create()
	shift.Weekdays = models.StringList{"monday", "wednesday", "friday"}
	suite.NoError(suite.repo.Create(shift))

	retrieved, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Equal(models.StringList{"monday", "wednesday", "friday"}, retrieved.Weekdays)
}

// TestShiftRepositoryTestSuite runs the test suite
func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}
