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

// NurseRepositoryTestSuite tests the NurseRepository
type NurseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NurseRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *NurseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewNurseRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *NurseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NurseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *NurseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new nurse
func (suite *NurseRepositoryTestSuite) TestCreate() {
	nurse := suite.factories.Nurse.Create()

	err := suite.repo.Create(nurse)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, nurse.ID)
	suite.NotZero(nurse.CreatedAt)
}

// TestCreateDuplicateCURP tests the unique index on CURP
func (suite *NurseRepositoryTestSuite) TestCreateDuplicateCURP() {
	first := suite.factories.Nurse.Create()
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Nurse.WithName("Ana Ruiz")
	second.CURP = first.CURP

	err := suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByCURP tests retrieving a nurse by CURP
func (suite *NurseRepositoryTestSuite) TestGetByCURP() {
	nurse := suite.factories.Nurse.Create()
	suite.NoError(suite.repo.Create(nurse))

	retrieved, err := suite.repo.GetByCURP(nurse.CURP)

	suite.NoError(err)
	suite.Equal(nurse.ID, retrieved.ID)
}

// TestGetByCURPNotFound tests retrieving a non-existent CURP
func (suite *NurseRepositoryTestSuite) TestGetByCURPNotFound() {
	nurse, err := suite.repo.GetByCURP("XXXX000000XXXXXX00")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(nurse)
}

// TestGetActive tests that only active nurses are returned
func (suite *NurseRepositoryTestSuite) TestGetActive() {
	active := suite.factories.Nurse.Create()
	suite.NoError(suite.repo.Create(active))

	onLeave := suite.factories.Nurse.WithStatus(models.NurseStatusOnLeave)
	suite.NoError(suite.repo.Create(onLeave))

	nurses, err := suite.repo.GetActive()

	suite.NoError(err)
	suite.Len(nurses, 1)
	suite.Equal(active.ID, nurses[0].ID)
}

// TestSearch tests matching by name and area fragments
func (suite *NurseRepositoryTestSuite) TestSearch() {
	maria := suite.factories.Nurse.WithName("Maria Lopez")
	suite.NoError(suite.repo.Create(maria))

	ana := suite.factories.Nurse.WithName("Ana Ruiz")
	ana.Area = "Emergency"
	suite.NoError(suite.repo.Create(ana))

	nurses, total, err := suite.repo.Search("lopez", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Maria Lopez", nurses[0].FullName)

	nurses, total, err = suite.repo.Search("emergency", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Ana Ruiz", nurses[0].FullName)
}

// TestGetByArea tests filtering nurses by area
func (suite *NurseRepositoryTestSuite) TestGetByArea() {
	icu := suite.factories.Nurse.WithArea("ICU")
	suite.NoError(suite.repo.Create(icu))

	er := suite.factories.Nurse.WithArea("Emergency")
	suite.NoError(suite.repo.Create(er))

	nurses, total, err := suite.repo.GetByArea("ICU", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(icu.ID, nurses[0].ID)
}

// TestUpdate tests updating a nurse
func (suite *NurseRepositoryTestSuite) TestUpdate() {
	nurse := suite.factories.Nurse.Create()
	suite.NoError(suite.repo.Create(nurse))

	nurse.Status = models.NurseStatusOnLeave
	nurse.Available = false
	suite.NoError(suite.repo.Update(nurse))

	retrieved, err := suite.repo.GetByID(nurse.ID)
	suite.NoError(err)
	suite.Equal(models.NurseStatusOnLeave, retrieved.Status)
	suite.False(retrieved.Available)
}

// TestDelete tests deleting a nurse
func (suite *NurseRepositoryTestSuite) TestDelete() {
	nurse := suite.factories.Nurse.Create()
	suite.NoError(suite.repo.Create(nurse))

	suite.NoError(suite.repo.Delete(nurse.ID))

	_, err := suite.repo.GetByID(nurse.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestNurseRepositoryTestSuite runs the test suite
func TestNurseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NurseRepositoryTestSuite))
}
