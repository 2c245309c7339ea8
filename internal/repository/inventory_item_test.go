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

// InventoryItemRepositoryTestSuite tests the InventoryItemRepository
type InventoryItemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *InventoryItemRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *InventoryItemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewInventoryItemRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *InventoryItemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *InventoryItemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *InventoryItemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new inventory item
func (suite *InventoryItemRepositoryTestSuite) TestCreate() {
	item := suite.factories.InventoryItem.Create()

	err := suite.repo.Create(item)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, item.ID)
}

// TestGetByNameAndPresentation tests natural key lookup
func (suite *InventoryItemRepositoryTestSuite) TestGetByNameAndPresentation() {
	item := suite.factories.InventoryItem.Create()
	suite.NoError(suite.repo.Create(item))

	retrieved, err := suite.repo.GetByNameAndPresentation(item.Name, item.Presentation)

	suite.NoError(err)
	suite.Equal(item.ID, retrieved.ID)

	_, err = suite.repo.GetByNameAndPresentation(item.Name, "different presentation")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestSearch tests name fragment matching and type filtering
func (suite *InventoryItemRepositoryTestSuite) TestSearch() {
	paracetamol := suite.factories.InventoryItem.Create()
	suite.NoError(suite.repo.Create(paracetamol))

	gauze := suite.factories.InventoryItem.WithName("Sterile Gauze")
	gauze.Presentation = "10cm rolls"
	gauze.ItemType = models.ItemTypeSupply
	suite.NoError(suite.repo.Create(gauze))

	items, total, err := suite.repo.Search("gauze", "", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Sterile Gauze", items[0].Name)

	items, total, err = suite.repo.Search("", models.ItemTypeMedication, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Paracetamol", items[0].Name)
}

// TestGetLowStock tests that the threshold filter orders scarcest first
func (suite *InventoryItemRepositoryTestSuite) TestGetLowStock() {
	plenty := suite.factories.InventoryItem.WithQuantity(80)
	plenty.Name = "Ibuprofen"
	plenty.Presentation = "400mg tablets"
	suite.NoError(suite.repo.Create(plenty))

	low := suite.factories.InventoryItem.WithQuantity(5)
	low.Name = "Insulin"
	low.Presentation = "10ml vials"
	suite.NoError(suite.repo.Create(low))

	lower := suite.factories.InventoryItem.WithQuantity(2)
	lower.Name = "Morphine"
	lower.Presentation = "10mg ampoules"
	suite.NoError(suite.repo.Create(lower))

	items, total, err := suite.repo.GetLowStock(10, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(items, 2)
	suite.Equal("Morphine", items[0].Name)
	suite.Equal("Insulin", items[1].Name)
}

// TestUpdate tests quantity changes persisting
func (suite *InventoryItemRepositoryTestSuite) TestUpdate() {
	item := suite.factories.InventoryItem.Create()
	suite.NoError(suite.repo.Create(item))

	item.Quantity = 30
	suite.NoError(suite.repo.Update(item))

	retrieved, err := suite.repo.GetByID(item.ID)
	suite.NoError(err)
	suite.Equal(30, retrieved.Quantity)
}

// TestDelete tests deleting an inventory item
func (suite *InventoryItemRepositoryTestSuite) TestDelete() {
	item := suite.factories.InventoryItem.Create()
	suite.NoError(suite.repo.Create(item))

	suite.NoError(suite.repo.Delete(item.ID))

	_, err := suite.repo.GetByID(item.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestInventoryItemRepositoryTestSuite runs the test suite
func TestInventoryItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryItemRepositoryTestSuite))
}
