package models

// InventoryItem represents a pharmacy stock item: a medication or a
// consumable supply.
type InventoryItem struct {
	BaseModel
	Name            string            `json:"name" gorm:"size:100;not null;index" validate:"required,min=1,max=100"`
	Presentation    string            `json:"presentation" gorm:"size:100" validate:"required"`
	ItemType        InventoryItemType `json:"item_type" gorm:"type:varchar(20);not null" validate:"required"`
	Quantity        int               `json:"quantity" gorm:"not null;default:0" validate:"min=0"`
	RecommendedDose string            `json:"recommended_dose,omitempty" gorm:"size:100"`
}

// TableName returns the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}
