package domain

// Item is a catalog record. Description and Tax are optional and stored as
// NULL when absent.
type Item struct {
	ID          uint     `gorm:"primarykey" json:"id"`
	Name        string   `gorm:"size:100;not null" json:"name"`
	Description *string  `gorm:"size:500" json:"description,omitempty"`
	Price       float64  `gorm:"not null" json:"price"`
	Tax         *float64 `json:"tax,omitempty"`
}

// TableName returns the table name for the Item model.
func (Item) TableName() string {
	return "items"
}
