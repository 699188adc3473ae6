package models

// Category mirrors one upstream catalog category. The primary key is the
// upstream external id, reused verbatim.
type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryName string    `json:"category_name"`
	Products     []Product `gorm:"foreignKey:CategoryID" json:"-"` // One-to-many relationship
}
