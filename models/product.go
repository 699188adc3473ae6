package models

// Product mirrors one upstream product card. Price and OldPrice stay as the
// upstream decimal strings, they are never parsed as numbers here.
type Product struct {
	ID              uint     `gorm:"primaryKey" json:"id" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	CategoryID      uint     `json:"category_id" validate:"required"` // Foreign key to Category
	Price           string   `json:"price"`
	OldPrice        string   `json:"old_price"`
	Description     string   `json:"description"`
	Characteristics string   `json:"characteristics"`
	Rating          int      `json:"rating"`
	Views           int      `json:"views"`
	Status          bool     `json:"status"`
	Images          []string `json:"images" gorm:"type:text;serializer:json"`
}
