package models

// Tag classifies recipes. Slug is the stable identifier used in filters.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Color string `gorm:"size:7" json:"color"`
	Slug  string `gorm:"unique;not null" json:"slug"`
}

// Ingredient is a catalog entry referenced by recipe ledgers. Name and unit
// are immutable once a ledger row points at the ingredient; edits would
// silently rewrite published recipes.
type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;index" json:"name"`
	Unit string `gorm:"not null" json:"measurement_unit"`
}
