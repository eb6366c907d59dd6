package models

// Ingredient is immutable reference data loaded by bulk import. The same
// name may appear with several measurement units, so uniqueness is on the
// (name, measurement_unit) pair.
type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:100;not null;uniqueIndex:idx_ingredient_name_unit" json:"name"`
	MeasurementUnit string `gorm:"size:200;not null;uniqueIndex:idx_ingredient_name_unit" json:"measurement_unit"`
}

// Tag is reference data created by administrators.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;unique;not null" json:"name"`
	Color string `gorm:"size:7;unique;not null" json:"color"`
	Slug  string `gorm:"size:100;unique;not null" json:"slug"`
}
