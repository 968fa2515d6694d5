package models

// District is a sub-region belonging to exactly one Division. Seeded at
// startup, read-only afterwards.
type District struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	DivisionID uint   `gorm:"index;not null" json:"division"`

	// Relations
	Division Division `gorm:"foreignKey:DivisionID" json:"-"`
}
