package models

// Division is a top-level administrative region. Rows are seeded at
// startup and read-only afterwards.
type Division struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
}
