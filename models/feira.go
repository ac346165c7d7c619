package models

// Feira represents a scheduled market event at a city on a date
type Feira struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nome   string `json:"nome" gorm:"size:120;not null"`
	Cidade string `json:"cidade" gorm:"size:120;not null"`
	Data   string `json:"data" gorm:"size:10;not null"` // yyyy-mm-dd
}

// TableName keeps the original schema table name
func (Feira) TableName() string {
	return "feira"
}
