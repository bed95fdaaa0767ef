package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel contains the creation timestamp shared by all member records.
// Member records are created once and never updated, so there is no UpdatedAt.
type BaseModel struct {
	CreatedAt time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// BeforeCreate GORM hook for BaseModel
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	return nil
}
