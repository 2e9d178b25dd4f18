package models

import (
	"time"
)

// SavedPalette is a named palette in the library
type SavedPalette struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:191;uniqueIndex;not null"` // size keeps the index within MySQL limits
	BaseColor string `gorm:"not null"`                      // as requested, e.g. "steelblue" or "#4682b4"
	BaseHex   string `gorm:"size:7;not null"`
	Scheme    string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Entries []SavedEntry `gorm:"foreignKey:PaletteID;constraint:OnDelete:CASCADE"`
}

// SavedEntry is one key/hex pair of a saved palette
type SavedEntry struct {
	ID        uint   `gorm:"primaryKey"`
	PaletteID uint   `gorm:"not null;index"`
	Position  int    `gorm:"not null"` // order within the palette
	GroupName string `gorm:"not null"`
	Key       string `gorm:"not null"`
	Hex       string `gorm:"size:7;not null"`
}
