// SPDX-License-Identifier: MIT

// Package library stores named palettes in the database.
package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/huewheel/internal/models"
	"github.com/thatcatcamp/huewheel/internal/palette"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no palette has the requested name
	ErrNotFound = errors.New("palette not found")
	// ErrExists is returned when saving under a name already in use
	ErrExists = errors.New("palette already exists")
	// ErrInvalidName is returned for an empty palette name
	ErrInvalidName = errors.New("palette name is required")
)

// Save stores p under name together with its entries in palette order
func Save(db *gorm.DB, name string, p *palette.Palette) (*models.SavedPalette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	saved := &models.SavedPalette{
		Name:      name,
		BaseColor: p.BaseName,
		BaseHex:   p.Base.Hex(),
		Scheme:    p.Scheme,
	}
	pos := 0
	for _, g := range p.Groups() {
		for _, kv := range g.Colors.Order {
			saved.Entries = append(saved.Entries, models.SavedEntry{
				Position:  pos,
				GroupName: g.Name,
				Key:       kv.Key,
				Hex:       kv.Value,
			})
			pos++
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SavedPalette{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check palette name: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
		if err := tx.Create(saved).Error; err != nil {
			return fmt.Errorf("failed to save palette: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Get retrieves a saved palette by name with its entries in order
func Get(db *gorm.DB, name string) (*models.SavedPalette, error) {
	var saved models.SavedPalette
	result := db.Preload("Entries", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	}).Where("name = ?", strings.TrimSpace(name)).First(&saved)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to get palette: %w", result.Error)
	}
	return &saved, nil
}

// Load rebuilds the palette saved under name from its base color and scheme
func Load(db *gorm.DB, name string) (*palette.Palette, error) {
	saved, err := Get(db, name)
	if err != nil {
		return nil, err
	}
	p, err := palette.Generate(saved.BaseColor, saved.Scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild palette %s: %w", saved.Name, err)
	}
	return p, nil
}

// List returns all saved palettes ordered by name, without entries
func List(db *gorm.DB) ([]models.SavedPalette, error) {
	var saved []models.SavedPalette
	if err := db.Order("name").Find(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	return saved, nil
}

// Count returns the number of saved palettes
func Count(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.SavedPalette{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count palettes: %w", err)
	}
	return count, nil
}

// Delete removes a saved palette and its entries
func Delete(db *gorm.DB, name string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var saved models.SavedPalette
		result := tx.Where("name = ?", strings.TrimSpace(name)).First(&saved)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, name)
			}
			return fmt.Errorf("failed to find palette: %w", result.Error)
		}

		if err := tx.Where("palette_id = ?", saved.ID).Delete(&models.SavedEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete palette entries: %w", err)
		}
		if err := tx.Delete(&saved).Error; err != nil {
			return fmt.Errorf("failed to delete palette: %w", err)
		}
		return nil
	})
}
