// SPDX-License-Identifier: MIT

// Package backup writes and restores YAML snapshots of the palette library.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/thatcatcamp/huewheel/internal/library"
	"github.com/thatcatcamp/huewheel/internal/palette"
	"gorm.io/gorm"
)

// SnapshotVersion is written to every snapshot
const SnapshotVersion = "1"

const (
	filePrefix = "library-"
	fileSuffix = ".yaml"
	timeLayout = "2006-01-02-150405.000000000"
)

// Snapshot is the file form of the library. Palettes are stored by base
// color and scheme and rebuilt on restore.
type Snapshot struct {
	Version   string            `yaml:"version"`
	CreatedAt string            `yaml:"created_at"`
	Palettes  []SnapshotPalette `yaml:"palettes"`
}

// SnapshotPalette is one saved palette in a Snapshot
type SnapshotPalette struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Hex    string `yaml:"hex"`
	Scheme string `yaml:"scheme"`
}

// Export writes a snapshot of every saved palette to w
func Export(db *gorm.DB, w io.Writer) error {
	saved, err := library.List(db)
	if err != nil {
		return err
	}

	snap := Snapshot{
		Version:   SnapshotVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Palettes:  make([]SnapshotPalette, 0, len(saved)),
	}
	for _, s := range saved {
		snap.Palettes = append(snap.Palettes, SnapshotPalette{
			Name:   s.Name,
			Color:  s.BaseColor,
			Hex:    s.BaseHex,
			Scheme: s.Scheme,
		})
	}

	out, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// Import saves every palette of the snapshot in r. Names already in the
// library are skipped and counted. Import is all or nothing: every entry is
// validated before anything is written, and the saves share one transaction.
func Import(db *gorm.DB, r io.Reader) (imported, skipped int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return 0, 0, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return 0, 0, fmt.Errorf("unsupported snapshot version %q", snap.Version)
	}

	palettes := make([]*palette.Palette, len(snap.Palettes))
	for i, sp := range snap.Palettes {
		if strings.TrimSpace(sp.Name) == "" {
			return 0, 0, fmt.Errorf("palette %d: %w", i, library.ErrInvalidName)
		}
		p, err := palette.Generate(sp.Color, sp.Scheme)
		if err != nil {
			return 0, 0, fmt.Errorf("palette %s: %w", sp.Name, err)
		}
		palettes[i] = p
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i, sp := range snap.Palettes {
			if _, err := library.Save(tx, sp.Name, palettes[i]); err != nil {
				if errors.Is(err, library.ErrExists) {
					skipped++
					continue
				}
				return fmt.Errorf("palette %s: %w", sp.Name, err)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return imported, skipped, nil
}

// BackupManager writes timestamped snapshots into a directory
type BackupManager struct {
	BackupPath string
	Keep       int // snapshots kept after each backup; 0 keeps all
}

// NewBackupManager creates a new backup manager keeping the last 10 snapshots
func NewBackupManager(backupPath string) *BackupManager {
	return &BackupManager{
		BackupPath: backupPath,
		Keep:       10,
	}
}

// CreateBackup writes a snapshot of the library and prunes old ones. It
// returns the path of the new file.
func (m *BackupManager) CreateBackup(db *gorm.DB) (string, error) {
	if err := os.MkdirAll(m.BackupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := filePrefix + time.Now().UTC().Format(timeLayout) + fileSuffix
	path := filepath.Join(m.BackupPath, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	if err := Export(db, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}

	if err := m.prune(); err != nil {
		return path, err
	}
	return path, nil
}

// ListBackups returns snapshot file names, oldest first
func (m *BackupManager) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), filePrefix) || !strings.HasSuffix(e.Name(), fileSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// prune deletes the oldest snapshots beyond Keep
func (m *BackupManager) prune() error {
	if m.Keep <= 0 {
		return nil
	}
	names, err := m.ListBackups()
	if err != nil {
		return err
	}
	for len(names) > m.Keep {
		if err := os.Remove(filepath.Join(m.BackupPath, names[0])); err != nil {
			return fmt.Errorf("failed to remove old backup: %w", err)
		}
		names = names[1:]
	}
	return nil
}
