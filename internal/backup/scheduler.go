// SPDX-License-Identifier: MIT
package backup

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Scheduler handles automatic backup scheduling
type Scheduler struct {
	Manager        *BackupManager
	BackupInterval time.Duration

	db       *gorm.DB
	logger   *zap.Logger
	ticker   *time.Ticker
	done     chan bool
	stopChan chan bool
}

// NewScheduler creates a daily backup scheduler for the library in db
func NewScheduler(manager *BackupManager, db *gorm.DB, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		Manager:        manager,
		BackupInterval: 24 * time.Hour,
		db:             db,
		logger:         logger,
		done:           make(chan bool, 1),
		stopChan:       make(chan bool, 1),
	}
}

// Start begins the backup scheduler in a goroutine.
// Returns a done channel that receives once the scheduler stops.
func (s *Scheduler) Start() chan bool {
	go func() {
		s.ticker = time.NewTicker(s.BackupInterval)
		defer s.ticker.Stop()

		// Run initial backup immediately
		s.runBackup()

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-s.ticker.C:
				s.runBackup()
			}
		}
	}()

	return s.done
}

// Stop stops the backup scheduler
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- true:
	default:
	}
}

// runBackup performs a single backup operation
func (s *Scheduler) runBackup() {
	path, err := s.Manager.CreateBackup(s.db)
	if err != nil {
		s.logger.Error("library backup failed", zap.Error(err))
		return
	}
	s.logger.Info("library backup written", zap.String("path", path))
}

// SetInterval sets the backup interval
func (s *Scheduler) SetInterval(interval time.Duration) {
	s.BackupInterval = interval
}
