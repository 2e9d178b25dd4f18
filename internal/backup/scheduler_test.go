// SPDX-License-Identifier: MIT
package backup

import (
	"testing"
	"time"
)

func TestNewScheduler(t *testing.T) {
	manager := NewBackupManager("/tmp/backups")
	scheduler := NewScheduler(manager, nil, nil)
	if scheduler == nil {
		t.Fatal("NewScheduler returned nil")
	}
	if scheduler.Manager != manager {
		t.Fatal("scheduler manager not set correctly")
	}
	if scheduler.BackupInterval != 24*time.Hour {
		t.Errorf("expected daily interval, got %s", scheduler.BackupInterval)
	}
}

func TestSchedulerRunsAndStops(t *testing.T) {
	testDB := setupTestDB(t)
	save(t, testDB, "brand", "red", "basic")

	manager := NewBackupManager(t.TempDir())
	scheduler := NewScheduler(manager, testDB, nil)
	scheduler.SetInterval(time.Hour)

	done := scheduler.Start()
	time.Sleep(100 * time.Millisecond)
	scheduler.Stop()

	// Wait for done signal with timeout
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("scheduler did not stop within timeout")
	}

	// Initial backup runs immediately
	names, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("expected 1 initial backup, got %d", len(names))
	}
}
