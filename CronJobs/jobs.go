package CronJobs

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// BackupSource produces the workbook to archive. A zero task count skips the
// run without writing a file.
type BackupSource func() (*bytes.Buffer, int, error)

// BackupScheduler periodically archives the current checklist as an xlsx file
type BackupScheduler struct {
	cronScheduler  *cron.Cron
	source         BackupSource
	backupDir      string
	schedule       string
	runImmediately bool
	jobID          cron.EntryID
}

// NewBackupScheduler creates a new backup scheduler with the given configuration
func NewBackupScheduler(source BackupSource, backupDir, schedule string, runImmediately bool) *BackupScheduler {
	if schedule == "" {
		// Daily at 1:00 AM
		schedule = "0 0 1 * * *"
	}
	return &BackupScheduler{
		cronScheduler:  cron.New(cron.WithSeconds()),
		source:         source,
		backupDir:      backupDir,
		schedule:       schedule,
		runImmediately: runImmediately,
	}
}

// Start initiates the backup cron job
func (s *BackupScheduler) Start() error {
	if err := os.MkdirAll(s.backupDir, 0755); err != nil {
		return fmt.Errorf("error creating backup directory: %w", err)
	}

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(s.schedule, func() {
		log.Println("Running scheduled checklist backup")
		s.runBackup()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()

	if s.runImmediately {
		s.runBackup()
	}

	return nil
}

// Stop terminates the backup scheduler
func (s *BackupScheduler) Stop() {
	s.cronScheduler.Remove(s.jobID)
	s.cronScheduler.Stop()
}

func (s *BackupScheduler) runBackup() {
	buf, count, err := s.source()
	if err != nil {
		log.Printf("Backup failed: %v", err)
		return
	}
	if count == 0 {
		log.Println("Checklist is empty, skipping backup")
		return
	}

	name := fmt.Sprintf("checklist_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(s.backupDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		log.Printf("Error writing backup %s: %v", path, err)
		return
	}
	log.Printf("Backed up %d tasks to %s", count, path)
}
