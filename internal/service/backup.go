package service

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/klauspost/compress/gzip"
)

// BackupService snapshots the database file before schema migrations touch it.
type BackupService struct {
	dbPath string
	now    func() time.Time
}

func NewBackupService(dbPath string) *BackupService {
	return &BackupService{
		dbPath: dbPath,
		now:    time.Now,
	}
}

// BackupBeforeMigration writes a gzip copy of the database file next to it,
// named after the schema version it was taken at. Returns the backup path,
// or "" when the database file does not exist yet (fresh install, nothing to
// protect). A backup failure is fatal to startup: the caller must not migrate
// a database it could not snapshot.
func (s *BackupService) BackupBeforeMigration(currentVersion int) (string, error) {
	src, err := os.Open(s.dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Backup] No existing database at %s, skipping backup", s.dbPath)
			return "", nil
		}
		return "", fmt.Errorf("failed to open database for backup: %w", err)
	}
	defer src.Close()

	backupPath := fmt.Sprintf("%s.backup-v%d-%s.gz", s.dbPath, currentVersion, s.now().Format("20060102-150405"))
	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	gz := gzip.NewWriter(dst)
	if _, err := io.Copy(gz, src); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if err := gz.Close(); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("failed to finalize backup: %w", err)
	}

	log.Printf("[Backup] Database backed up to %s", backupPath)
	return backupPath, nil
}
