package service

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestBackupBeforeMigration(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tada.db")
	content := []byte("pretend this is a sqlite file")
	if err := os.WriteFile(dbPath, content, 0644); err != nil {
		t.Fatalf("write db file: %v", err)
	}

	svc := NewBackupService(dbPath)
	backupPath, err := svc.BackupBeforeMigration(3)
	if err != nil {
		t.Fatalf("BackupBeforeMigration: %v", err)
	}
	if backupPath == "" {
		t.Fatal("expected a backup path")
	}
	if !strings.Contains(filepath.Base(backupPath), "backup-v3-") {
		t.Errorf("backup name should carry the source version: %s", backupPath)
	}

	f, err := os.Open(backupPath)
	if err != nil {
		t.Fatalf("open backup: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	restored, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !bytes.Equal(restored, content) {
		t.Error("decompressed backup does not match the database file")
	}
}

func TestBackupSkipsFreshInstall(t *testing.T) {
	svc := NewBackupService(filepath.Join(t.TempDir(), "does-not-exist.db"))

	backupPath, err := svc.BackupBeforeMigration(0)
	if err != nil {
		t.Fatalf("BackupBeforeMigration: %v", err)
	}
	if backupPath != "" {
		t.Errorf("fresh install should not produce a backup, got %s", backupPath)
	}
}
