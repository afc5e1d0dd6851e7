package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "index.html", "<div>one</div>")

	created, err := CreateBackup(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("expected backup to be created")
	}

	content, err := os.ReadFile(BackupPath(path))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "<div>one</div>" {
		t.Errorf("backup content = %q", content)
	}
}

func TestCreateBackup_Idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "index.html", "<div>one</div>")

	if _, err := CreateBackup(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	// A second backup after an edit must not clobber the first.
	if err := os.WriteFile(path, []byte("<div>two</div>"), 0644); err != nil {
		t.Fatal(err)
	}
	created, err := CreateBackup(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("second CreateBackup reported a new backup")
	}

	content, _ := os.ReadFile(BackupPath(path))
	if string(content) != "<div>one</div>" {
		t.Errorf("backup content = %q, want the original", content)
	}
}

func TestCreateBackup_MissingOriginal(t *testing.T) {
	t.Parallel()

	created, err := CreateBackup(context.Background(), filepath.Join(t.TempDir(), "nope.css"))
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("backup created for missing file")
	}
}

func TestRestoreBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "index.html", "<div>one</div>")

	if _, err := CreateBackup(context.Background(), path); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("<div>broken</div>"), 0644); err != nil {
		t.Fatal(err)
	}

	restored, err := RestoreBackup(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if !restored {
		t.Fatal("expected restore")
	}
	content, _ := os.ReadFile(path)
	if string(content) != "<div>one</div>" {
		t.Errorf("restored content = %q", content)
	}
}

func TestRestoreBackup_NoBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "index.html", "<div>one</div>")

	restored, err := RestoreBackup(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if restored {
		t.Error("restore reported without a backup")
	}
}
