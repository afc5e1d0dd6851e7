package fsutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.css", "h1 { color: red }\n")

	content, snap, err := Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(content) != "h1 { color: red }\n" {
		t.Errorf("content = %q", content)
	}
	if snap.Path != path || snap.Size != int64(len(content)) {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := Read(context.Background(), filepath.Join(dir, "missing.css"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file: err = %v, want ErrNotFound", err)
	}

	_, _, err = Read(context.Background(), dir)
	if !errors.Is(err, ErrIsDirectory) {
		t.Errorf("directory: err = %v, want ErrIsDirectory", err)
	}
}

func TestSnapshotModified(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.css", "a: 1")

	_, snap, err := Read(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	changed, err := snap.Modified(context.Background())
	if err != nil || changed {
		t.Errorf("untouched file: changed = %v, err = %v", changed, err)
	}

	if err := os.WriteFile(path, []byte("a: 2"), 0644); err != nil {
		t.Fatal(err)
	}
	changed, err = snap.Modified(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("rewritten file reported as unchanged")
	}
}

func TestSnapshotModified_TouchOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.css", "a: 1")

	_, snap, err := Read(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	// Same content, new mod time: the hash check should clear it.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	changed, err := snap.Modified(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("touched file with identical content reported as modified")
	}
}

func TestSnapshotModified_Deleted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.css", "a: 1")

	_, snap, err := Read(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	changed, err := snap.Modified(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("deleted file reported as unchanged")
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.css")

	if err := WriteAtomic(context.Background(), path, []byte("x: 1"), 0); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "x: 1" {
		t.Errorf("content = %q", content)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1", len(entries))
	}
}

func TestWriteAtomic_PreservesMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.css")

	if err := WriteAtomic(context.Background(), path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if stat.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", stat.Mode().Perm())
	}
}

func TestWriteAtomic_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteAtomic(ctx, filepath.Join(t.TempDir(), "x"), []byte("x"), 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestWriteBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.css", "a: 1")

	_, snap, err := Read(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	if err := WriteBack(context.Background(), snap, []byte("a: 2"), false); err != nil {
		t.Fatalf("WriteBack: %v", err)
	}
	content, _ := os.ReadFile(path)
	if string(content) != "a: 2" {
		t.Errorf("content = %q", content)
	}
}

func TestWriteBack_DetectsExternalEdit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.css", "a: 1")

	_, snap, err := Read(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("a: changed elsewhere"), 0644); err != nil {
		t.Fatal(err)
	}

	err = WriteBack(context.Background(), snap, []byte("a: 2"), false)
	if !errors.Is(err, ErrModified) {
		t.Errorf("err = %v, want ErrModified", err)
	}

	// The external edit survives.
	content, _ := os.ReadFile(path)
	if string(content) != "a: changed elsewhere" {
		t.Errorf("content = %q", content)
	}
}

func TestWriteBack_Backup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.css", "a: 1")

	_, snap, err := Read(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteBack(context.Background(), snap, []byte("a: 2"), true); err != nil {
		t.Fatal(err)
	}

	backup, err := os.ReadFile(BackupPath(path))
	if err != nil {
		t.Fatalf("backup not created: %v", err)
	}
	if string(backup) != "a: 1" {
		t.Errorf("backup content = %q, want original", backup)
	}
}
