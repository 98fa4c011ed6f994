package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"recap/internal/toolerr"
)

func TestSaveAndRead(t *testing.T) {
	s := NewStore(t.TempDir())
	path, err := s.Save("weekly-summary-2025-01-01-to-2025-01-08.md", "# Week one")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("Save returned non-absolute path %q", path)
	}
	content, err := s.Read("weekly-summary-2025-01-01-to-2025-01-08.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if content != "# Week one" {
		t.Errorf("content = %q", content)
	}
}

func TestSave_CreatesRootAndOverwrites(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "summaries")
	s := NewStore(root)
	if _, err := s.Save("a.md", "one"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Save("a.md", "two"); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	got, err := s.Read("a.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "two" {
		t.Errorf("content = %q, want last write", got)
	}
}

func TestRead_NotFound(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Read("missing.md")
	var te *toolerr.Error
	if !errors.As(err, &te) || te.Code != toolerr.CodeFileNotFound {
		t.Fatalf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExistsAndSize(t *testing.T) {
	s := NewStore(t.TempDir())
	if s.Exists("x.md") {
		t.Error("Exists on absent file")
	}
	if _, err := s.Save("x.md", "12345"); err != nil {
		t.Fatal(err)
	}
	if !s.Exists("x.md") {
		t.Error("Exists after Save")
	}
	size, err := s.Size("x.md")
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}
}

func TestList_EmptyStoreCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "summaries")
	s := NewStore(root)
	infos, err := s.List(ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("got %d entries, want 0", len(infos))
	}
	if _, err := os.Stat(root); err != nil {
		t.Errorf("root not created: %v", err)
	}
}

func TestList_FilterSortLimit(t *testing.T) {
	s := NewStore(t.TempDir())
	files := []string{
		"weekly-summary-2025-01-01-to-2025-01-08.md",
		"weekly-summary-2025-01-08-to-2025-01-15.html",
		"weekly-summary-2025-01-15-to-2025-01-22.md",
		"daily-summary-2025-01-22.md",     // wrong prefix, skipped
		"weekly-summary-2025-02-01.notes", // wrong extension, skipped
	}
	base := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	for i, name := range files {
		if _, err := s.Save(name, "content"); err != nil {
			t.Fatal(err)
		}
		ts := base.AddDate(0, 0, 7*i)
		if err := os.Chtimes(filepath.Join(s.Dir(), name), ts, ts); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := s.List(ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	gotNames := make([]string, len(infos))
	for i, in := range infos {
		gotNames[i] = in.Filename
	}
	wantNewest := []string{
		"weekly-summary-2025-01-15-to-2025-01-22.md",
		"weekly-summary-2025-01-08-to-2025-01-15.html",
		"weekly-summary-2025-01-01-to-2025-01-08.md",
	}
	if diff := cmp.Diff(wantNewest, gotNames); diff != "" {
		t.Errorf("newest-first mismatch (-want +got):\n%s", diff)
	}

	infos, err = s.List(ListOptions{Sort: "oldest", Limit: 2})
	if err != nil {
		t.Fatalf("List oldest: %v", err)
	}
	if len(infos) != 2 || infos[0].Filename != wantNewest[2] {
		t.Errorf("oldest-first limited: got %+v", infos)
	}

	infos, err = s.List(ListOptions{Format: "html"})
	if err != nil {
		t.Fatalf("List html: %v", err)
	}
	if len(infos) != 1 || infos[0].Filename != "weekly-summary-2025-01-08-to-2025-01-15.html" {
		t.Errorf("html filter: got %+v", infos)
	}

	infos, err = s.List(ListOptions{Format: "markdown"})
	if err != nil {
		t.Fatalf("List markdown: %v", err)
	}
	if len(infos) != 2 {
		t.Errorf("markdown filter: got %d entries, want 2", len(infos))
	}
}
