// Package artifact persists summary documents as flat files under one
// configured root and owns the filename convention they are stored
// under. Files are written whole and never mutated in place; there is
// no locking, so concurrent writers to the same name race and the last
// write wins (single-operator usage).
package artifact

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"recap/internal/logging"
	"recap/internal/toolerr"
)

// Store reads and writes summary artifacts under a root directory.
type Store struct {
	dir string
	log *slog.Logger
}

// NewStore creates a Store rooted at dir. The directory is created
// lazily on first write or list.
func NewStore(dir string) *Store {
	return &Store{dir: dir, log: logging.New("store")}
}

// Dir returns the configured root.
func (s *Store) Dir() string { return s.dir }

// EnsureDir creates the root directory if absent. Idempotent.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create summaries dir: %w", err)
	}
	return nil
}

// Save writes content to filename under the root, creating the root if
// needed and overwriting any existing file. Returns the absolute path.
func (s *Store) Save(filename, content string) (string, error) {
	if err := s.EnsureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	s.log.Debug("saved artifact", "filename", filename, "bytes", len(content))
	return abs, nil
}

// Read returns the content of filename, or FILE_NOT_FOUND when absent.
func (s *Store) Read(filename string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if os.IsNotExist(err) {
		return "", toolerr.New(toolerr.CodeFileNotFound,
			fmt.Sprintf("Summary not found: %s", filename),
			"Use list_summaries to see available summaries")
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	return string(data), nil
}

// Exists reports whether filename is present under the root.
func (s *Store) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(s.dir, filename))
	return err == nil
}

// Size returns the size of filename in bytes.
func (s *Store) Size(filename string) (int64, error) {
	fi, err := os.Stat(filepath.Join(s.dir, filename))
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", filename, err)
	}
	return fi.Size(), nil
}

// Info describes one stored artifact.
type Info struct {
	Filename string
	Path     string
	Created  time.Time
	Modified time.Time
	Size     int64
}

// ListOptions narrow and order a listing. Format is all, html, or
// markdown; Sort is newest or oldest; Limit truncates after sorting
// (<= 0 means the default of 10).
type ListOptions struct {
	Format string
	Sort   string
	Limit  int
}

// List returns weekly summary artifacts under the root, newest first by
// default. Creates the root if absent so an empty store lists cleanly.
// Artifacts are never rewritten, so mtime stands in for creation time.
func (s *Store) List(opts ListOptions) ([]Info, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read summaries dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, WeeklyPrefix) {
			continue
		}
		if !matchesFormat(name, opts.Format) {
			continue
		}
		names = append(names, name)
	}

	infos := make([]Info, len(names))
	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			path := filepath.Join(s.dir, name)
			fi, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", name, err)
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			infos[i] = Info{
				Filename: name,
				Path:     abs,
				Created:  fi.ModTime(),
				Modified: fi.ModTime(),
				Size:     fi.Size(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	newestFirst := opts.Sort != "oldest"
	sort.Slice(infos, func(i, j int) bool {
		if newestFirst {
			return infos[i].Created.After(infos[j].Created)
		}
		return infos[i].Created.Before(infos[j].Created)
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}
	if len(infos) > limit {
		infos = infos[:limit]
	}
	return infos, nil
}

func matchesFormat(name, format string) bool {
	switch format {
	case "html":
		return strings.HasSuffix(name, ".html")
	case "markdown":
		return strings.HasSuffix(name, ".md")
	default:
		return strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".md")
	}
}
