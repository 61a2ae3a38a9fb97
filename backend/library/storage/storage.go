// Package storage is the file repository over the single managed upload
// directory. The namespace is flat: listing, stats and deletion never
// recurse.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"mediabox/backend/common"
	"mediabox/backend/model"
)

// ErrInvalidName marks a filename that resolves outside the managed
// directory (path traversal) and must be answered with a client error.
var ErrInvalidName = errors.New("invalid file name")

type Repository struct {
	dir string
}

func New(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Repository{dir: abs}, nil
}

func (r *Repository) Dir() string {
	return r.dir
}

type ListResult struct {
	Files       []model.StoredFile `json:"files"`
	Total       int                `json:"total"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
}

// List filters by case-insensitive substring, sorts newest first and
// slices out one page. Page numbers are 1-indexed; a page past the end
// yields an empty slice. Stats are snapshotted once per call so the sort
// is stable, and entries that vanish mid-scan are skipped.
func (r *Repository) List(page int, limit int, search string) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = common.DefaultPageSize
	}

	snapshot, err := r.snapshot()
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := snapshot[:0]
		for _, f := range snapshot {
			if strings.Contains(strings.ToLower(f.Name), needle) {
				filtered = append(filtered, f)
			}
		}
		snapshot = filtered
	}

	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].CreatedAt.Equal(snapshot[j].CreatedAt) {
			return snapshot[i].Name < snapshot[j].Name
		}
		return snapshot[i].CreatedAt.After(snapshot[j].CreatedAt)
	})

	total := len(snapshot)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &ListResult{
		Files:       snapshot[start:end],
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// Delete removes one file. Names resolving outside the managed directory
// are rejected with ErrInvalidName; a missing file surfaces the
// filesystem error.
func (r *Repository) Delete(name string) error {
	abs, err := filepath.Abs(filepath.Join(r.dir, name))
	if err != nil || !strings.HasPrefix(abs, r.dir+string(os.PathSeparator)) {
		return ErrInvalidName
	}
	return os.Remove(abs)
}

type RecentFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Stats struct {
	TotalFiles  int          `json:"totalFiles"`
	TotalSize   int64        `json:"totalSize"`
	TotalSizeMB string       `json:"totalSizeMB"`
	ImageCount  int          `json:"imageCount"`
	VideoCount  int          `json:"videoCount"`
	OtherCount  int          `json:"otherCount"`
	RecentFiles []RecentFile `json:"recentFiles"`
}

// Stats aggregates the directory in a single pass. The wire format keeps
// three counters, with audio counted under otherCount, and recentFiles
// holds the five newest entries by creation time.
func (r *Repository) Stats() (*Stats, error) {
	snapshot, err := r.snapshot()
	if err != nil {
		return nil, err
	}

	stats := &Stats{RecentFiles: []RecentFile{}}
	for _, f := range snapshot {
		stats.TotalFiles++
		stats.TotalSize += f.Size
		switch f.Type {
		case model.MediaImage:
			stats.ImageCount++
		case model.MediaVideo:
			stats.VideoCount++
		default:
			stats.OtherCount++
		}
	}
	stats.TotalSizeMB = fmt.Sprintf("%.2f", float64(stats.TotalSize)/(1024*1024))

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].CreatedAt.After(snapshot[j].CreatedAt)
	})
	for i := 0; i < len(snapshot) && i < common.RecentFileCount; i++ {
		stats.RecentFiles = append(stats.RecentFiles, RecentFile{
			Name: snapshot[i].Name,
			URL:  snapshot[i].URL,
		})
	}

	return stats, nil
}

// SaveUpload streams one multipart file into the directory under a fresh
// unique name and returns that name.
func (r *Repository) SaveUpload(fh *multipart.FileHeader, field string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := UniqueName(field, filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(r.dir, name))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// Create opens a new file in the directory for streaming writes (used by
// the remote fetcher). The caller owns closing and cleanup.
func (r *Repository) Create(name string) (*os.File, error) {
	return os.Create(filepath.Join(r.dir, name))
}

func (r *Repository) Remove(name string) error {
	return os.Remove(filepath.Join(r.dir, name))
}

// UniqueName builds "{prefix}-{timestamp}-{random}{ext}". Timestamp plus
// random suffix makes collisions negligible without any global counter.
func UniqueName(prefix string, ext string) string {
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixMilli(), common.RandomSuffix(), ext)
}

// snapshot stats every entry once so sorting and aggregation never re-stat.
func (r *Repository) snapshot() ([]model.StoredFile, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}
	files := make([]model.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// deleted between readdir and stat
			continue
		}
		files = append(files, model.NewStoredFile(entry.Name(), info))
	}
	return files, nil
}
