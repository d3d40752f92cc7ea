// Package scanner lists checkable files in a directory.
package scanner

import (
	"os"
	"path/filepath"
)

// FileInfo describes one discovered file.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner lists the direct children of a directory that carry one of the
// configured extensions. The scan is deliberately non-recursive.
type Scanner struct {
	dir        string
	extensions []string
}

// New creates a scanner over dir. With no extensions every file matches.
func New(dir string, extensions ...string) *Scanner {
	return &Scanner{
		dir:        dir,
		extensions: extensions,
	}
}

// Scan returns the matching files in directory order (lexicographic).
func (s *Scanner) Scan() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !s.isTargetFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, FileInfo{
			Path: filepath.Join(s.dir, entry.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

func (s *Scanner) isTargetFile(name string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
