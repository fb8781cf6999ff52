// Package services provides the data-directory lookups backing the UI.
package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"datalens/domain/core"
)

// SourceFile is one selectable file in the data directory.
type SourceFile struct {
	Name        string `json:"name"`         // file name with extension
	DisplayName string `json:"display_name"` // base name without extension
	Path        string `json:"-"`
	Size        int64  `json:"size"`
}

// DataService discovers selectable source files under a data directory.
type DataService struct {
	dataDir string
}

func NewDataService(dataDir string) *DataService {
	return &DataService{dataDir: dataDir}
}

// ListSourceFiles returns the tabular files in the data directory, sorted by
// name. Only .csv and .xlsx files are offered.
func (s *DataService) ListSourceFiles() ([]SourceFile, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, err
	}

	var files []SourceFile
	for _, entry := range entries {
		if entry.IsDir() || !supportedExt(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, SourceFile{
			Name:        entry.Name(),
			DisplayName: strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Path:        filepath.Join(s.dataDir, entry.Name()),
			Size:        info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Resolve maps a bare file name back to its path inside the data directory.
// Names carrying path separators or unsupported extensions are rejected so
// requests cannot escape the data directory.
func (s *DataService) Resolve(name string) (string, error) {
	if name != filepath.Base(name) || !supportedExt(name) {
		return "", core.NewSourceNotFoundError(name)
	}
	path := filepath.Join(s.dataDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", core.NewSourceNotFoundError(name)
	}
	return path, nil
}

func supportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}
