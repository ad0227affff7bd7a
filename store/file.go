package store

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/hanscan/hanscan"
)

// FileStore persists the translation mapping as a pretty-printed UTF-8 JSON
// object, keeping the previous version in a .backup sibling file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given JSON file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the mapping file path.
func (s *FileStore) Path() string {
	return s.path
}

// BackupPath returns the path of the backup sibling file.
func (s *FileStore) BackupPath() string {
	return s.path + ".backup"
}

// Load reads the persisted mapping. On a parse error or missing file it
// falls back to the backup file; if both fail it returns an empty mapping.
// Load never fails.
func (s *FileStore) Load() map[string]string {
	if m, err := readMapping(s.path); err == nil {
		return Filter(m)
	}
	if m, err := readMapping(s.BackupPath()); err == nil {
		return Filter(m)
	}
	return map[string]string{}
}

// Save persists the mapping. The previous file is copied to the backup path
// first, entries with blank keys or values are filtered out, and the write
// goes through a temp file renamed into place so concurrent readers never
// observe a partial JSON document. The written file is verified to be
// non-empty.
func (s *FileStore) Save(mapping map[string]string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &hanscan.StoreError{Message: "creating cache directory", Cause: err}
		}
	}

	if _, err := os.Stat(s.path); err == nil {
		if err := copyFile(s.path, s.BackupPath()); err != nil {
			return &hanscan.StoreError{Message: "creating backup", Cause: err}
		}
	}

	valid := Filter(mapping)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(valid); err != nil {
		return &hanscan.StoreError{Message: "encoding mapping", Cause: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return &hanscan.StoreError{Message: "writing mapping", Cause: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &hanscan.StoreError{Message: "replacing mapping file", Cause: err}
	}

	info, err := os.Stat(s.path)
	if err != nil || info.Size() == 0 {
		return &hanscan.StoreError{Message: "verifying written mapping", Cause: err}
	}
	return nil
}

// Unmapped returns the words not present in the persisted mapping.
func (s *FileStore) Unmapped(words []string) []string {
	return Unmapped(s.Load(), words)
}

// Add merges delta into the persisted mapping and saves it. Blank and
// identity entries in the delta are dropped. Returns the number of entries
// applied.
func (s *FileStore) Add(delta map[string]string) (int, error) {
	current := s.Load()
	applied := Merge(current, delta)
	if applied == 0 {
		return 0, nil
	}
	return applied, s.Save(current)
}

func readMapping(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - store path is caller-provided
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 - store path is caller-provided
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst) // #nosec G304 - store path is caller-provided
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// Verify FileStore implements MappingStore
var _ MappingStore = (*FileStore)(nil)
