package profile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultFileName is the save file name inside the data directory
const DefaultFileName = "munchiesPlayerData.json"

// FileStore persists a profile as a JSON document on disk
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the profile, merging saved fields over defaults
// A missing file yields defaults with no error; a malformed file yields defaults and the decode error
func (s *FileStore) Load() (Profile, error) {
	p := Default()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, errors.Wrapf(err, "read profile %s", s.path)
	}

	merged := Default()
	if err := json.Unmarshal(data, &merged); err != nil {
		return p, errors.Wrapf(err, "decode profile %s", s.path)
	}
	if merged.UnlockedHats == nil {
		merged.UnlockedHats = []string{}
	}
	if merged.CustomLevels == nil {
		merged.CustomLevels = []CustomLevel{}
	}
	return merged, nil
}

// Save writes the profile atomically via a temp file rename
func (s *FileStore) Save(p Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode profile")
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create profile dir %s", dir)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "write profile %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, "replace profile %s", s.path)
	}
	return nil
}
