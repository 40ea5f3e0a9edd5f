// Package cas stores the input fingerprint each rendered output was produced from.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.RenderInfoStore using a file-per-output strategy.
type Store struct {
	dir string
}

// NewStore creates a new RenderInfoStore below root/.scaffold/store.
func NewStore(root string) *Store {
	return &Store{dir: filepath.Join(root, domain.DefaultStorePath())}
}

// Get retrieves the render info for a given output path.
func (s *Store) Get(output string) (*domain.RenderInfo, error) {
	filename := s.filename(output)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "output", output)
	}

	var info domain.RenderInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "output", output)
	}

	return &info, nil
}

// Put stores the render info.
func (s *Store) Put(info domain.RenderInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", s.dir)
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(s.filename(info.Output), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "output", info.Output)
	}

	return nil
}

func (s *Store) filename(output string) string {
	hash := sha256.Sum256([]byte(filepath.Clean(output)))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}
