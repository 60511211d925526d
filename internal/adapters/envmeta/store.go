// Package envmeta persists per-environment bookkeeping as JSON files.
package envmeta

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/zerr"
)

// Record is the content of one metadata file.
type Record struct {
	DependencyHash string `json:"dependency_hash,omitempty"`
}

// Store implements ports.EnvMetadataStore with one file per environment.
type Store struct {
	root string
}

// NewStore creates a Store keeping its files under the metadata directory of dataDir.
func NewStore(dataDir string) *Store {
	return &Store{root: domain.MetadataDir(dataDir)}
}

// DependencyHash returns the recorded dependency hash, or "" when nothing was recorded.
func (s *Store) DependencyHash(project *domain.Project, env ports.Environment) (string, error) {
	record, err := s.read(s.Path(project, env))
	if err != nil {
		return "", err
	}
	return record.DependencyHash, nil
}

// UpdateDependencyHash records hash for the environment.
func (s *Store) UpdateDependencyHash(project *domain.Project, env ports.Environment, hash string) error {
	path := s.Path(project, env)

	record, err := s.read(path)
	if err != nil {
		return err
	}
	record.DependencyHash = hash

	return write(path, record)
}

// Reset removes the metadata of the environment.
func (s *Store) Reset(project *domain.Project, env ports.Environment) error {
	if err := os.Remove(s.Path(project, env)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error())
	}
	return nil
}

// Path returns the metadata file of env.
//
// Internal environments that skip project installation are shared by all projects.
func (s *Store) Path(project *domain.Project, env ports.Environment) string {
	if _, ok := env.(ports.InternalEnvironment); ok && env.Config().SkipInstall {
		return filepath.Join(s.root, domain.InternalDirName, env.Name()+".json")
	}
	return filepath.Join(s.root, domain.ProjectID(project.Root), env.Type(), env.Name()+".json")
}

func (s *Store) read(path string) (Record, error) {
	var record Record

	//nolint:gosec // path is built from the data directory and environment identity
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return record, nil
	}
	if err != nil {
		return record, zerr.Wrap(err, domain.ErrMetadataReadFailed.Error())
	}

	if err := json.Unmarshal(data, &record); err != nil {
		return record, zerr.With(zerr.Wrap(err, domain.ErrMetadataUnmarshalFailed.Error()), "path", path)
	}
	return record, nil
}

func write(path string, record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return zerr.Wrap(err, domain.ErrMetadataMarshalFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, "metadata-*.json")
	if err != nil {
		return zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error())
	}
	tmpName := tmp.Name()
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error())
	}

	// Atomic rename
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error())
	}
	return nil
}

var _ ports.EnvMetadataStore = (*Store)(nil)
