// internal/app/store/catalog/store.go
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Krill-lover/welccom/internal/app/store/jsonfile"
	"github.com/Krill-lover/welccom/internal/domain/models"
	"go.uber.org/zap"
)

// ErrNotFound is returned by Get when no material has the requested id.
var ErrNotFound = errors.New("material not found")

// AssetRemover deletes a stored attachment by asset name. The media store
// satisfies it; tests substitute a fake.
type AssetRemover interface {
	Remove(name string) error
}

// Store persists the material catalog as a single id-keyed JSON document.
//
// Every read loads the file fresh and every write rewrites it wholesale
// (temp file + rename), so the catalog reflects the latest successful
// write immediately, within the process and across restarts. The mutex
// keeps concurrent handlers for different users from interleaving a
// read-modify-write cycle.
type Store struct {
	mu     sync.Mutex
	path   string
	assets AssetRemover
	log    *zap.Logger
}

// New returns a Store over the given JSON file path.
func New(path string, assets AssetRemover, logger *zap.Logger) *Store {
	return &Store{path: path, assets: assets, log: logger}
}

// All returns the full catalog snapshot keyed by material id.
// A missing file is an empty catalog, not an error.
func (s *Store) All() (map[string]models.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the material with the given id, or ErrNotFound.
func (s *Store) Get(id string) (models.Material, error) {
	all, err := s.All()
	if err != nil {
		return models.Material{}, err
	}
	m, ok := all[id]
	if !ok {
		return models.Material{}, ErrNotFound
	}
	return m, nil
}

// Add inserts or overwrites a material by id. On write failure the
// material must be treated as not saved; the caller reports or retries.
func (s *Store) Add(m models.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	all[m.ID] = m
	if err := s.save(all); err != nil {
		return err
	}
	s.log.Info("material added",
		zap.String("id", m.ID),
		zap.String("subject", m.Subject),
		zap.String("title", m.Title))
	return nil
}

// Delete removes the material and best-effort deletes its stored asset.
// Deleting an absent id returns (false, nil): not found, not an error.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return false, err
	}
	m, ok := all[id]
	if !ok {
		return false, nil
	}
	delete(all, id)
	if err := s.save(all); err != nil {
		return false, err
	}
	if m.HasFile() {
		if err := s.assets.Remove(m.FilePath); err != nil {
			s.log.Warn("failed to delete material asset",
				zap.String("id", id),
				zap.String("file_path", m.FilePath),
				zap.Error(err))
		}
	}
	s.log.Info("material deleted", zap.String("id", id), zap.String("title", m.Title))
	return true, nil
}

// BySubjectAndGroup filters by subject and group. The sentinel group
// models.GroupAll matches every group for the subject.
func (s *Store) BySubjectAndGroup(subject, group string) ([]models.Material, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	var out []models.Material
	for _, m := range all {
		if m.Subject != subject {
			continue
		}
		if group == models.GroupAll || m.Group == group {
			out = append(out, m)
		}
	}
	sortRecent(out)
	return out, nil
}

// BySubjectAndType filters by exact subject and material type.
func (s *Store) BySubjectAndType(subject, materialType string) ([]models.Material, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	var out []models.Material
	for _, m := range all {
		if m.Subject == subject && m.MaterialType == materialType {
			out = append(out, m)
		}
	}
	sortRecent(out)
	return out, nil
}

// Recent returns up to limit materials, newest date first. Only the date
// is stored, so ordering within a day falls back to id for stability.
func (s *Store) Recent(limit int) ([]models.Material, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Material, 0, len(all))
	for _, m := range all {
		out = append(out, m)
	}
	sortRecent(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortRecent(ms []models.Material) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].DateAdded != ms[j].DateAdded {
			return ms[i].DateAdded > ms[j].DateAdded
		}
		return ms[i].ID < ms[j].ID
	})
}

// load reads the catalog file. Callers must hold s.mu.
func (s *Store) load() (map[string]models.Material, error) {
	all := map[string]models.Material{}
	if err := jsonfile.Read(s.path, &all); err != nil {
		if jsonfile.IsNotExist(err) {
			return map[string]models.Material{}, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return all, nil
}

// save rewrites the whole catalog file atomically. Callers must hold s.mu.
func (s *Store) save(all map[string]models.Material) error {
	if err := jsonfile.Write(s.path, all); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
