// Package fs implements leadgen.LeadStore on top of per-owner JSON
// files with atomic update semantics.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/leadgen"
	"github.com/gofrs/flock"
)

// Ensure Store implements leadgen.LeadStore at compile time.
var _ leadgen.LeadStore = (*Store)(nil)

var ownerKeyRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Store persists lead collections as one JSON file per owner key under
// a base directory. Writes go to a temp file and are renamed into
// place, so readers never observe a partial file. A file lock guards
// against concurrent writers from other processes; unchanged
// collections are detected by content hash and skipped.
type Store struct {
	dir string

	mu     sync.Mutex
	hashes map[string]uint64
}

// NewStore creates a Store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, hashes: make(map[string]uint64)}, nil
}

func (s *Store) path(ownerKey string) string {
	return filepath.Join(s.dir, "leads_"+ownerKey+".json")
}

// Load reads the owner's lead collection. A missing file is an empty
// collection, not an error.
func (s *Store) Load(ctx context.Context, ownerKey string) ([]*leadgen.Lead, error) {
	if err := validateOwnerKey(ownerKey); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(ownerKey))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var leads []*leadgen.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, leadgen.Errorf(leadgen.EINTERNAL, "corrupt lead file for %q: %v", ownerKey, err)
	}
	return leads, nil
}

// Save writes the owner's lead collection, replacing the previous one.
// Saving an identical collection is a no-op.
func (s *Store) Save(ctx context.Context, ownerKey string, leads []*leadgen.Lead) error {
	if err := validateOwnerKey(ownerKey); err != nil {
		return err
	}
	for _, lead := range leads {
		if err := lead.Validate(); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return err
	}

	sum := xxhash.Sum64(data)
	s.mu.Lock()
	if prev, ok := s.hashes[ownerKey]; ok && prev == sum {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	lock := flock.New(s.path(ownerKey) + ".lock")
	locked, err := lock.TryLockContext(ctx, 10*time.Millisecond)
	if err != nil {
		return err
	}
	if !locked {
		return leadgen.Errorf(leadgen.ECONFLICT, "lead file for %q is locked by another process", ownerKey)
	}
	defer lock.Unlock()

	tmp := s.path(ownerKey) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(ownerKey)); err != nil {
		os.Remove(tmp)
		return err
	}

	s.mu.Lock()
	s.hashes[ownerKey] = sum
	s.mu.Unlock()
	return nil
}

func validateOwnerKey(ownerKey string) error {
	if !ownerKeyRe.MatchString(ownerKey) {
		return leadgen.Errorf(leadgen.EINVALID, "invalid owner key: %q", ownerKey)
	}
	return nil
}
