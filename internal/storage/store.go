// Package storage implements the persistence adapter: whole-collection
// load/save of JSON documents in a data directory. A missing or unreadable
// store degrades to an empty collection, and saves are atomic from the
// reader's perspective (write to a temp file, then rename over the target).
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
)

// Store reads and writes named JSON documents inside a single data
// directory.
type Store struct {
	dir string
	log logging.Logger
}

// NewStore creates the data directory if needed and returns a store rooted
// there.
func NewStore(dir string, log logging.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Path returns the absolute location of a named document. Exposed so that
// callers such as the snapshot uploader can reach the raw files.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads the named document and decodes it into a value of type T.
// A missing file or a decode failure yields the zero value, so callers
// start from an empty collection; read failures never escape this boundary.
func Load[T any](ctx context.Context, s *Store, name string) T {
	var out T

	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn(ctx, "store unreadable, starting empty", "store", name, "error", err)
		}
		return out
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		s.log.Warn(ctx, "store corrupt, starting empty", "store", name, "error", err)
		return out
	}
	return decoded
}

// Save writes v as indented JSON. The document is first written to a
// uniquely named temp file in the same directory and then renamed over the
// target, so concurrent readers observe either the previous version or the
// new one in full. On failure the previous file state is left in place and
// the returned error matches common.ErrorPersistence.
func (s *Store) Save(ctx context.Context, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Error(ctx, "marshalling store", "store", name, "error", err)
		return fmt.Errorf("marshal %s: %w", name, common.ErrorPersistence)
	}

	tmp := s.Path(fmt.Sprintf("%s.%s.tmp", name, uuid.NewString()))
	if err := s.writeFile(tmp, data); err != nil {
		s.log.Error(ctx, "writing store", "store", name, "error", err)
		return fmt.Errorf("write %s: %w", name, common.ErrorPersistence)
	}

	if err := os.Rename(tmp, s.Path(name)); err != nil {
		_ = os.Remove(tmp)
		s.log.Error(ctx, "replacing store", "store", name, "error", err)
		return fmt.Errorf("replace %s: %w", name, common.ErrorPersistence)
	}
	return nil
}

func (s *Store) writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
