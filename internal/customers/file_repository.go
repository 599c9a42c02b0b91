package customers

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/recordkeeper/internal/storage"
)

const schemaVersion = 1

type envelope struct {
	Version int        `json:"version"`
	Records []Customer `json:"records"`
}

// FileRepository keeps the customer collection in one JSON document managed
// by the persistence adapter.
type FileRepository struct {
	store *storage.Store
	name  string
}

func NewFileRepository(store *storage.Store, name string) *FileRepository {
	return &FileRepository{store: store, name: name}
}

// FilePath returns the location of the underlying store file.
func (r *FileRepository) FilePath() string {
	return r.store.Path(r.name)
}

// LoadAll reads the customer store, accepting the current envelope form and
// the legacy bare-array form (version 0). Anything else degrades to an
// empty collection.
func (r *FileRepository) LoadAll(ctx context.Context) []Customer {
	raw := storage.Load[json.RawMessage](ctx, r.store, r.name)
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '[' {
		var legacy []Customer
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return nil
		}
		return legacy
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil
	}
	return env.Records
}

func (r *FileRepository) SaveAll(ctx context.Context, records []Customer) error {
	return r.store.Save(ctx, r.name, envelope{Version: schemaVersion, Records: records})
}
