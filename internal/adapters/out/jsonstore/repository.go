package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"
	"universestore/internal/pkg/errs"
)

// Repository is the file-backed order store. The whole collection lives in
// one JSON document; every append loads the existing set, adds one record,
// and atomically replaces the file.
//
// A mutex serializes the load-append-rewrite sequence so two concurrent
// appends cannot each read a stale set and overwrite the other's record.
// Reads take the same mutex so they never interleave with an in-progress
// rewrite. The store is designed for a single process, single logical writer.
type Repository struct {
	path string
	mu   sync.Mutex
}

// NewRepository creates a repository backed by the JSON document at path.
// The file does not need to exist yet; the first append creates it.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	return &Repository{path: path}, nil
}

// Load returns all persisted orders in insertion order. An absent file yields
// an empty slice. An unreadable or unparsable file yields a StorageError —
// existing data is never masked by an empty result.
func (r *Repository) Load(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.loadDTOs()
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, errs.NewStorageError(r.path, restoreErr)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Append durably adds one order. The full existing set is loaded, extended,
// and rewritten to a temporary file that is renamed over the target, so a
// crash mid-write never leaves a partially written document behind.
// Appending a duplicate order number is rejected.
func (r *Repository) Append(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dtos, err := r.loadDTOs()
	if err != nil {
		return err
	}

	number := aggregate.Number().String()
	for _, dto := range dtos {
		if dto.OrderNum == number {
			return errs.NewValueIsInvalidErrorWithCause("orderNumber",
				fmt.Errorf("order %s already exists in the store", number))
		}
	}

	return r.writeAll(append(dtos, fromDomain(aggregate)))
}

// Get retrieves a single order by its number.
// Returns an ObjectNotFoundError when no such order exists.
func (r *Repository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	orders, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.Number().IsEqual(number) {
			return o, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("orderNumber", number.String())
}

// loadDTOs reads the raw stored records. Callers must hold the mutex.
func (r *Repository) loadDTOs() ([]orderDTO, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []orderDTO{}, nil
		}
		return nil, errs.NewStorageError(r.path, err)
	}

	var dtos []orderDTO
	if err = json.Unmarshal(data, &dtos); err != nil {
		return nil, errs.NewStorageError(r.path, err)
	}

	return dtos, nil
}

// writeAll replaces the whole document atomically: the new content goes to a
// temporary file in the same directory, is synced, and renamed over the
// target. Callers must hold the mutex.
func (r *Repository) writeAll(dtos []orderDTO) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dtos); err != nil {
		return errs.NewStorageError(r.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".orders-*.json")
	if err != nil {
		return errs.NewStorageError(r.path, err)
	}

	if err = writeAndClose(tmp, buf.Bytes()); err != nil {
		_ = os.Remove(tmp.Name())
		return errs.NewStorageError(r.path, err)
	}

	if err = os.Rename(tmp.Name(), r.path); err != nil {
		_ = os.Remove(tmp.Name())
		return errs.NewStorageError(r.path, err)
	}

	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
