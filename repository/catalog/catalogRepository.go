package catalogrepo

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Prakharbansall/Book-Hunt/model"

	"github.com/fsnotify/fsnotify"
)

// Repo is the only path to catalog state. It composes the persistent store
// (a JSON array file) with a process-wide cache that the store falls back
// to on read-only or ephemeral filesystems.
type Repo interface {
	// Load returns the current catalog. It never fails outward: a missing,
	// corrupt or unreadable store degrades to the cache, seeded with the
	// default catalog when empty.
	Load(ctx context.Context) []model.Book

	// Save replaces the cache and then attempts to persist. A persistence
	// failure is logged and swallowed, leaving the cache as the source of
	// truth until the next successful write.
	Save(ctx context.Context, books []model.Book)

	// Mutate runs fn over the loaded catalog and saves fn's result, all
	// under one lock acquisition so concurrent load-mutate-save sequences
	// cannot lose updates. When fn returns an error nothing is saved.
	Mutate(ctx context.Context, fn func(books []model.Book) ([]model.Book, error)) error

	// Count reports the cache size without touching the store.
	Count() int

	// Watch reloads the cache when the store file is rewritten outside
	// this process. Failure to set up the watcher is not fatal.
	Watch(ctx context.Context) error
}

type repo struct {
	path string
	log  *slog.Logger

	mu    sync.Mutex
	cache []model.Book
}

func New(path string, log *slog.Logger) Repo {
	return &repo{path: path, log: log}
}

func (r *repo) Load(ctx context.Context) []model.Book {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.loadLocked(ctx))
}

func (r *repo) Save(ctx context.Context, books []model.Book) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveLocked(ctx, books)
}

func (r *repo) Mutate(ctx context.Context, fn func(books []model.Book) ([]model.Book, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	books, err := fn(clone(r.loadLocked(ctx)))
	if err != nil {
		return err
	}
	r.saveLocked(ctx, books)
	return nil
}

func (r *repo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

// loadLocked reads and parses the store, mirroring it into the cache. Any
// failure falls back to the cache; an empty cache is seeded with defaults.
func (r *repo) loadLocked(ctx context.Context) []model.Book {
	raw, err := os.ReadFile(r.path)
	if err == nil {
		var books []model.Book
		if err = json.Unmarshal(raw, &books); err == nil {
			r.cache = books
			return r.cache
		}
	}
	if !os.IsNotExist(err) {
		r.log.WarnContext(ctx, "catalog store unreadable, serving cache", "path", r.path, "err", err)
	}
	if len(r.cache) == 0 {
		r.cache = model.DefaultCatalog()
	}
	return r.cache
}

// saveLocked applies the write-through contract: cache first, then a
// best-effort atomic file write with two-space indentation.
func (r *repo) saveLocked(ctx context.Context, books []model.Book) {
	r.cache = books

	raw, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		r.log.ErrorContext(ctx, "catalog encode failed, cache only", "err", err)
		return
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		r.log.WarnContext(ctx, "catalog store unwritable, cache only", "path", r.path, "err", err)
		return
	}
	if err := os.Rename(tmp, r.path); err != nil {
		r.log.WarnContext(ctx, "catalog store unwritable, cache only", "path", r.path, "err", err)
	}
}

func (r *repo) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: the file itself disappears across renames.
	if err := w.Add(filepath.Dir(r.path)); err != nil {
		_ = w.Close()
		return err
	}
	name := filepath.Base(r.path)
	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					// Our own saves land here too; reloading is idempotent.
					r.Load(ctx)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				r.log.WarnContext(ctx, "catalog watcher error", "err", err)
			}
		}
	}()
	return nil
}

func clone(books []model.Book) []model.Book {
	out := make([]model.Book, len(books))
	copy(out, books)
	return out
}
