// Package store persists beam projects in an embedded BadgerDB.
//
// Keys are "project/<id>" and values are JSON-encoded projects. The store is
// safe for concurrent use; it owns the database and closes it on Close.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/alexiusacademia/gobeam/internal/project"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a project id has no entry
var ErrNotFound = errors.New("project not found")

const keyPrefix = "project/"

// Config holds configuration for the project database
type Config struct {
	// Path is the directory for database files. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM, for tests
	InMemory bool

	// SyncWrites makes every write durable before returning
	SyncWrites bool

	// Logger receives BadgerDB's internal logs. Nil disables them.
	Logger *slog.Logger
}

// DefaultConfig returns a durable on-disk configuration rooted at path
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Store is a project repository
type Store struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens (creating if needed) the project database
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database
func (s *Store) Close() error {
	return s.db.Close()
}

func key(id string) []byte {
	return []byte(keyPrefix + id)
}

// Save inserts or replaces a project. A project without an id gets a new
// uuid and CreatedAt; UpdatedAt is always refreshed. The saved copy is
// returned.
func (s *Store) Save(ctx context.Context, p project.Project) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}

	now := s.now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	} else if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	data, err := json.Marshal(p)
	if err != nil {
		return project.Project{}, fmt.Errorf("encode project %s: %w", p.ID, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(p.ID), data)
	})
	if err != nil {
		return project.Project{}, fmt.Errorf("save project %s: %w", p.ID, err)
	}
	return p, nil
}

// Get loads a project by id
func (s *Store) Get(ctx context.Context, id string) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}

	var p project.Project
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// List returns all projects ordered by name, then id
func (s *Store) List(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var p project.Project
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a project by id
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, id)
			}
			return err
		}
		return txn.Delete(key(id))
	})
}
