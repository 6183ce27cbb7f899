package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/pryank18/ArchaeologyWala/pkg/storage"
)

type kvModel struct {
	bun.BaseModel `bun:"table:wala_kv,alias:kv"`

	Key       string    `bun:"key,pk"`
	Value     []byte    `bun:"value"`
	UpdatedAt time.Time `bun:"updated_at"`
}

// BunProvider persists key-value entries in a single sqlite table through
// Bun. One row per key; values are the serialized entity payloads.
type BunProvider struct {
	db  *bun.DB
	now func() time.Time
}

var (
	_ storage.Provider           = (*BunProvider)(nil)
	_ storage.CapabilityReporter = (*BunProvider)(nil)
)

// OpenSQLite opens (or creates) the sqlite database at dsn and returns a
// ready provider with its schema ensured.
func OpenSQLite(ctx context.Context, dsn string) (*BunProvider, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("store: sqlite dsn is required")
	}
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	provider := NewBunProvider(bun.NewDB(sqldb, sqlitedialect.New()))
	if err := provider.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return provider, nil
}

// NewBunProvider wraps an existing Bun database handle.
func NewBunProvider(db *bun.DB) *BunProvider {
	return &BunProvider{db: db, now: time.Now}
}

// Close releases the underlying database handle.
func (p *BunProvider) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

// EnsureSchema creates the key-value table when it does not exist yet.
func (p *BunProvider) EnsureSchema(ctx context.Context) error {
	if p.db == nil {
		return errors.New("store: bun provider requires a database")
	}
	_, err := p.db.NewCreateTable().Model((*kvModel)(nil)).IfNotExists().Exec(ctx)
	return err
}

// Get returns the stored payload for key.
func (p *BunProvider) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if p.db == nil {
		return nil, false, errors.New("store: bun provider requires a database")
	}
	var model kvModel
	if err := p.db.NewSelect().Model(&model).Where("key = ?", key).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return model.Value, true, nil
}

// Set upserts the payload for key.
func (p *BunProvider) Set(ctx context.Context, key string, value []byte) error {
	if p.db == nil {
		return errors.New("store: bun provider requires a database")
	}
	model := kvModel{
		Key:       key,
		Value:     value,
		UpdatedAt: p.now().UTC(),
	}
	_, err := p.db.NewInsert().
		Model(&model).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// Delete removes the row for key. Absent keys are not an error.
func (p *BunProvider) Delete(ctx context.Context, key string) error {
	if p.db == nil {
		return errors.New("store: bun provider requires a database")
	}
	_, err := p.db.NewDelete().Model((*kvModel)(nil)).Where("key = ?", key).Exec(ctx)
	return err
}

// Keys lists stored keys with the supplied prefix in lexical order.
func (p *BunProvider) Keys(ctx context.Context, prefix string) ([]string, error) {
	if p.db == nil {
		return nil, errors.New("store: bun provider requires a database")
	}
	var keys []string
	err := p.db.NewSelect().
		Model((*kvModel)(nil)).
		Column("key").
		Where("key LIKE ?", prefix+"%").
		Order("key ASC").
		Scan(ctx, &keys)
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Capabilities reports the provider as durable.
func (p *BunProvider) Capabilities() storage.Capabilities {
	return storage.Capabilities{Durable: true}
}
