package store

import (
	"context"
	"database/sql"
	errs "errors"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/drpriyanshi/companion-tui/internal/util"
)

var ErrNoChange = errs.New("no change")

// The four named document slots. Everything the app persists lives in one
// of these as a single JSON blob.
const (
	KeyUserProfile  = "user_profile"
	KeyChatMessages = "chat_messages"
	KeyHealthData   = "health_data"
	KeyAppState     = "app_state"
)

// AllKeys lists every slot, in clear-all order.
var AllKeys = []string{KeyUserProfile, KeyChatMessages, KeyHealthData, KeyAppState}

// Documents is the storage port: get/set/delete of whole JSON documents by
// name. Implementations make no atomicity promise across concurrent
// writers; the app runs a single event loop.
type Documents interface {
	Get(ctx context.Context, key string) (raw string, ok bool, err error)
	Set(ctx context.Context, key, raw string) error
	Delete(ctx context.Context, key string) error
	Reset(ctx context.Context) error
}

// DB wraps gorm.DB for the documents table and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error   { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// IsPostgresDSN reports whether the DSN targets postgres rather than the
// default local sqlite file.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Open connects to the database per config. A postgres:// DSN uses the
// postgres driver; anything else is treated as a sqlite file path.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("missing DSN")
	}
	var dial gorm.Dialector
	if IsPostgresDSN(cfg.DSN) {
		dial = postgres.Open(cfg.DSN)
	} else {
		dial = sqlite.Open(cfg.DSN)
	}
	gdb, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}
