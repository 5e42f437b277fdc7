package persistence

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations
var migrations embed.FS

// Dialect selects the storage engine behind the gateway.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

var ErrUnknownDialect = errors.New("unknown database dialect")

// Options describe a database connection.
type Options struct {
	Dialect Dialect
	// DSN is a file path or sqlite URI for DialectSQLite and a libpq
	// connection string for DialectPostgres.
	DSN string
	// LogLevel controls GORM's SQL logging. Zero means silent.
	LogLevel logger.LogLevel
}

// Open connects to the database. Driver errors for unique and foreign key
// violations are translated to gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated where the driver supports it.
func Open(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Dialect {
	case DialectSQLite:
		dialector = sqlite.Open(opts.DSN)
	case DialectPostgres:
		dialector = postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        opts.DSN,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, opts.Dialect)
	}

	level := opts.LogLevel
	if level == 0 {
		level = logger.Silent
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Dialect, err)
	}

	return db, nil
}

// SQLiteFileDSN returns a DSN for a database file with foreign keys enforced
// on every pooled connection.
func SQLiteFileDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

// SQLiteMemoryDSN returns a DSN for a named in-memory database shared by
// the connections of one pool.
func SQLiteMemoryDSN(name string) string {
	return "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on"
}

// Migrate applies the embedded goose migrations of the dialect.
func Migrate(ctx context.Context, db *gorm.DB, dialect Dialect) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	var gooseDialect goose.Dialect
	switch dialect {
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	dir, err := fs.Sub(migrations, "migrations/"+string(dialect))
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(gooseDialect, sqlDB, dir)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}
	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up error: %w", err)
	}

	return nil
}
