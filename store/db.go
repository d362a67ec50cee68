package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultMongoDatabase = "grocery_platform"

// Backend names reported by DB.Backend.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Options tunes Open.
type Options struct {
	// LogLevel is the gorm log level: silent, error, warn or info.
	LogLevel       string
	ConnectTimeout time.Duration
	Logger         *zap.Logger
}

// DB is an explicitly opened storage client. The caller owns it and must Close it.
type DB struct {
	backend string

	sql    *gorm.DB
	client *mongo.Client
	mongo  *mongo.Database
}

// Open connects to the backend selected by the URL scheme.
func Open(ctx context.Context, rawURL string, opts Options) (*DB, error) {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	switch {
	case strings.HasPrefix(rawURL, "mongodb://"), strings.HasPrefix(rawURL, "mongodb+srv://"):
		return openMongo(ctx, rawURL, opts)
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return openGorm(postgres.New(postgres.Config{
			DSN:                  rawURL,
			PreferSimpleProtocol: true,
		}), BackendPostgres, opts)
	default:
		return openGorm(sqlite.Open(sqlitePath(rawURL)), BackendSQLite, opts)
	}
}

func sqlitePath(rawURL string) string {
	path := strings.TrimPrefix(rawURL, "sqlite://")
	if path == "" {
		return ":memory:"
	}
	return path
}

// mongoDatabase returns the database named in the URL path, or the default.
func mongoDatabase(rawURL string) (string, error) {
	cs, err := connstring.ParseAndValidate(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse mongo url: %w", err)
	}
	if cs.Database == "" {
		return defaultMongoDatabase, nil
	}
	return cs.Database, nil
}

func openMongo(ctx context.Context, rawURL string, opts Options) (*DB, error) {
	name, err := mongoDatabase(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(rawURL))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	opts.Logger.Info("Database connected", zap.String("backend", BackendMongo), zap.String("database", name))
	return &DB{backend: BackendMongo, client: client, mongo: client.Database(name)}, nil
}

func openGorm(dialector gorm.Dialector, backend string, opts Options) (*DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(opts.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", backend, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", backend, err)
	}
	if backend == BackendSQLite {
		// sqlite serializes writers; one connection also keeps :memory: databases shared.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	opts.Logger.Info("Database connected", zap.String("backend", backend))
	return &DB{backend: backend, sql: db}, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Backend reports which backend the client talks to.
func (d *DB) Backend() string {
	return d.backend
}

// Close releases the underlying connections.
func (d *DB) Close(ctx context.Context) error {
	if d.client != nil {
		return d.client.Disconnect(ctx)
	}
	if d.sql != nil {
		sqlDB, err := d.sql.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return errors.New("store: close of unopened DB")
}
