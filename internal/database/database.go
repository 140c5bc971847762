package database

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"movie-catalog/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed schema.sql
var schemaSQL string

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
	logger *logrus.Logger
}

// New wraps an already opened connection pool.
func New(db *gorm.DB, cfg config.DatabaseConfig, log *logrus.Logger) *Database {
	return &Database{
		DB:     db,
		config: cfg,
		logger: log,
	}
}

// Initialize prepares the application database and returns its connection pool.
// It creates the database when missing, probes connectivity and applies the schema.
// Any failure is returned and the pool is left closed.
func Initialize(ctx context.Context, cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	if err := EnsureDatabase(ctx, cfg, log); err != nil {
		return nil, err
	}

	db, err := Connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.WithError(closeErr).Error("Error closing database connection")
		}
		return nil, err
	}

	return db, nil
}

// EnsureDatabase connects to the administrative database and creates the
// application database if it does not exist yet. The administrative pool is
// always closed before returning.
func EnsureDatabase(ctx context.Context, cfg config.DatabaseConfig, log *logrus.Logger) error {
	admin, err := open(cfg.DSN(cfg.AdminDBName), log)
	if err != nil {
		log.WithError(err).Error("Failed to connect to admin database")
		return fmt.Errorf("failed to connect to admin database %q: %w", cfg.AdminDBName, err)
	}

	sqlDB, err := admin.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.WithError(err).Warn("Error closing admin database connection")
		}
	}()

	created, err := createDatabaseIfNotExists(ctx, admin, cfg.DBName)
	if err != nil {
		log.WithError(err).WithField("database", cfg.DBName).Error("Error creating database")
		return err
	}
	if created {
		log.WithField("database", cfg.DBName).Info("Database created successfully")
	}

	return nil
}

func createDatabaseIfNotExists(ctx context.Context, admin *gorm.DB, name string) (bool, error) {
	var found int
	result := admin.WithContext(ctx).Raw("SELECT 1 FROM pg_database WHERE datname = ?", name).Scan(&found)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check database %q: %w", name, result.Error)
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	// CREATE DATABASE takes no bind parameters, the identifier is quoted instead.
	if err := admin.WithContext(ctx).Exec("CREATE DATABASE " + pgx.Identifier{name}.Sanitize()).Error; err != nil {
		return false, fmt.Errorf("failed to create database %q: %w", name, err)
	}
	return true, nil
}

// Connect opens the pooled connection to the application database and probes it once.
func Connect(ctx context.Context, cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	db, err := open(cfg.DSN(cfg.DBName), log)
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	database := New(db, cfg, log)
	if err := database.probe(ctx); err != nil {
		log.WithError(err).Error("Database connection failed")
		_ = sqlDB.Close()
		return nil, fmt.Errorf("unable to establish database connection: %w", err)
	}

	log.WithField("database", cfg.DBName).Info("Database connection successful")
	return database, nil
}

func (d *Database) probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var one int
	return d.DB.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}

// Migrate applies the schema as a single batch. Every statement is
// CREATE TABLE IF NOT EXISTS, so repeated runs are no-ops.
func (d *Database) Migrate(ctx context.Context) error {
	d.logger.Info("Initializing tables...")

	if err := d.DB.WithContext(ctx).Exec(schemaSQL).Error; err != nil {
		d.logger.WithError(err).Error("Error initializing tables")
		return fmt.Errorf("failed to initialize tables: %w", err)
	}

	d.logger.Info("Tables initialized successfully")
	return nil
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func open(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), gormConfig(log))
}

func gormConfig(log *logrus.Logger) *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Connectivity is probed explicitly so the result can be reported.
		DisableAutomaticPing: true,
	}
}
