package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"time"

	"frontdesk/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection groups the handles the repositories read from and write to.
// Both point at the same pool.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the postgres pool when the postgres driver is selected. It returns
// nil for the in-memory driver so repositories fall back to process memory.
func New(config *config.Config) *Connection {
	if !config.UsePostgres() {
		log.Info().Str("driver", config.DB.Driver).Msg("Using in-memory record store")

		return nil
	}

	db := CreatePostgresConnection(
		config.DB.Postgres.Username,
		config.DB.Postgres.Password,
		config.DB.Postgres.Host,
		config.DB.Postgres.Port,
		getDBName(*config),
		config.DB.Postgres.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
	if db == nil {
		log.Fatal().Str("host", config.DB.Postgres.Host).Msg("Could not connect to database")
	}

	return &Connection{
		Read:  db,
		Write: db,
	}
}

// Close releases the pool.
func (c *Connection) Close() error {
	if c == nil || c.Write == nil {
		return nil
	}

	if err := c.Write.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Ping checks that the database answers.
func (c *Connection) Ping() error {
	if c == nil || c.Read == nil {
		return errors.New("database not connected")
	}

	return c.Read.Ping() //nolint:wrapcheck
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + config.DB.Postgres.Name
	}

	return config.DB.Postgres.Name
}

// DSN builds the connection string shared by the pool and the migrator.
func DSN(config *config.Config) string {
	return descriptor(
		config.DB.Postgres.Username,
		config.DB.Postgres.Password,
		config.DB.Postgres.Host,
		config.DB.Postgres.Port,
		getDBName(*config),
		config.DB.Postgres.SSLMode,
	)
}

func descriptor(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	dsn := descriptor(username, password, host, port, dbName, sslMode)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
