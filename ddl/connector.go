package ddl

import (
	"database/sql"
	"net/url"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
)

// DatabaseConnector handles database connections for DB-backed catalogs
type DatabaseConnector struct {
	poolSettings ConnectionPoolSettings
}

// ConnectionPoolSettings defines database connection pool configuration
type ConnectionPoolSettings struct {
	MaxOpenConns    int // Maximum number of open connections
	MaxIdleConns    int // Maximum number of idle connections
	ConnMaxLifetime int // Maximum lifetime of connections in seconds
}

// NewDatabaseConnector creates a new database connector with default settings
func NewDatabaseConnector() *DatabaseConnector {
	return &DatabaseConnector{
		poolSettings: ConnectionPoolSettings{
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 300, // 5 minutes
		},
	}
}

// SetPoolSettings configures connection pool settings
func (c *DatabaseConnector) SetPoolSettings(settings ConnectionPoolSettings) {
	c.poolSettings = settings
}

// ParseDatabaseURL extracts the database type from a connection URL
func (c *DatabaseConnector) ParseDatabaseURL(databaseURL string) (string, error) {
	if databaseURL == "" {
		return "", ErrEmptyDatabaseURL
	}

	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", ErrInvalidDatabaseURL
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		return "postgresql", nil
	case "mysql":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite", nil
	default:
		return "", ErrUnsupportedDatabase
	}
}

// Connect establishes a database connection for the given URL
func (c *DatabaseConnector) Connect(databaseURL string) (*sql.DB, string, error) {
	dbType, err := c.ParseDatabaseURL(databaseURL)
	if err != nil {
		return nil, "", err
	}

	connStr, err := c.driverString(databaseURL, dbType)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(driverName(dbType), connStr)
	if err != nil {
		return nil, "", ErrConnectionFailed
	}

	db.SetMaxOpenConns(c.poolSettings.MaxOpenConns)
	db.SetMaxIdleConns(c.poolSettings.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(c.poolSettings.ConnMaxLifetime) * time.Second)

	return db, dbType, nil
}

// NewCatalog creates the engine-specific catalog for an open connection
func NewCatalog(db *sql.DB, databaseType string) (Catalog, error) {
	switch strings.ToLower(databaseType) {
	case "postgresql", "postgres":
		return NewPostgreSQLCatalog(db), nil
	case "mysql":
		return NewMySQLCatalog(db), nil
	case "sqlite", "sqlite3":
		return NewSQLiteCatalog(db), nil
	default:
		return nil, ErrUnsupportedDatabase
	}
}

// OpenCatalog is a convenience that connects to a database URL and wraps the
// connection in its engine-specific catalog. The caller owns the *sql.DB.
func OpenCatalog(databaseURL string) (Catalog, *sql.DB, error) {
	connector := NewDatabaseConnector()
	db, dbType, err := connector.Connect(databaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, ErrConnectionFailed
	}
	catalog, err := NewCatalog(db, dbType)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return catalog, db, nil
}

// driverString converts a URL to the driver-specific connection string
func (c *DatabaseConnector) driverString(databaseURL, dbType string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", ErrInvalidDatabaseURL
	}

	switch dbType {
	case "postgresql":
		// pgx accepts standard PostgreSQL URLs
		return databaseURL, nil

	case "mysql":
		// Convert to go-sql-driver/mysql format: user:pass@tcp(host:port)/db
		connStr := ""
		if u.User != nil {
			connStr += u.User.Username()
			if password, ok := u.User.Password(); ok {
				connStr += ":" + password
			}
			connStr += "@"
		}
		if u.Host != "" {
			connStr += "tcp(" + u.Host + ")"
		}
		connStr += "/" + strings.TrimPrefix(u.Path, "/")
		return connStr, nil

	case "sqlite":
		// SQLite uses the file path directly
		if u.Host == "" {
			return u.Path, nil
		}
		return u.Host + u.Path, nil

	default:
		return "", ErrUnsupportedDatabase
	}
}

func driverName(dbType string) string {
	switch dbType {
	case "postgresql":
		return "pgx"
	case "mysql":
		return "mysql"
	case "sqlite":
		return "sqlite3"
	default:
		return ""
	}
}
