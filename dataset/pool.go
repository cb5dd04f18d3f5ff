package dataset

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/marcboeker/go-duckdb"
	_ "modernc.org/sqlite"
)

// Engine identifies the database engine backing a connection. Staged
// sources always use SQLite; DuckDB and MySQL cover analytical files and
// remote imports.
type Engine string

const (
	EngineSQLite Engine = "sqlite"
	EngineDuckDB Engine = "duckdb"
	EngineMySQL  Engine = "mysql"
)

// OpenOptions configures how a connection is opened. Path is the file
// path for file-based engines and the DSN for MySQL.
type OpenOptions struct {
	Engine     Engine
	Path       string
	ReadOnly   bool
	MaxRetries int
}

const defaultOpenRetries = 3

// openDB opens a connection with retry, absorbing transient file-lock
// contention on the staged SQLite files.
func openDB(logf func(string), opts OpenOptions) (*sql.DB, error) {
	eng := opts.Engine
	if eng == "" {
		eng = EngineSQLite
	}
	retries := opts.MaxRetries
	if retries <= 0 {
		retries = defaultOpenRetries
	}

	var driver, dsn string
	switch eng {
	case EngineSQLite:
		driver, dsn = "sqlite", opts.Path
		if opts.ReadOnly {
			dsn = "file:" + opts.Path + "?mode=ro"
		}
	case EngineDuckDB:
		driver, dsn = "duckdb", opts.Path
		if opts.ReadOnly {
			dsn = opts.Path + "?access_mode=READ_ONLY"
		}
	case EngineMySQL:
		driver, dsn = "mysql", opts.Path
	default:
		return nil, fmt.Errorf("unsupported database engine: %s", eng)
	}

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		db, err := sql.Open(driver, dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				db.SetMaxOpenConns(1)
				return db, nil
			}
			db.Close()
		}
		lastErr = err
		if logf != nil {
			logf(fmt.Sprintf("open %s %s failed (attempt %d/%d): %v", eng, opts.Path, attempt+1, retries, err))
		}
		time.Sleep(time.Duration(100*(attempt+1)) * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to open %s database after %d attempts: %w", eng, retries, lastErr)
}

// quoteIdent quotes a SQL identifier for the given engine. SQLite and
// DuckDB use double quotes, MySQL uses backticks; embedded quotes are
// doubled.
func quoteIdent(eng Engine, name string) string {
	if eng == EngineMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// listTablesQuery returns the SQL listing user tables for the engine.
func listTablesQuery(eng Engine) string {
	switch eng {
	case EngineDuckDB:
		return "SELECT table_name FROM information_schema.tables WHERE table_schema = 'main'"
	case EngineMySQL:
		return "SHOW TABLES"
	default:
		return "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'"
	}
}
