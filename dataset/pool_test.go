package dataset

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestQuoteIdent(t *testing.T) {
	tests := []struct {
		eng  Engine
		name string
		want string
	}{
		{EngineSQLite, "sales", `"sales"`},
		{EngineDuckDB, "sales", `"sales"`},
		{EngineMySQL, "sales", "`sales`"},
		{EngineSQLite, `ord"ers`, `"ord""ers"`},
		{EngineMySQL, "ord`ers", "`ord``ers`"},
	}
	for _, tt := range tests {
		if got := quoteIdent(tt.eng, tt.name); got != tt.want {
			t.Errorf("quoteIdent(%s, %q) = %s, want %s", tt.eng, tt.name, got, tt.want)
		}
	}
}

func TestListTablesQuery(t *testing.T) {
	if q := listTablesQuery(EngineDuckDB); !strings.Contains(q, "information_schema") {
		t.Errorf("duckdb query should use information_schema, got %q", q)
	}
	if q := listTablesQuery(EngineMySQL); q != "SHOW TABLES" {
		t.Errorf("mysql query = %q", q)
	}
	if q := listTablesQuery(EngineSQLite); !strings.Contains(q, "sqlite_master") {
		t.Errorf("sqlite query should use sqlite_master, got %q", q)
	}
}

func TestOpenDBUnknownEngine(t *testing.T) {
	_, err := openDB(nil, OpenOptions{Engine: Engine("oracle"), Path: "x"})
	if err == nil || !strings.Contains(err.Error(), "unsupported database engine") {
		t.Fatalf("err = %v, want unsupported engine", err)
	}
}

func TestOpenDBSQLiteReadOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stage.db")

	db, err := openDB(nil, OpenOptions{Engine: EngineSQLite, Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE t (a TEXT)`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	ro, err := openDB(nil, OpenOptions{Engine: EngineSQLite, Path: path, ReadOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	defer ro.Close()
	if _, err := ro.Exec(`INSERT INTO t VALUES ('x')`); err == nil {
		t.Error("read-only connection should refuse writes")
	}
}

func TestImportDatabaseTableRejectsLocalEngine(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(filepath.Join(dir, "cache"), nil)
	if _, err := svc.ImportDatabaseTable("s", EngineSQLite, "x.db", "t"); err == nil ||
		!strings.Contains(err.Error(), "unsupported import engine") {
		t.Fatalf("err = %v, want unsupported import engine", err)
	}
}
