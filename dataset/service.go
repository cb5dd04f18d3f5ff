package dataset

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	xlsReader "github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// Source is one registered dataset source. The staged SQLite file lives
// under the cache dir; DBPath is relative to it.
type Source struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"` // csv, excel, xls, mysql
	DBPath    string `json:"db_path"`
	TableName string `json:"table_name"`
	CreatedAt int64  `json:"created_at"`
}

// Service imports tabular files into staged SQLite databases and loads
// staged tables back as Table snapshots.
type Service struct {
	cacheDir string
	logf     func(string)
}

// NewService creates a Service rooted at cacheDir. logf may be nil.
func NewService(cacheDir string, logf func(string)) *Service {
	if logf == nil {
		logf = func(string) {}
	}
	return &Service{cacheDir: cacheDir, logf: logf}
}

func (s *Service) registryPath() string {
	return filepath.Join(s.cacheDir, "sources.json")
}

// Sources loads the source registry. A missing registry is an empty one.
func (s *Service) Sources() ([]Source, error) {
	data, err := os.ReadFile(s.registryPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []Source{}, nil
		}
		return nil, err
	}
	var sources []Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse source registry: %w", err)
	}
	return sources, nil
}

func (s *Service) addSource(src Source) error {
	sources, err := s.Sources()
	if err != nil {
		return err
	}
	sources = append(sources, src)
	data, err := json.MarshalIndent(sources, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.cacheDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.registryPath(), data, 0644)
}

// newStage allocates a staged SQLite database for a new source and
// returns (id, relative path, absolute path).
func (s *Service) newStage() (string, string, string, error) {
	id := uuid.New().String()
	relDir := filepath.Join("sources", id)
	absDir := filepath.Join(s.cacheDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", "", "", fmt.Errorf("failed to create stage directory: %w", err)
	}
	rel := filepath.Join(relDir, "data.db")
	return id, rel, filepath.Join(absDir, "data.db"), nil
}

// ImportCSV stages a single CSV file as one table named after the file.
func (s *Service) ImportCSV(name, path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	if info.IsDir() || !strings.HasSuffix(strings.ToLower(info.Name()), ".csv") {
		return nil, fmt.Errorf("file is not a csv file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows found in %s", path)
	}

	tableName := sanitizeName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	return s.stageRows(name, "csv", map[string][][]string{tableName: rows}, tableName)
}

// ImportExcel stages every non-empty sheet of an xlsx workbook, one table
// per sheet. The first sheet becomes the source's main table.
func (s *Service) ImportExcel(name, path string) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := map[string][][]string{}
	var mainTable string
	usedNames := map[string]bool{}
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil || len(rows) == 0 {
			continue
		}
		tableName := uniqueName(sanitizeName(sheetName), usedNames)
		if mainTable == "" {
			mainTable = tableName
		}
		sheets[tableName] = rows
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no valid data found in any sheet")
	}
	return s.stageRows(name, "excel", sheets, mainTable)
}

// ImportXLS stages a legacy .xls workbook via xlsReader.
func (s *Service) ImportXLS(name, path string) (*Source, error) {
	workbook, err := xlsReader.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xls file: %w", err)
	}

	sheets := map[string][][]string{}
	var mainTable string
	usedNames := map[string]bool{}
	for si := 0; si < workbook.GetNumberSheets(); si++ {
		sheet, err := workbook.GetSheet(si)
		if err != nil {
			continue
		}
		var rows [][]string
		maxCols := 0
		for r := 0; r <= sheet.GetNumberRows(); r++ {
			row, err := sheet.GetRow(r)
			if err != nil {
				continue
			}
			cols := row.GetCols()
			rd := make([]string, len(cols))
			hasData := false
			for c, cell := range cols {
				rd[c] = toUTF8(cell.GetString())
				if !hasData && strings.TrimSpace(rd[c]) != "" {
					hasData = true
				}
			}
			if !hasData {
				continue
			}
			if len(rd) > maxCols {
				maxCols = len(rd)
			}
			rows = append(rows, rd)
		}
		if len(rows) == 0 {
			continue
		}
		// Pad ragged rows so every row has maxCols cells.
		for i, row := range rows {
			if len(row) < maxCols {
				p := make([]string, maxCols)
				copy(p, row)
				rows[i] = p
			}
		}
		tableName := uniqueName(sanitizeName(sheet.GetName()), usedNames)
		if mainTable == "" {
			mainTable = tableName
		}
		sheets[tableName] = rows
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no valid data found in any sheet")
	}
	return s.stageRows(name, "xls", sheets, mainTable)
}

// ImportMySQLTable copies one table of a remote MySQL database into a
// local stage. Path is the MySQL DSN.
func (s *Service) ImportMySQLTable(name, dsn, table string) (*Source, error) {
	return s.ImportDatabaseTable(name, EngineMySQL, dsn, table)
}

// ImportDuckDBTable copies one table of a DuckDB database file into a
// local stage.
func (s *Service) ImportDuckDBTable(name, path, table string) (*Source, error) {
	return s.ImportDatabaseTable(name, EngineDuckDB, path, table)
}

// ImportDatabaseTable copies one table of an external database into a
// local stage. All columns are staged as TEXT to sidestep type mismatches
// between engines.
func (s *Service) ImportDatabaseTable(name string, eng Engine, path, table string) (*Source, error) {
	if eng != EngineMySQL && eng != EngineDuckDB {
		return nil, fmt.Errorf("unsupported import engine: %s", eng)
	}
	remote, err := openDB(s.logf, OpenOptions{Engine: eng, Path: path, ReadOnly: eng == EngineDuckDB})
	if err != nil {
		return nil, err
	}
	defer remote.Close()

	id, rel, abs, err := s.newStage()
	if err != nil {
		return nil, err
	}
	local, err := openDB(s.logf, OpenOptions{Engine: EngineSQLite, Path: abs})
	if err != nil {
		return nil, err
	}
	defer local.Close()

	safeTable := sanitizeName(table)
	if err := copyRemoteTable(remote, local, eng, table, safeTable); err != nil {
		os.RemoveAll(filepath.Dir(abs))
		return nil, err
	}

	src := Source{
		ID:        id,
		Name:      name,
		Type:      string(eng),
		DBPath:    rel,
		TableName: safeTable,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.addSource(src); err != nil {
		return nil, err
	}
	s.logf(fmt.Sprintf("imported %s table %s as source %s", eng, table, id))
	return &src, nil
}

func copyRemoteTable(remote, local *sql.DB, eng Engine, table, safeTable string) error {
	rows, err := remote.Query("SELECT * FROM " + quoteIdent(eng, table))
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	createCols := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, col := range cols {
		createCols[i] = quoteIdent(EngineSQLite, sanitizeName(col)) + " TEXT"
		placeholders[i] = "?"
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(EngineSQLite, safeTable), strings.Join(createCols, ", "))
	if _, err := local.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table schema: %w", err)
	}

	tx, err := local.Begin()
	if err != nil {
		return err
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(EngineSQLite, safeTable), strings.Join(placeholders, ","))
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			tx.Rollback()
			return err
		}
		out := make([]any, len(cols))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				out[i] = string(b)
			} else {
				out[i] = v
			}
		}
		if _, err := stmt.Exec(out...); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := rows.Err(); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// stageRows writes one or more sheets of raw string rows into a fresh
// staged SQLite database and registers the source.
func (s *Service) stageRows(name, srcType string, sheets map[string][][]string, mainTable string) (*Source, error) {
	id, rel, abs, err := s.newStage()
	if err != nil {
		return nil, err
	}
	db, err := openDB(s.logf, OpenOptions{Engine: EngineSQLite, Path: abs})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	for tableName, rows := range sheets {
		if err := stageSheet(db, tableName, rows); err != nil {
			os.RemoveAll(filepath.Dir(abs))
			return nil, err
		}
	}

	src := Source{
		ID:        id,
		Name:      name,
		Type:      srcType,
		DBPath:    rel,
		TableName: mainTable,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.addSource(src); err != nil {
		return nil, err
	}
	s.logf(fmt.Sprintf("imported %s source %q (%d tables, main %s)", srcType, name, len(sheets), mainTable))
	return &src, nil
}

// stageSheet infers a schema from the raw rows and bulk-inserts them.
func stageSheet(db *sql.DB, tableName string, rows [][]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to stage")
	}

	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		return fmt.Errorf("no columns found")
	}

	hasHeader := isHeaderRow(rows[0])
	dataStart := 0
	if hasHeader {
		dataStart = 1
	}

	colTypes := inferColumnTypes(rows[dataStart:], numCols)
	headers := buildHeaders(rows[0], hasHeader, numCols, colTypes)

	createCols := make([]string, numCols)
	placeholders := make([]string, numCols)
	for i := range headers {
		createCols[i] = fmt.Sprintf("%s %s", quoteIdent(EngineSQLite, headers[i]), colTypes[i])
		placeholders[i] = "?"
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(EngineSQLite, tableName), strings.Join(createCols, ", "))
	if _, err := db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(EngineSQLite, tableName), strings.Join(placeholders, ","))
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i := dataStart; i < len(rows); i++ {
		vals := make([]any, numCols)
		for j := 0; j < numCols; j++ {
			var cell string
			if j < len(rows[i]) {
				cell = rows[i][j]
			}
			vals[j] = convertCell(cell, colTypes[j])
		}
		if _, err := stmt.Exec(vals...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert row %d into %s: %w", i+1, tableName, err)
		}
	}
	return tx.Commit()
}

func convertCell(cell string, t ColumnType) any {
	switch t {
	case TypeInteger:
		if iv, err := strconv.ParseInt(cell, 10, 64); err == nil {
			return iv
		}
		return nil
	case TypeReal:
		if fv, err := strconv.ParseFloat(cell, 64); err == nil {
			return fv
		}
		return nil
	default:
		return cell
	}
}

// LoadTable reads a staged table back as an immutable snapshot. limit <= 0
// loads every row.
func (s *Service) LoadTable(src *Source, tableName string, limit int) (*Table, error) {
	if tableName == "" {
		tableName = src.TableName
	}
	abs := filepath.Join(s.cacheDir, src.DBPath)
	db, err := openDB(s.logf, OpenOptions{Engine: EngineSQLite, Path: abs, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	cols, err := tableColumns(db, tableName)
	if err != nil {
		return nil, err
	}

	query := "SELECT * FROM " + quoteIdent(EngineSQLite, tableName)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", tableName, err)
	}
	defer rows.Close()

	t := &Table{Name: tableName, Columns: cols}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		out := make([]any, len(cols))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				out[i] = string(b)
			} else {
				out[i] = v
			}
		}
		t.Rows = append(t.Rows, out)
	}
	return t, rows.Err()
}

// Tables lists the staged tables of a source.
func (s *Service) Tables(src *Source) ([]string, error) {
	abs := filepath.Join(s.cacheDir, src.DBPath)
	db, err := openDB(s.logf, OpenOptions{Engine: EngineSQLite, Path: abs, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(listTablesQuery(EngineSQLite))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func tableColumns(db *sql.DB, tableName string) ([]Column, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(EngineSQLite, tableName)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var cid int
		var name, declType string
		var notNull int
		var dflt any
		var pk int
		if err := rows.Scan(&cid, &name, &declType, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		t := TypeText
		switch strings.ToUpper(declType) {
		case "INTEGER", "INT":
			t = TypeInteger
		case "REAL", "FLOAT", "DOUBLE":
			t = TypeReal
		}
		cols = append(cols, Column{Name: name, Type: t})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table not found: %s", tableName)
	}
	return cols, nil
}

// isHeaderRow guesses whether a raw row is a header: any parseable number
// in it means data, not a header.
func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	for _, cell := range row {
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			return false
		}
	}
	return true
}

// inferColumnTypes samples up to ten data rows per column, narrowing from
// INTEGER to REAL to TEXT.
func inferColumnTypes(dataRows [][]string, numCols int) []ColumnType {
	types := make([]ColumnType, numCols)
	sample := len(dataRows)
	if sample > 10 {
		sample = 10
	}
	for i := 0; i < numCols; i++ {
		current := TypeInteger
		seen := false
		for r := 0; r < sample; r++ {
			if i >= len(dataRows[r]) || dataRows[r][i] == "" {
				continue
			}
			seen = true
			t := inferCellType(dataRows[r][i])
			if t == TypeText {
				current = TypeText
				break
			}
			if t == TypeReal && current == TypeInteger {
				current = TypeReal
			}
		}
		if !seen {
			current = TypeText
		}
		types[i] = current
	}
	return types
}

func inferCellType(val string) ColumnType {
	if val == "" {
		return TypeText
	}
	if _, err := strconv.ParseInt(val, 10, 64); err == nil {
		return TypeInteger
	}
	if _, err := strconv.ParseFloat(val, 64); err == nil {
		return TypeReal
	}
	return TypeText
}

// buildHeaders derives unique sanitized column names, falling back to
// positional names when there is no header row.
func buildHeaders(firstRow []string, hasHeader bool, numCols int, colTypes []ColumnType) []string {
	headers := make([]string, numCols)
	used := map[string]bool{}
	for i := 0; i < numCols; i++ {
		var h string
		if hasHeader && i < len(firstRow) {
			h = sanitizeName(firstRow[i])
		}
		if h == "" || h == "unknown" {
			h = fmt.Sprintf("field_%d_%s", i+1, strings.ToLower(string(colTypes[i])))
		}
		headers[i] = uniqueName(h, used)
	}
	return headers
}

// sanitizeName makes a string safe as a SQL identifier, preserving
// Unicode letters and replacing separators and punctuation with
// underscores.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	var result strings.Builder
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_':
			result.WriteRune(r)
		case r > 127:
			result.WriteRune(r)
		default:
			result.WriteRune('_')
		}
	}
	out := result.String()
	if out == "" {
		return "unknown"
	}
	return out
}

func uniqueName(name string, used map[string]bool) string {
	base := name
	for i := 1; used[strings.ToLower(name)]; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	used[strings.ToLower(name)] = true
	return name
}

// toUTF8 repairs strings decoded from legacy xls files that are not
// valid UTF-8.
func toUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	decoded, err := charmap.Windows1252.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "�")
	}
	return decoded
}
