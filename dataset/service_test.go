package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsHeaderRow(t *testing.T) {
	tests := []struct {
		row  []string
		want bool
	}{
		{[]string{"month", "sales", "region"}, true},
		{[]string{"Jan", "100", "North"}, false},
		{[]string{"", "label", ""}, true},
		{[]string{"3.14"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := isHeaderRow(tt.row); got != tt.want {
			t.Errorf("isHeaderRow(%v) = %v, want %v", tt.row, got, tt.want)
		}
	}
}

func TestInferColumnTypes(t *testing.T) {
	rows := [][]string{
		{"1", "1.5", "abc", "", "2"},
		{"2", "2", "def", "", "x"},
		{"3", "3.25", "", "", "4"},
	}
	got := inferColumnTypes(rows, 5)
	want := []ColumnType{TypeInteger, TypeReal, TypeText, TypeText, TypeText}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Sales Report", "Sales_Report"},
		{"  trimmed  ", "trimmed"},
		{"a-b.c", "a_b_c"},
		{"col_1", "col_1"},
		{"Ümläut", "Ümläut"},
		{"!!!", "___"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		if got := sanitizeName(tt.in); got != tt.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUniqueName(t *testing.T) {
	used := map[string]bool{}
	if got := uniqueName("sheet", used); got != "sheet" {
		t.Fatalf("first use = %q", got)
	}
	if got := uniqueName("Sheet", used); got != "Sheet_1" {
		t.Errorf("case-insensitive collision = %q, want Sheet_1", got)
	}
	if got := uniqueName("sheet", used); got != "sheet_2" {
		t.Errorf("third use = %q, want sheet_2", got)
	}
}

func TestBuildHeaders(t *testing.T) {
	types := []ColumnType{TypeInteger, TypeText, TypeReal}

	got := buildHeaders([]string{"id", "name", "score"}, true, 3, types)
	want := []string{"id", "name", "score"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header %d = %q, want %q", i, got[i], want[i])
		}
	}

	// No header row: positional names carrying the inferred type.
	got = buildHeaders([]string{"1", "Jan", "2.5"}, false, 3, types)
	want = []string{"field_1_integer", "field_2_text", "field_3_real"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("positional header %d = %q, want %q", i, got[i], want[i])
		}
	}

	// An unusable header cell falls back to a positional name too.
	got = buildHeaders([]string{"id", "!!!", "score"}, true, 3, types)
	if got[1] != "field_2_text" {
		t.Errorf("fallback header = %q, want field_2_text", got[1])
	}
}

func TestConvertCell(t *testing.T) {
	if v := convertCell("42", TypeInteger); v != int64(42) {
		t.Errorf("integer = %v", v)
	}
	if v := convertCell("2.5", TypeReal); v != 2.5 {
		t.Errorf("real = %v", v)
	}
	if v := convertCell("hello", TypeText); v != "hello" {
		t.Errorf("text = %v", v)
	}
	// Unparseable values become NULL rather than poisoning the column.
	if v := convertCell("n/a", TypeInteger); v != nil {
		t.Errorf("bad integer = %v, want nil", v)
	}
	if v := convertCell("", TypeReal); v != nil {
		t.Errorf("empty real = %v, want nil", v)
	}
}

func TestImportCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "monthly_sales.csv")
	data := "month,amount,region\nJan,100,North\nFeb,150.5,South\nMar,90,North\n"
	if err := os.WriteFile(csvPath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewService(filepath.Join(dir, "cache"), nil)
	src, err := svc.ImportCSV("sales 2026", csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if src.Type != "csv" || src.TableName != "monthly_sales" {
		t.Errorf("source = %+v", src)
	}

	tbl, err := svc.LoadTable(src, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Name != "monthly_sales" {
		t.Errorf("table name = %q", tbl.Name)
	}
	if len(tbl.Columns) != 3 {
		t.Fatalf("columns = %+v", tbl.Columns)
	}
	if tbl.Columns[0].Name != "month" || tbl.Columns[1].Name != "amount" {
		t.Errorf("column names = %+v", tbl.Columns)
	}
	if tbl.Columns[1].Type != TypeReal || !tbl.Columns[1].Numeric() {
		t.Errorf("amount column = %+v", tbl.Columns[1])
	}
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %+v", tbl.Rows)
	}
	if got, ok := tbl.Float(1, 1); !ok || got != 150.5 {
		t.Errorf("Float(1,1) = %v %v", got, ok)
	}
	if tbl.CellString(2, 0) != "Mar" {
		t.Errorf("CellString(2,0) = %q", tbl.CellString(2, 0))
	}

	sources, err := svc.Sources()
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 || sources[0].Name != "sales 2026" {
		t.Errorf("registry = %+v", sources)
	}
}

func TestImportCSVHeaderless(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "raw.csv")
	if err := os.WriteFile(csvPath, []byte("1,2.5,a\n2,3.5,b\n"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewService(filepath.Join(dir, "cache"), nil)
	src, err := svc.ImportCSV("raw", csvPath)
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := svc.LoadTable(src, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Columns[0].Name != "field_1_integer" || tbl.Columns[2].Name != "field_3_text" {
		t.Errorf("columns = %+v", tbl.Columns)
	}
	// Every line is data when there is no header.
	if len(tbl.Rows) != 2 {
		t.Errorf("rows = %+v", tbl.Rows)
	}
}

func TestImportCSVRejectsNonCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("a,b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	svc := NewService(filepath.Join(dir, "cache"), nil)
	if _, err := svc.ImportCSV("x", path); err == nil {
		t.Error("non-csv extension accepted")
	}
	if _, err := svc.ImportCSV("x", filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadTableLimit(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "big.csv")
	data := "n\n1\n2\n3\n4\n5\n"
	if err := os.WriteFile(csvPath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	svc := NewService(filepath.Join(dir, "cache"), nil)
	src, err := svc.ImportCSV("big", csvPath)
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := svc.LoadTable(src, "", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("limited rows = %d", len(tbl.Rows))
	}
}

func TestTablesListsStagedTables(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "one.csv")
	if err := os.WriteFile(csvPath, []byte("a\nx\n"), 0644); err != nil {
		t.Fatal(err)
	}
	svc := NewService(filepath.Join(dir, "cache"), nil)
	src, err := svc.ImportCSV("one", csvPath)
	if err != nil {
		t.Fatal(err)
	}
	names, err := svc.Tables(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "one" {
		t.Errorf("tables = %v", names)
	}
}
