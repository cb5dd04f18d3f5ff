package main

import "deckgen/dataset"

// AttachCSV imports a CSV file and attaches its table to the session.
func (a *App) AttachCSV(name, path string) error {
	src, err := a.datasets.ImportCSV(name, path)
	if err != nil {
		return WrapError("Dataset", "AttachCSV", err)
	}
	return a.attach(src, "")
}

// AttachExcel imports an xlsx workbook and attaches its first sheet.
func (a *App) AttachExcel(name, path string) error {
	src, err := a.datasets.ImportExcel(name, path)
	if err != nil {
		return WrapError("Dataset", "AttachExcel", err)
	}
	return a.attach(src, "")
}

// AttachXLS imports a legacy xls workbook and attaches its first sheet.
func (a *App) AttachXLS(name, path string) error {
	src, err := a.datasets.ImportXLS(name, path)
	if err != nil {
		return WrapError("Dataset", "AttachXLS", err)
	}
	return a.attach(src, "")
}

// AttachMySQLTable copies one MySQL table into the local stage and
// attaches it.
func (a *App) AttachMySQLTable(name, dsn, table string) error {
	src, err := a.datasets.ImportMySQLTable(name, dsn, table)
	if err != nil {
		return WrapError("Dataset", "AttachMySQLTable", err)
	}
	return a.attach(src, "")
}

// AttachDuckDBTable copies one table of a DuckDB database file into the
// local stage and attaches it.
func (a *App) AttachDuckDBTable(name, path, table string) error {
	src, err := a.datasets.ImportDuckDBTable(name, path, table)
	if err != nil {
		return WrapError("Dataset", "AttachDuckDBTable", err)
	}
	return a.attach(src, "")
}

// UseTable attaches a different staged table of an existing source.
// Dataset charts resolve against whatever is attached at render time.
func (a *App) UseTable(src *dataset.Source, table string) error {
	return a.attach(src, table)
}

func (a *App) attach(src *dataset.Source, table string) error {
	t, err := a.datasets.LoadTable(src, table, 0)
	if err != nil {
		return WrapError("Dataset", "LoadTable", err)
	}
	a.state.Dataset = t
	a.logger.Logf("attached dataset table %s (%d rows)", t.Name, len(t.Rows))
	return nil
}

// Sources lists the registered dataset sources.
func (a *App) Sources() ([]dataset.Source, error) {
	sources, err := a.datasets.Sources()
	if err != nil {
		return nil, WrapError("Dataset", "Sources", err)
	}
	return sources, nil
}
