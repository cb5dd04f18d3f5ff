package main

import (
	"deckgen/export"
)

// assemble runs the document assembler over the current session.
func (a *App) assemble() (*export.Artifact, []export.Warning, error) {
	eff, err := a.EffectiveStyle()
	if err != nil {
		return nil, nil, err
	}
	asm := &export.Assembler{
		Images:      a.state.Images,
		Dataset:     a.state.Dataset,
		Logf:        a.logger.Log,
		AutoLayout:  true,
		RasterWidth: a.cfg.RasterWidth,
	}
	if a.cfg.LogoImage != "" && a.state.Images != nil {
		if data, ok := a.state.Images.Lookup(a.cfg.LogoImage); ok {
			asm.Logo = data
			asm.LogoName = a.cfg.LogoImage
		} else {
			a.logger.Logf("logo image %q not found in registry", a.cfg.LogoImage)
		}
	}
	return asm.Assemble(a.state.History.Current(), eff)
}

// GeneratePPTX assembles the deck and writes a .pptx file. The returned
// warnings list the elements that were skipped.
func (a *App) GeneratePPTX(filename string) (string, []export.Warning, error) {
	art, warnings, err := a.assemble()
	if err != nil {
		return "", nil, WrapError("Generate", "GeneratePPTX", err)
	}
	data, err := export.NewPPTExportService().ExportDeck(art)
	if err != nil {
		return "", warnings, WrapError("Generate", "GeneratePPTX", err)
	}
	path, err := a.writeOutput(filename, data)
	if err != nil {
		return "", warnings, WrapError("Generate", "GeneratePPTX", err)
	}
	return path, warnings, nil
}

// GeneratePDF writes the deck as a PDF handout.
func (a *App) GeneratePDF(filename string) (string, []export.Warning, error) {
	art, warnings, err := a.assemble()
	if err != nil {
		return "", nil, WrapError("Generate", "GeneratePDF", err)
	}
	data, err := export.NewPDFExportService().ExportDeckToPDF(art)
	if err != nil {
		return "", warnings, WrapError("Generate", "GeneratePDF", err)
	}
	path, err := a.writeOutput(filename, data)
	if err != nil {
		return "", warnings, WrapError("Generate", "GeneratePDF", err)
	}
	return path, warnings, nil
}

// GenerateDOCX writes the deck as a Word outline handout.
func (a *App) GenerateDOCX(filename string) (string, []export.Warning, error) {
	art, warnings, err := a.assemble()
	if err != nil {
		return "", nil, WrapError("Generate", "GenerateDOCX", err)
	}
	data, err := export.NewWordExportService().ExportDeckToWord(art)
	if err != nil {
		return "", warnings, WrapError("Generate", "GenerateDOCX", err)
	}
	path, err := a.writeOutput(filename, data)
	if err != nil {
		return "", warnings, WrapError("Generate", "GenerateDOCX", err)
	}
	return path, warnings, nil
}

// GenerateWorkbook writes the chart-data appendix workbook.
func (a *App) GenerateWorkbook(filename string) (string, []export.Warning, error) {
	art, warnings, err := a.assemble()
	if err != nil {
		return "", nil, WrapError("Generate", "GenerateWorkbook", err)
	}
	data, err := export.NewGoExcelExportService().ExportChartDataToExcel(art)
	if err != nil {
		return "", warnings, WrapError("Generate", "GenerateWorkbook", err)
	}
	path, err := a.writeOutput(filename, data)
	if err != nil {
		return "", warnings, WrapError("Generate", "GenerateWorkbook", err)
	}
	return path, warnings, nil
}

// ExportDatasetSnapshot writes the attached dataset table to xlsx.
func (a *App) ExportDatasetSnapshot(filename string) (string, error) {
	data, err := export.NewExcelExportService().ExportTableToExcel(a.state.Dataset, "")
	if err != nil {
		return "", WrapError("Generate", "ExportDatasetSnapshot", err)
	}
	path, err := a.writeOutput(filename, data)
	if err != nil {
		return "", WrapError("Generate", "ExportDatasetSnapshot", err)
	}
	return path, nil
}
