package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"deckgen/config"
	"deckgen/export"
	"deckgen/outline"
	"deckgen/style"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:   "deckgen",
		Short: "Generate presentation decks from declarative outlines",
		Long: `deckgen turns a JSON slide outline and a style configuration into a
finished PowerPoint deck, with optional PDF, Word and Excel handouts.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "deckgen.json", "path to the engine config file")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newDefaultOutlineCmd())
	root.AddCommand(newThemeCmd())
	root.AddCommand(newOutlineCmd())
	root.AddCommand(newDatasetCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadApp() (*App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, WrapOperationError("load config", err)
	}
	return NewApp(cfg)
}

func newGenerateCmd() *cobra.Command {
	var (
		outlinePath string
		useDefault  bool
		preset      string
		fontName    string
		fontColor   string
		transition  string
		titleSize   int
		bodySize    int
		formats     []string
		output      string
		csvPath     string
		excelPath   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render an outline to one or more document formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			defer app.Close()

			switch {
			case useDefault:
				if err := app.LoadDefaultOutline(); err != nil {
					return err
				}
			case outlinePath != "":
				data, err := os.ReadFile(outlinePath)
				if err != nil {
					return WrapOperationErrorf("read outline %s", err, outlinePath)
				}
				if err := app.LoadOutlineJSON(data); err != nil {
					return err
				}
			default:
				return fmt.Errorf("either --outline or --default-outline is required")
			}

			if preset != "" {
				if err := app.ApplyPreset(preset); err != nil {
					return err
				}
			}
			if fontName != "" {
				app.SetFont(fontName)
			}
			if fontColor != "" {
				if err := app.SetFontColor(fontColor); err != nil {
					return err
				}
			}
			if titleSize > 0 {
				app.SetTitleSize(titleSize)
			}
			if bodySize > 0 {
				app.SetBodySize(bodySize)
			}
			if transition != "" {
				app.SetDefaultTransition(transition)
			}

			if csvPath != "" {
				if err := app.AttachCSV(filepath.Base(csvPath), csvPath); err != nil {
					return err
				}
			}
			if excelPath != "" {
				if err := app.AttachExcel(filepath.Base(excelPath), excelPath); err != nil {
					return err
				}
			}

			for _, format := range formats {
				name := output + "." + format
				var path string
				var warnings []export.Warning
				var err error
				switch strings.ToLower(format) {
				case "pptx":
					path, warnings, err = app.GeneratePPTX(name)
				case "pdf":
					path, warnings, err = app.GeneratePDF(name)
				case "docx":
					path, warnings, err = app.GenerateDOCX(name)
				case "xlsx":
					path, warnings, err = app.GenerateWorkbook(name)
				default:
					return fmt.Errorf("unknown format %q (want pptx, pdf, docx or xlsx)", format)
				}
				if err != nil {
					return err
				}
				printWarnings(cmd, warnings)
				cmd.Printf("wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "", "path to the outline JSON file")
	cmd.Flags().BoolVar(&useDefault, "default-outline", false, "render the built-in sample outline")
	cmd.Flags().StringVar(&preset, "preset", "", "style preset to apply")
	cmd.Flags().StringVar(&fontName, "font", "", "override the deck font")
	cmd.Flags().StringVar(&fontColor, "font-color", "", "override the font color (hex, e.g. #000080)")
	cmd.Flags().StringVar(&transition, "transition", "", "default slide transition")
	cmd.Flags().IntVar(&titleSize, "title-size", 0, "override the title size in points")
	cmd.Flags().IntVar(&bodySize, "body-size", 0, "override the body size in points")
	cmd.Flags().StringSliceVar(&formats, "format", []string{"pptx"}, "output formats (pptx, pdf, docx, xlsx)")
	cmd.Flags().StringVar(&output, "output", "deck", "output file name without extension")
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file to attach as the dataset")
	cmd.Flags().StringVar(&excelPath, "excel", "", "xlsx file to attach as the dataset")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in style presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range style.PresetNames() {
				cmd.Println(name)
			}
			return nil
		},
	}
}

func newDefaultOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-outline",
		Short: "Print the built-in sample outline as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			slides, err := outline.DefaultOutline()
			if err != nil {
				return err
			}
			data, err := outline.MarshalOutline(slides)
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		},
	}
}

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and exchange themes",
	}

	var preset string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print a theme as flat JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := style.Default()
			if preset != "" {
				var err error
				cfg, err = style.Preset(preset)
				if err != nil {
					return err
				}
			}
			data, err := style.ExportTheme(cfg)
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		},
	}
	exportCmd.Flags().StringVar(&preset, "preset", "", "preset to export; default exports the built-in style")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a theme JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return WrapOperationErrorf("read theme %s", err, args[0])
			}
			if _, err := style.ApplyTheme(style.Default(), data); err != nil {
				return err
			}
			cmd.Println("theme is valid")
			return nil
		},
	}

	cmd.AddCommand(exportCmd, validateCmd)
	return cmd
}

func newOutlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Inspect and check slide outlines",
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check an outline JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return WrapOperationErrorf("read outline %s", err, args[0])
			}
			slides, err := outline.ParseOutline(data)
			if err != nil {
				return err
			}
			for i, s := range slides {
				if err := outline.Validate(outline.Normalize(s)); err != nil {
					return fmt.Errorf("slide %d: %w", i+1, err)
				}
			}
			cmd.Printf("outline is valid (%d slides)\n", len(slides))
			return nil
		},
	}

	cmd.AddCommand(validateCmd)
	return cmd
}

func newDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Import and inspect dataset sources",
	}

	var (
		csvPath    string
		excelPath  string
		xlsPath    string
		duckdbPath string
		dbTable    string
		name       string
	)
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Stage a tabular file or database table as a dataset source",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			defer app.Close()

			var path string
			var attach func(string, string) error
			switch {
			case csvPath != "":
				path, attach = csvPath, app.AttachCSV
			case excelPath != "":
				path, attach = excelPath, app.AttachExcel
			case xlsPath != "":
				path, attach = xlsPath, app.AttachXLS
			case duckdbPath != "":
				if dbTable == "" {
					return fmt.Errorf("--duckdb requires --table")
				}
				path = duckdbPath
				attach = func(name, path string) error {
					return app.AttachDuckDBTable(name, path, dbTable)
				}
			default:
				return fmt.Errorf("one of --csv, --excel, --xls or --duckdb is required")
			}
			if name == "" {
				name = filepath.Base(path)
			}
			if err := attach(name, path); err != nil {
				return err
			}
			cmd.Printf("imported %s\n", name)
			return nil
		},
	}
	importCmd.Flags().StringVar(&csvPath, "csv", "", "CSV file to import")
	importCmd.Flags().StringVar(&excelPath, "excel", "", "xlsx workbook to import")
	importCmd.Flags().StringVar(&xlsPath, "xls", "", "legacy xls workbook to import")
	importCmd.Flags().StringVar(&duckdbPath, "duckdb", "", "DuckDB database file to import from")
	importCmd.Flags().StringVar(&dbTable, "table", "", "table to copy when importing from a database")
	importCmd.Flags().StringVar(&name, "name", "", "source name; defaults to the file name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered dataset sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			defer app.Close()

			sources, err := app.Sources()
			if err != nil {
				return err
			}
			if len(sources) == 0 {
				cmd.Println("no dataset sources registered")
				return nil
			}
			for _, src := range sources {
				cmd.Printf("%s  %-6s %s (table %s)\n", src.ID, src.Type, src.Name, src.TableName)
			}
			return nil
		},
	}

	var (
		sourceID string
		table    string
		output   string
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a staged table as an xlsx snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			defer app.Close()

			sources, err := app.Sources()
			if err != nil {
				return err
			}
			for i := range sources {
				if sources[i].ID == sourceID || sources[i].Name == sourceID {
					if err := app.UseTable(&sources[i], table); err != nil {
						return err
					}
					path, err := app.ExportDatasetSnapshot(output)
					if err != nil {
						return err
					}
					cmd.Printf("wrote %s\n", path)
					return nil
				}
			}
			return fmt.Errorf("unknown dataset source %q", sourceID)
		},
	}
	exportCmd.Flags().StringVar(&sourceID, "source", "", "source id or name")
	exportCmd.Flags().StringVar(&table, "table", "", "table to export; defaults to the source's main table")
	exportCmd.Flags().StringVar(&output, "output", "dataset.xlsx", "output file name")
	exportCmd.MarkFlagRequired("source")

	cmd.AddCommand(importCmd, listCmd, exportCmd)
	return cmd
}

func printWarnings(cmd *cobra.Command, warnings []export.Warning) {
	for _, w := range warnings {
		cmd.PrintErrf("warning: slide %d: %s: %s\n", w.SlideIndex+1, w.Element, w.Message)
	}
}
