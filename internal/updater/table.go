package updater

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	csvExtensionConstant                       = ".csv"
	workbookExtensionConstant                  = ".xlsx"
	macroWorkbookExtensionConstant             = ".xlsm"
	defaultSheetIndexConstant                  = 0
	unsupportedExtensionReasonTemplateConstant = "unsupported input extension %q"
	emptyInputReasonConstant                   = "input contains no rows"
	missingColumnReasonTemplateConstant        = "column %q not found in header row [%s]"
	headerSeparatorConstant                    = ", "
	missingSheetReasonTemplateConstant         = "sheet %q not found"
	workbookReadReasonTemplateConstant         = "unable to read workbook: %s"
	csvReadReasonTemplateConstant              = "unable to read rows: %s"
)

// TableEntry is a single key/value pair sourced from the input file.
type TableEntry struct {
	Key   string
	Value string
}

// KeyValueTable is the immutable, ordered set of key/value pairs to apply.
type KeyValueTable struct {
	entries []TableEntry
}

// Entries returns the table rows in their original order with duplicates collapsed.
func (table KeyValueTable) Entries() []TableEntry {
	return table.entries
}

// Size reports the number of distinct keys in the table.
func (table KeyValueTable) Size() int {
	return len(table.entries)
}

// TableOptions selects the columns and sheet used to build a KeyValueTable.
type TableOptions struct {
	KeyColumn   string
	ValueColumn string
	SheetName   string
}

// LoadKeyValueTable reads the input file and builds the key/value table.
// CSV and Excel workbooks are supported; the extension selects the reader.
func LoadKeyValueTable(inputPath string, options TableOptions) (KeyValueTable, error) {
	if _, statError := os.Stat(inputPath); statError != nil {
		return KeyValueTable{}, InputNotFoundError{Path: inputPath}
	}

	var rows [][]string
	var rowsError error
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case csvExtensionConstant:
		rows, rowsError = readCommaSeparatedRows(inputPath)
	case workbookExtensionConstant, macroWorkbookExtensionConstant:
		rows, rowsError = readWorkbookRows(inputPath, options.SheetName)
	default:
		return KeyValueTable{}, TableParseError{Path: inputPath, Reason: fmt.Sprintf(unsupportedExtensionReasonTemplateConstant, filepath.Ext(inputPath))}
	}
	if rowsError != nil {
		return KeyValueTable{}, rowsError
	}

	return buildKeyValueTable(inputPath, rows, options)
}

func readCommaSeparatedRows(inputPath string) ([][]string, error) {
	inputFile, openError := os.Open(inputPath)
	if openError != nil {
		return nil, InputNotFoundError{Path: inputPath}
	}
	defer inputFile.Close()

	csvReader := csv.NewReader(inputFile)
	csvReader.FieldsPerRecord = -1
	rows, readError := csvReader.ReadAll()
	if readError != nil {
		return nil, TableParseError{Path: inputPath, Reason: fmt.Sprintf(csvReadReasonTemplateConstant, readError)}
	}
	return rows, nil
}

func readWorkbookRows(inputPath string, sheetName string) ([][]string, error) {
	workbook, openError := excelize.OpenFile(inputPath)
	if openError != nil {
		return nil, TableParseError{Path: inputPath, Reason: fmt.Sprintf(workbookReadReasonTemplateConstant, openError)}
	}
	defer workbook.Close()

	selectedSheet := strings.TrimSpace(sheetName)
	if len(selectedSheet) == 0 {
		selectedSheet = workbook.GetSheetName(defaultSheetIndexConstant)
	}

	rows, rowsError := workbook.GetRows(selectedSheet)
	if rowsError != nil {
		return nil, TableParseError{Path: inputPath, Reason: fmt.Sprintf(missingSheetReasonTemplateConstant, selectedSheet)}
	}
	return rows, nil
}

func buildKeyValueTable(inputPath string, rows [][]string, options TableOptions) (KeyValueTable, error) {
	if len(rows) == 0 {
		return KeyValueTable{}, TableParseError{Path: inputPath, Reason: emptyInputReasonConstant}
	}

	headerRow := rows[0]
	keyColumnIndex, keyFound := locateColumn(headerRow, options.KeyColumn)
	if !keyFound {
		return KeyValueTable{}, TableParseError{Path: inputPath, Reason: missingColumnReason(options.KeyColumn, headerRow)}
	}
	valueColumnIndex, valueFound := locateColumn(headerRow, options.ValueColumn)
	if !valueFound {
		return KeyValueTable{}, TableParseError{Path: inputPath, Reason: missingColumnReason(options.ValueColumn, headerRow)}
	}

	entries := make([]TableEntry, 0, len(rows)-1)
	entryPositions := make(map[string]int)
	for _, dataRow := range rows[1:] {
		entryKey := strings.TrimSpace(cellAt(dataRow, keyColumnIndex))
		if len(entryKey) == 0 {
			continue
		}
		entryValue := cellAt(dataRow, valueColumnIndex)

		if existingPosition, alreadySeen := entryPositions[entryKey]; alreadySeen {
			entries[existingPosition].Value = entryValue
			continue
		}
		entryPositions[entryKey] = len(entries)
		entries = append(entries, TableEntry{Key: entryKey, Value: entryValue})
	}

	return KeyValueTable{entries: entries}, nil
}

func locateColumn(headerRow []string, columnName string) (int, bool) {
	normalizedName := strings.ToLower(strings.TrimSpace(columnName))
	for columnIndex, headerCell := range headerRow {
		if strings.ToLower(strings.TrimSpace(headerCell)) == normalizedName {
			return columnIndex, true
		}
	}
	return 0, false
}

func missingColumnReason(columnName string, headerRow []string) string {
	return fmt.Sprintf(missingColumnReasonTemplateConstant, columnName, strings.Join(headerRow, headerSeparatorConstant))
}

func cellAt(dataRow []string, columnIndex int) string {
	if columnIndex >= len(dataRow) {
		return ""
	}
	return dataRow[columnIndex]
}
