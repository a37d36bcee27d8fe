package updater_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/temirov/repokit/internal/updater"
)

const (
	csvInputFileNameConstant         = "values.csv"
	workbookInputFileNameConstant    = "values.xlsx"
	unsupportedInputFileNameConstant = "values.json"
	keyColumnHeaderConstant          = "key"
	valueColumnHeaderConstant        = "value"
	customKeyColumnHeaderConstant    = "setting"
	customValueColumnHeaderConstant  = "content"
	workbookSheetNameConstant        = "Sheet1"
)

func writeInputFile(testInstance *testing.T, fileName string, contents string) string {
	testInstance.Helper()
	inputPath := filepath.Join(testInstance.TempDir(), fileName)
	require.NoError(testInstance, os.WriteFile(inputPath, []byte(contents), 0o644))
	return inputPath
}

func defaultTableOptions() updater.TableOptions {
	return updater.TableOptions{KeyColumn: keyColumnHeaderConstant, ValueColumn: valueColumnHeaderConstant}
}

func TestLoadKeyValueTableFromCommaSeparatedInput(testInstance *testing.T) {
	testCases := []struct {
		name            string
		fileContents    string
		options         updater.TableOptions
		expectedEntries []updater.TableEntry
	}{
		{
			name:         "rows_in_order",
			fileContents: "key,value\nregion,us-east-1\ntimeout,30\n",
			options:      defaultTableOptions(),
			expectedEntries: []updater.TableEntry{
				{Key: "region", Value: "us-east-1"},
				{Key: "timeout", Value: "30"},
			},
		},
		{
			name:         "last_duplicate_wins",
			fileContents: "key,value\nregion,us-east-1\nregion,eu-west-1\n",
			options:      defaultTableOptions(),
			expectedEntries: []updater.TableEntry{
				{Key: "region", Value: "eu-west-1"},
			},
		},
		{
			name:         "empty_keys_dropped_and_missing_values_normalize",
			fileContents: "key,value\n  ,ignored\nregion\n",
			options:      defaultTableOptions(),
			expectedEntries: []updater.TableEntry{
				{Key: "region", Value: ""},
			},
		},
		{
			name:         "custom_columns_matched_case_insensitively",
			fileContents: "Setting,Content,extra\nregion,us-east-1,noise\n",
			options:      updater.TableOptions{KeyColumn: customKeyColumnHeaderConstant, ValueColumn: customValueColumnHeaderConstant},
			expectedEntries: []updater.TableEntry{
				{Key: "region", Value: "us-east-1"},
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			inputPath := writeInputFile(subtestInstance, csvInputFileNameConstant, testCase.fileContents)

			keyValueTable, tableError := updater.LoadKeyValueTable(inputPath, testCase.options)
			require.NoError(subtestInstance, tableError)
			require.Equal(subtestInstance, testCase.expectedEntries, keyValueTable.Entries())
		})
	}
}

func TestLoadKeyValueTableFromWorkbook(testInstance *testing.T) {
	workbookPath := filepath.Join(testInstance.TempDir(), workbookInputFileNameConstant)
	workbook := excelize.NewFile()
	require.NoError(testInstance, workbook.SetSheetRow(workbookSheetNameConstant, "A1", &[]string{keyColumnHeaderConstant, valueColumnHeaderConstant}))
	require.NoError(testInstance, workbook.SetSheetRow(workbookSheetNameConstant, "A2", &[]string{"region", "us-east-1"}))
	require.NoError(testInstance, workbook.SetSheetRow(workbookSheetNameConstant, "A3", &[]string{"timeout", "30"}))
	require.NoError(testInstance, workbook.SaveAs(workbookPath))
	require.NoError(testInstance, workbook.Close())

	keyValueTable, tableError := updater.LoadKeyValueTable(workbookPath, defaultTableOptions())
	require.NoError(testInstance, tableError)
	require.Equal(testInstance, []updater.TableEntry{
		{Key: "region", Value: "us-east-1"},
		{Key: "timeout", Value: "30"},
	}, keyValueTable.Entries())
}

func TestLoadKeyValueTableFailures(testInstance *testing.T) {
	testCases := []struct {
		name             string
		prepareInput     func(subtestInstance *testing.T) string
		options          updater.TableOptions
		verifyResultType func(subtestInstance *testing.T, resultError error)
	}{
		{
			name: "missing_input_file",
			prepareInput: func(subtestInstance *testing.T) string {
				return filepath.Join(subtestInstance.TempDir(), csvInputFileNameConstant)
			},
			options: defaultTableOptions(),
			verifyResultType: func(subtestInstance *testing.T, resultError error) {
				require.ErrorAs(subtestInstance, resultError, &updater.InputNotFoundError{})
			},
		},
		{
			name: "unsupported_extension",
			prepareInput: func(subtestInstance *testing.T) string {
				return writeInputFile(subtestInstance, unsupportedInputFileNameConstant, "{}")
			},
			options: defaultTableOptions(),
			verifyResultType: func(subtestInstance *testing.T, resultError error) {
				require.ErrorAs(subtestInstance, resultError, &updater.TableParseError{})
			},
		},
		{
			name: "missing_value_column_names_header",
			prepareInput: func(subtestInstance *testing.T) string {
				return writeInputFile(subtestInstance, csvInputFileNameConstant, "key,amount\nregion,us-east-1\n")
			},
			options: defaultTableOptions(),
			verifyResultType: func(subtestInstance *testing.T, resultError error) {
				var parseError updater.TableParseError
				require.ErrorAs(subtestInstance, resultError, &parseError)
				require.Contains(subtestInstance, parseError.Reason, valueColumnHeaderConstant)
				require.Contains(subtestInstance, parseError.Reason, "amount")
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			inputPath := testCase.prepareInput(subtestInstance)

			_, tableError := updater.LoadKeyValueTable(inputPath, testCase.options)
			require.Error(subtestInstance, tableError)
			testCase.verifyResultType(subtestInstance, tableError)
		})
	}
}
