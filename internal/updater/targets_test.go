package updater_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repokit/internal/updater"
)

const (
	nestedConfigurationDirectoryConstant = "configs"
	firstConfigurationFileNameConstant   = "app.yml"
	secondConfigurationFileNameConstant  = "database.yaml"
	ignoredFileNameConstant              = "README.md"
	placeholderYamlContentConstant       = "enabled: true\n"
)

func createTargetFixture(testInstance *testing.T) (string, string, string) {
	testInstance.Helper()

	fixtureRoot := testInstance.TempDir()
	configurationDirectory := filepath.Join(fixtureRoot, nestedConfigurationDirectoryConstant)
	require.NoError(testInstance, os.MkdirAll(configurationDirectory, 0o755))

	firstConfigurationPath := filepath.Join(configurationDirectory, firstConfigurationFileNameConstant)
	secondConfigurationPath := filepath.Join(configurationDirectory, secondConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(firstConfigurationPath, []byte(placeholderYamlContentConstant), 0o644))
	require.NoError(testInstance, os.WriteFile(secondConfigurationPath, []byte(placeholderYamlContentConstant), 0o644))
	require.NoError(testInstance, os.WriteFile(filepath.Join(configurationDirectory, ignoredFileNameConstant), []byte(placeholderYamlContentConstant), 0o644))

	return fixtureRoot, firstConfigurationPath, secondConfigurationPath
}

func TestResolveTargetsExpandsDirectoriesToConfigurationFiles(testInstance *testing.T) {
	fixtureRoot, firstConfigurationPath, secondConfigurationPath := createTargetFixture(testInstance)

	resolvedTargets, resolveError := updater.ResolveTargets([]string{filepath.Join(fixtureRoot, nestedConfigurationDirectoryConstant)})
	require.NoError(testInstance, resolveError)
	require.ElementsMatch(testInstance, []string{firstConfigurationPath, secondConfigurationPath}, resolvedTargets)
}

func TestResolveTargetsExpandsGlobPatterns(testInstance *testing.T) {
	fixtureRoot, firstConfigurationPath, _ := createTargetFixture(testInstance)

	globPattern := filepath.Join(fixtureRoot, nestedConfigurationDirectoryConstant, "*.yml")
	resolvedTargets, resolveError := updater.ResolveTargets([]string{globPattern})
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, []string{firstConfigurationPath}, resolvedTargets)
}

func TestResolveTargetsDeduplicatesPreservingFirstSeenOrder(testInstance *testing.T) {
	fixtureRoot, firstConfigurationPath, secondConfigurationPath := createTargetFixture(testInstance)

	resolvedTargets, resolveError := updater.ResolveTargets([]string{
		secondConfigurationPath,
		filepath.Join(fixtureRoot, nestedConfigurationDirectoryConstant),
		firstConfigurationPath,
	})
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, []string{secondConfigurationPath, firstConfigurationPath}, resolvedTargets)
}

func TestResolveTargetsKeepsLiteralPathsWithoutExistenceCheck(testInstance *testing.T) {
	missingPath := filepath.Join(testInstance.TempDir(), "absent.yml")

	resolvedTargets, resolveError := updater.ResolveTargets([]string{missingPath})
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, []string{missingPath}, resolvedTargets)
}
