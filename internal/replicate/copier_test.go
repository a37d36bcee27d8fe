package replicate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repokit/internal/replicate"
)

const (
	copierSourceDirectoryNameConstant = "origin-tree"
	copierTargetDirectoryNameConstant = "copied-tree"
	copierNestedDirectoryNameConstant = "nested"
	copierRegularFileNameConstant     = "values.yml"
	copierRegularFileContentConstant  = "timeout: 30\n"
	copierScriptFileNameConstant      = "run.sh"
	copierScriptFileContentConstant   = "#!/bin/sh\n"
	copierSymlinkNameConstant         = "latest"
)

func TestTreeCopierCopiesNestedTree(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	sourceDirectory := filepath.Join(workingDirectory, copierSourceDirectoryNameConstant)
	targetDirectory := filepath.Join(workingDirectory, copierTargetDirectoryNameConstant)

	require.NoError(testInstance, os.MkdirAll(filepath.Join(sourceDirectory, copierNestedDirectoryNameConstant), 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(sourceDirectory, copierNestedDirectoryNameConstant, copierRegularFileNameConstant), []byte(copierRegularFileContentConstant), 0o644))
	require.NoError(testInstance, os.WriteFile(filepath.Join(sourceDirectory, copierScriptFileNameConstant), []byte(copierScriptFileContentConstant), 0o755))
	require.NoError(testInstance, os.Symlink(copierScriptFileNameConstant, filepath.Join(sourceDirectory, copierSymlinkNameConstant)))

	copier := replicate.NewTreeCopier()
	require.NoError(testInstance, copier.CopyTree(sourceDirectory, targetDirectory))

	nestedContent, nestedError := os.ReadFile(filepath.Join(targetDirectory, copierNestedDirectoryNameConstant, copierRegularFileNameConstant))
	require.NoError(testInstance, nestedError)
	require.Equal(testInstance, copierRegularFileContentConstant, string(nestedContent))

	scriptInfo, scriptStatError := os.Stat(filepath.Join(targetDirectory, copierScriptFileNameConstant))
	require.NoError(testInstance, scriptStatError)
	require.Equal(testInstance, os.FileMode(0o755), scriptInfo.Mode().Perm())

	linkTarget, linkError := os.Readlink(filepath.Join(targetDirectory, copierSymlinkNameConstant))
	require.NoError(testInstance, linkError)
	require.Equal(testInstance, copierScriptFileNameConstant, linkTarget)
}

func TestTreeCopierFailsWhenSourceMissing(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	copier := replicate.NewTreeCopier()

	copyError := copier.CopyTree(filepath.Join(workingDirectory, "absent"), filepath.Join(workingDirectory, copierTargetDirectoryNameConstant))
	require.Error(testInstance, copyError)
}
