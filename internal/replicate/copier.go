package replicate

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	copyRelativePathErrorTemplateConstant = "unable to compute relative path for %s: %w"
	copyDirectoryErrorTemplateConstant    = "unable to create directory %s: %w"
	copySymlinkReadErrorTemplateConstant  = "unable to read symbolic link %s: %w"
	copySymlinkErrorTemplateConstant      = "unable to recreate symbolic link %s: %w"
	copyOpenSourceErrorTemplateConstant   = "unable to open source file %s: %w"
	copyCreateErrorTemplateConstant       = "unable to create file %s: %w"
	copyContentErrorTemplateConstant      = "unable to copy contents of %s: %w"
)

// TreeCopier recursively copies directory trees preserving structure, contents, and modes.
type TreeCopier struct{}

// NewTreeCopier constructs a TreeCopier.
func NewTreeCopier() TreeCopier {
	return TreeCopier{}
}

// CopyTree copies sourceDirectory into destinationDirectory, which must not exist yet.
// An interrupted copy leaves the destination in a partially written state.
func (copier TreeCopier) CopyTree(sourceDirectory string, destinationDirectory string) error {
	return filepath.WalkDir(sourceDirectory, func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return walkError
		}

		relativePath, relativeError := filepath.Rel(sourceDirectory, currentPath)
		if relativeError != nil {
			return fmt.Errorf(copyRelativePathErrorTemplateConstant, currentPath, relativeError)
		}
		targetPath := filepath.Join(destinationDirectory, relativePath)

		entryInfo, infoError := directoryEntry.Info()
		if infoError != nil {
			return infoError
		}

		switch {
		case directoryEntry.IsDir():
			if mkdirError := os.MkdirAll(targetPath, entryInfo.Mode().Perm()); mkdirError != nil {
				return fmt.Errorf(copyDirectoryErrorTemplateConstant, targetPath, mkdirError)
			}
			return nil
		case entryInfo.Mode()&fs.ModeSymlink != 0:
			return copier.copySymlink(currentPath, targetPath)
		default:
			return copier.copyFile(currentPath, targetPath, entryInfo.Mode().Perm())
		}
	})
}

func (copier TreeCopier) copySymlink(sourcePath string, targetPath string) error {
	linkTarget, readError := os.Readlink(sourcePath)
	if readError != nil {
		return fmt.Errorf(copySymlinkReadErrorTemplateConstant, sourcePath, readError)
	}
	if symlinkError := os.Symlink(linkTarget, targetPath); symlinkError != nil {
		return fmt.Errorf(copySymlinkErrorTemplateConstant, targetPath, symlinkError)
	}
	return nil
}

func (copier TreeCopier) copyFile(sourcePath string, targetPath string, fileMode fs.FileMode) error {
	sourceFile, openError := os.Open(sourcePath)
	if openError != nil {
		return fmt.Errorf(copyOpenSourceErrorTemplateConstant, sourcePath, openError)
	}
	defer sourceFile.Close()

	targetFile, createError := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if createError != nil {
		return fmt.Errorf(copyCreateErrorTemplateConstant, targetPath, createError)
	}

	if _, copyError := io.Copy(targetFile, sourceFile); copyError != nil {
		targetFile.Close()
		return fmt.Errorf(copyContentErrorTemplateConstant, sourcePath, copyError)
	}

	return targetFile.Close()
}
