package updater

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	wildcardCharactersConstant = "*?["
	yamlExtensionConstant      = ".yaml"
	yamlShortExtensionConstant = ".yml"
)

// ResolveTargets expands the supplied specifiers into an ordered,
// duplicate-free list of configuration file paths. A specifier is a glob
// pattern, an existing directory, or a literal file path; literal paths are
// not checked for existence here.
func ResolveTargets(specifiers []string) ([]string, error) {
	orderedTargets := make([]string, 0, len(specifiers))
	seenCanonicalPaths := make(map[string]struct{})

	appendTarget := func(candidatePath string) error {
		canonicalPath, canonicalError := filepath.Abs(filepath.Clean(candidatePath))
		if canonicalError != nil {
			return canonicalError
		}
		if _, alreadySeen := seenCanonicalPaths[canonicalPath]; alreadySeen {
			return nil
		}
		seenCanonicalPaths[canonicalPath] = struct{}{}
		orderedTargets = append(orderedTargets, canonicalPath)
		return nil
	}

	for _, specifier := range specifiers {
		trimmedSpecifier := strings.TrimSpace(specifier)
		if len(trimmedSpecifier) == 0 {
			continue
		}

		expandedPaths, expansionError := expandSpecifier(trimmedSpecifier)
		if expansionError != nil {
			return nil, expansionError
		}
		for _, expandedPath := range expandedPaths {
			if appendError := appendTarget(expandedPath); appendError != nil {
				return nil, appendError
			}
		}
	}

	return orderedTargets, nil
}

func expandSpecifier(specifier string) ([]string, error) {
	if strings.ContainsAny(specifier, wildcardCharactersConstant) {
		return filepath.Glob(specifier)
	}

	specifierInfo, statError := os.Stat(specifier)
	if statError == nil && specifierInfo.IsDir() {
		return collectConfigurationFiles(specifier)
	}

	return []string{specifier}, nil
}

func collectConfigurationFiles(directoryPath string) ([]string, error) {
	var configurationFiles []string
	walkError := filepath.WalkDir(directoryPath, func(currentPath string, directoryEntry fs.DirEntry, entryError error) error {
		if entryError != nil {
			return entryError
		}
		if directoryEntry.IsDir() {
			return nil
		}
		if hasConfigurationExtension(currentPath) {
			configurationFiles = append(configurationFiles, currentPath)
		}
		return nil
	})
	if walkError != nil {
		return nil, walkError
	}
	return configurationFiles, nil
}

func hasConfigurationExtension(filePath string) bool {
	extension := strings.ToLower(filepath.Ext(filePath))
	return extension == yamlExtensionConstant || extension == yamlShortExtensionConstant
}
