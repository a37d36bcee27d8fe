package pathutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	currentDirectorySymbolConstant   = "."
	parentDirectorySegmentConstant   = ".."
	pathEscapeErrorTemplateConstant  = "path %q escapes base directory %q"
	parentSegmentWithSeparatorPrefix = parentDirectorySegmentConstant + string(os.PathSeparator)
)

// PathEscapeError reports a candidate path that resolved outside its base directory.
type PathEscapeError struct {
	BaseDirectory string
	CandidatePath string
}

// Error describes the containment violation.
func (escapeError PathEscapeError) Error() string {
	return fmt.Sprintf(pathEscapeErrorTemplateConstant, escapeError.CandidatePath, escapeError.BaseDirectory)
}

// ContainmentResolver resolves user-supplied relative paths against a base directory.
//
// Resolution is a pure computation over path strings; callers are responsible
// for checking that resolved paths exist when they need to.
type ContainmentResolver struct{}

// NewContainmentResolver constructs a ContainmentResolver.
func NewContainmentResolver() ContainmentResolver {
	return ContainmentResolver{}
}

// Resolve joins candidatePath beneath baseDirectory and proves the normalized
// result stays inside (or equals) the base. An empty candidate or "." resolves
// to the base directory itself. Candidates that normalize outside the base,
// whether through parent segments or an absolute override, yield PathEscapeError.
func (resolver ContainmentResolver) Resolve(baseDirectory string, candidatePath string) (string, error) {
	normalizedBase := filepath.Clean(baseDirectory)

	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 || trimmedCandidate == currentDirectorySymbolConstant {
		return normalizedBase, nil
	}

	joinedCandidate := trimmedCandidate
	if !filepath.IsAbs(joinedCandidate) {
		joinedCandidate = filepath.Join(normalizedBase, joinedCandidate)
	}
	normalizedCandidate := filepath.Clean(joinedCandidate)

	if normalizedCandidate == normalizedBase {
		return normalizedCandidate, nil
	}

	relativePath, relativeError := filepath.Rel(normalizedBase, normalizedCandidate)
	if relativeError != nil {
		return "", PathEscapeError{BaseDirectory: normalizedBase, CandidatePath: candidatePath}
	}
	if relativePath == parentDirectorySegmentConstant || strings.HasPrefix(relativePath, parentSegmentWithSeparatorPrefix) {
		return "", PathEscapeError{BaseDirectory: normalizedBase, CandidatePath: candidatePath}
	}

	return normalizedCandidate, nil
}
