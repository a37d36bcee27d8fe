package pathutils

import "strings"

// PathSanitizer normalizes path inputs consistently across commands.
type PathSanitizer struct {
	homeExpander *HomeExpander
}

// NewPathSanitizer constructs a PathSanitizer with the default home expander.
func NewPathSanitizer() *PathSanitizer {
	return NewPathSanitizerWithExpander(nil)
}

// NewPathSanitizerWithExpander constructs a PathSanitizer using the provided expander.
func NewPathSanitizerWithExpander(homeExpander *HomeExpander) *PathSanitizer {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &PathSanitizer{homeExpander: resolvedExpander}
}

// Sanitize trims whitespace, expands the user's home directory, and removes empty values.
func (sanitizer *PathSanitizer) Sanitize(candidatePaths []string) []string {
	expander := sanitizer.resolveExpander()

	sanitizedPaths := make([]string, 0, len(candidatePaths))
	for candidateIndex := range candidatePaths {
		trimmedCandidate := strings.TrimSpace(candidatePaths[candidateIndex])
		if len(trimmedCandidate) == 0 {
			continue
		}

		expandedPath := expander.Expand(trimmedCandidate)
		if len(expandedPath) == 0 {
			continue
		}

		sanitizedPaths = append(sanitizedPaths, expandedPath)
	}

	if len(sanitizedPaths) == 0 {
		return nil
	}
	return sanitizedPaths
}

func (sanitizer *PathSanitizer) resolveExpander() *HomeExpander {
	if sanitizer == nil || sanitizer.homeExpander == nil {
		return NewHomeExpander()
	}
	return sanitizer.homeExpander
}
