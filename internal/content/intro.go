package content

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// Filename prefixes that mark an introduction article.
var introPrefixes = []string{"intro", "overview"}

// numberedPrefix matches file names such as "01-welcome.md".
var numberedPrefix = regexp.MustCompile(`^\d{2}-`)

// IsIntroduction reports whether a column file should lead its column.
func IsIntroduction(fileName string) bool {
	lower := strings.ToLower(fileName)
	for _, p := range introPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return numberedPrefix.MatchString(fileName)
}

// SortFileNames orders column files: introductions first, then by file name.
func SortFileNames(names []string) {
	slices.SortStableFunc(names, compareFileNames)
}

func compareFileNames(a, b string) int {
	ai, bi := IsIntroduction(a), IsIntroduction(b)
	switch {
	case ai && !bi:
		return -1
	case !ai && bi:
		return 1
	}
	return cmp.Compare(a, b)
}
