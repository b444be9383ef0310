// Package slug derives identifiers that are safe both as file name stems
// and as XML id attributes.
package slug

import (
	"crypto/md5" // #nosec G501 -- digest is used for disambiguation, not security
	"encoding/hex"
	"regexp"
	"strings"
)

// Rules applied to every identifier.
const (
	// MinLength is the shortest base accepted without a disambiguator.
	MinLength = 4
	// HashLength is the number of hex characters taken from the digest.
	HashLength = 16
	// FallbackPrefix replaces a base that does not start with a letter.
	FallbackPrefix = "p-"
	// ColumnPrefix is stripped from the source before hashing when the
	// slugified base starts with it.
	ColumnPrefix = "column-"
)

var (
	whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r\p{Z}\x{feff}]+`)
	disallowed    = regexp.MustCompile(`[^a-z0-9-]`)
)

// Make returns a lowercase identifier made of [a-z0-9-] that always starts
// with a letter. Bases that are short or do not start with a letter get a
// deterministic digest of the original string appended, so distinct titles
// that collapse to the same base still map to distinct identifiers.
func Make(s string) string {
	base := Base(s)
	if startsWithLetter(base) && len(base) >= MinLength {
		return base
	}
	return Disambiguated(s)
}

// Disambiguated always appends the digest of s to its base, whatever the
// base length. Callers use it when Make(s) names something already taken.
func Disambiguated(s string) string {
	base := Base(s)
	source := s
	if strings.HasPrefix(base, ColumnPrefix) {
		source = strings.TrimPrefix(s, ColumnPrefix)
	}
	hash := Hash(source)

	if startsWithLetter(base) {
		return base + hash
	}
	return FallbackPrefix + hash
}

// Base lowercases s, turns whitespace runs into single hyphens, drops every
// character outside [a-z0-9-] and trims hyphens at both ends.
func Base(s string) string {
	base := strings.ToLower(s)
	base = whitespaceRun.ReplaceAllString(base, "-")
	base = disallowed.ReplaceAllString(base, "")
	return strings.Trim(base, "-")
}

// Hash returns the first HashLength hex characters of the MD5 digest of s.
func Hash(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401 -- not a security boundary
	return hex.EncodeToString(sum[:])[:HashLength]
}

// IsValid reports whether s could have been produced by Make.
func IsValid(s string) bool {
	return startsWithLetter(s) && !disallowed.MatchString(s)
}

func startsWithLetter(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}
