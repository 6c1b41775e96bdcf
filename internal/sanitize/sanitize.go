// Package sanitize holds the small pure validators and normalizers used
// before anything reaches the wire: identifier shape checks, soft
// descriptor cleanup and XML whitespace collapsing.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// softDescriptorMax is imposed by the gateway: anything longer is cut
// off on the customer's card statement.
const softDescriptorMax = 13

var interTag = regexp.MustCompile(`>\s+<`)

// IsValidGUID reports whether value matches the canonical 8-4-4-4-12
// hexadecimal identifier form, case-insensitive. Braced and URN
// variants are rejected.
func IsValidGUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// SoftDescriptor truncates s to 13 characters and transliterates it to
// plain ASCII by decomposing accented characters and dropping the
// combining marks. Empty input yields empty output.
func SoftDescriptor(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	if len(r) > softDescriptorMax {
		r = r[:softDescriptorMax]
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, string(r))
	if err != nil {
		out = string(r)
	}
	var b strings.Builder
	for _, c := range out {
		if c < unicode.MaxASCII {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Spaceless removes inter-tag whitespace from a rendered XML document,
// leaving text-node content untouched.
func Spaceless(xml string) string {
	return interTag.ReplaceAllString(strings.TrimSpace(xml), "><")
}
