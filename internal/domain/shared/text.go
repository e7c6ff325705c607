package shared

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TitleCase renders a lowercase identifier as a display label,
// e.g. "receipts create" becomes "Receipts Create".
func TitleCase(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}
