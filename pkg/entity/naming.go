package entity

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// Normalize converts a mixed-case property name to its column name:
// an underscore is inserted at every lowercase-to-uppercase transition and
// the whole string is lowercased. Already-normalized input passes through
// unchanged, so Normalize(Normalize(x)) == Normalize(x).
//
//	Normalize("dosageFormCategory") == "dosage_form_category"
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 3)

	prevLower := false
	for _, r := range name {
		if prevLower && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		prevLower = unicode.IsLower(r)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// TableName derives the default table name for an entity type name:
// the normalized name, pluralized ("Patient" -> "patients",
// "DosageForm" -> "dosage_forms"). Descriptors may override it.
func TableName(typeName string) string {
	return inflection.Plural(Normalize(typeName))
}
