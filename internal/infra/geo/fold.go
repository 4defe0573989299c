package geo

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// abbreviations expand leading tokens so "St. Louis" and "Saint Louis" fold alike.
var abbreviations = map[string]string{
	"st":  "saint",
	"ste": "sainte",
	"ft":  "fort",
	"mt":  "mount",
}

// fold reduces a locality name to its comparison key: accents stripped,
// case folded, punctuation collapsed to single spaces and leading
// abbreviations expanded.
func fold(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}

	fields := strings.FieldsFunc(cases.Fold().String(stripped), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(fields) == 0 {
		return ""
	}
	if full, ok := abbreviations[fields[0]]; ok {
		fields[0] = full
	}

	return strings.Join(fields, " ")
}

// sqlFoldFrom and sqlFoldTo are the translate() arguments that map every
// precomposed Latin letter to its folded form. Combining marks trail
// sqlFoldFrom without a counterpart, so translate() drops them.
var sqlFoldFrom, sqlFoldTo = foldTranslation()

func foldTranslation() (string, string) {
	var from, to strings.Builder

	letters := func(lo, hi rune) {
		for r := lo; r <= hi; r++ {
			if !unicode.IsLetter(r) {
				continue
			}
			key := fold(string(r))
			if utf8.RuneCountInString(key) != 1 || key == string(r) {
				continue
			}
			from.WriteRune(r)
			to.WriteString(key)
		}
	}
	letters('A', 'Z')
	letters(0x00C0, 0x024F)

	for r := rune(0x0300); r <= 0x036F; r++ {
		from.WriteRune(r)
	}

	return from.String(), to.String()
}

// LocalityKeySQL returns a Postgres expression computing the locality key of
// column, matching LocalityKey for names in Latin script.
func LocalityKeySQL(column string) string {
	expr := fmt.Sprintf(
		"btrim(regexp_replace(lower(replace(translate(%s, '%s', '%s'), 'ß', 'ss')), '[^[:alnum:]]+', ' ', 'g'))",
		column, sqlFoldFrom, sqlFoldTo,
	)

	short := make([]string, 0, len(abbreviations))
	for abbr := range abbreviations {
		short = append(short, abbr)
	}
	slices.Sort(short)

	for _, abbr := range short {
		expr = fmt.Sprintf(`regexp_replace(%s, '^%s( |$)', '%s\1')`, expr, abbr, abbreviations[abbr])
	}

	return expr
}
