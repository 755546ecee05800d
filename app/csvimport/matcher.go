package csvimport

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var stopWords = map[string]bool{
	"and":         true,
	"the":         true,
	"for":         true,
	"with":        true,
	"lab":         true,
	"programming": true,
}

// MatchSubject finds the canonical subject an imported course label refers to.
//
// An exact case-insensitive match wins outright. Otherwise the first canonical name
// that agrees with the label on being a lab course and shares enough keywords with it
// is chosen: one keyword for labs, min(2, keywords in the canonical name) otherwise.
// Two keywords are shared when either contains the other.
func MatchSubject(label string, canonical []string) (int, bool) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return 0, false
	}
	for i, name := range canonical {
		if strings.ToLower(strings.TrimSpace(name)) == needle {
			return i, true
		}
	}

	labelIsLab := isLab(needle)
	labelKeywords := keywords(needle)
	for i, name := range canonical {
		if isLab(name) != labelIsLab {
			continue
		}
		nameKeywords := keywords(name)
		if len(nameKeywords) == 0 {
			continue
		}
		required := min(2, len(nameKeywords))
		if labelIsLab {
			required = 1
		}
		if sharedKeywords(nameKeywords, labelKeywords) >= required {
			return i, true
		}
	}
	return 0, false
}

func isLab(s string) bool {
	return strings.Contains(strings.ToLower(s), "lab")
}

// keywords lowercases s, splits it on whitespace and hyphens and keeps the tokens
// longer than three characters that are not stop words.
func keywords(s string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	out := tokens[:0]
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 3 || stopWords[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// sharedKeywords counts the canonical keywords that pair with some label keyword.
func sharedKeywords(canonical, label []string) int {
	n := 0
	for _, c := range canonical {
		for _, l := range label {
			if strings.Contains(c, l) || strings.Contains(l, c) {
				n++
				break
			}
		}
	}
	return n
}
