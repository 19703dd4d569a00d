// Package textutil provides small text helpers shared by the scoring text
// composer and the page renderer.
package textutil

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	rangeRe    = regexp.MustCompile(`(\d+)\D+(\d+)`)
	digitRunRe = regexp.MustCompile(`\d+`)
)

// Slugify decomposes accents, drops every non-ASCII rune, collapses runs of
// non-alphanumerics into "-" and lowercases the result.
func Slugify(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	ascii, _, err := transform.String(t, s)
	if err != nil {
		ascii = s
	}
	return strings.ToLower(strings.Trim(nonAlnum.ReplaceAllString(ascii, "-"), "-"))
}

// JoinPT joins non-empty items the Portuguese way: "a", "a e b",
// "a, b e c".
func JoinPT(items []string) string {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			kept = append(kept, it)
		}
	}
	switch len(kept) {
	case 0:
		return ""
	case 1:
		return kept[0]
	case 2:
		return kept[0] + " e " + kept[1]
	default:
		return strings.Join(kept[:len(kept)-1], ", ") + " e " + kept[len(kept)-1]
	}
}

// Attr escapes s for use inside an HTML attribute or text node.
func Attr(s string) string {
	return html.EscapeString(s)
}

// ParseMinMax extracts a numeric range from free text such as "55–61" or
// "12 a 15". A single number yields min == max. ok is false when no usable
// number is present or the text is the "—" placeholder.
func ParseMinMax(txt string) (lo, hi int, ok bool) {
	if txt == "" || txt == "—" {
		return 0, 0, false
	}
	if m := rangeRe.FindStringSubmatch(txt); m != nil {
		lo, _ = strconv.Atoi(m[1])
		hi, _ = strconv.Atoi(m[2])
		return lo, hi, true
	}
	nums := digitRunRe.FindAllString(txt, -1)
	if len(nums) == 1 {
		v, _ := strconv.Atoi(nums[0])
		return v, v, true
	}
	return 0, 0, false
}
