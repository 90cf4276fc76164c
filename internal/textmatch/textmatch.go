// Package textmatch implements case-insensitive vocabulary matching with
// variant normalization and synonym expansion. Vocabulary and synonym tables
// live with their owning dimension (skills, keywords); this package only
// provides the matching mechanics.
package textmatch

import "strings"

// Synonyms maps a term to its semantically equivalent alternates.
// Expansion is bidirectional: if A lists B, text containing B satisfies A,
// and text containing A satisfies B.
type Synonyms map[string][]string

// Variants returns the normalized forms a term is matched under:
// the term itself, the term with whitespace removed, the term with '/' and
// '-' replaced by spaces, and the term with '/', '-', and whitespace all
// removed. This makes "a/b testing", "ab testing" and "abtesting"
// equivalent. All forms are lowercased and deduplicated.
func Variants(term string) []string {
	lower := strings.ToLower(term)

	noSpace := strings.ReplaceAll(lower, " ", "")
	spaced := strings.NewReplacer("/", " ", "-", " ").Replace(lower)
	collapsed := strings.NewReplacer("/", "", "-", "", " ", "").Replace(lower)

	return dedupe([]string{lower, noSpace, spaced, collapsed})
}

// Present reports whether any variant of term appears in text. Terms of
// four or more characters match as substrings; shorter terms ("r", "bi",
// "api") require word boundaries so they cannot match inside unrelated
// words. The text must already be lowercased by the caller; terms are
// lowercased here.
func Present(textLower, term string) bool {
	for _, v := range Variants(term) {
		if containsTerm(textLower, v) {
			return true
		}
	}
	return false
}

// shortTermLimit is the variant length at or below which word-boundary
// matching is required instead of plain substring matching.
const shortTermLimit = 3

func containsTerm(textLower, variant string) bool {
	if len(variant) > shortTermLimit {
		return strings.Contains(textLower, variant)
	}
	return containsWord(textLower, variant)
}

// containsWord reports whether variant occurs in text delimited by
// non-alphanumeric characters. strings-based rather than regexp so variants
// containing metacharacters ("c++", "c#") need no escaping.
func containsWord(textLower, variant string) bool {
	for from := 0; ; {
		i := strings.Index(textLower[from:], variant)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(variant)

		beforeOK := start == 0 || !isWordByte(textLower[start-1])
		afterOK := end == len(textLower) || !isWordByte(textLower[end])
		if beforeOK && afterOK {
			return true
		}
		from = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

// PresentWithSynonyms reports whether term or any of its synonym expansions
// appears in text. Beyond the term's own variants, the expansion includes
// the term's listed synonyms, and, for every table entry that lists term as
// a synonym, that entry's key and its sibling synonyms.
func PresentWithSynonyms(textLower, term string, syn Synonyms) bool {
	for _, v := range expand(term, syn) {
		if containsTerm(textLower, v) {
			return true
		}
	}
	return false
}

// ExtractPresent returns the vocabulary terms present in text, preserving
// vocabulary order and dropping duplicates. No synonym expansion is applied:
// extraction requires the term itself (in some variant form) to appear.
func ExtractPresent(vocabulary []string, text string) []string {
	textLower := strings.ToLower(text)

	var found []string
	seen := make(map[string]bool)
	for _, term := range vocabulary {
		if seen[term] {
			continue
		}
		if Present(textLower, term) {
			found = append(found, term)
			seen[term] = true
		}
	}
	return found
}

// Match splits the required terms into those present in text (with synonym
// expansion) and those absent. The result depends only on set membership,
// not on the order of required.
func Match(required []string, text string, syn Synonyms) (matching, missing []string) {
	textLower := strings.ToLower(text)

	for _, term := range required {
		if PresentWithSynonyms(textLower, term, syn) {
			matching = append(matching, term)
		} else {
			missing = append(missing, term)
		}
	}
	return matching, missing
}

// expand builds the full lowercase variant set for a term, including
// bidirectional synonym expansion.
func expand(term string, syn Synonyms) []string {
	forms := Variants(term)

	lower := strings.ToLower(term)
	for _, s := range syn[lower] {
		forms = append(forms, strings.ToLower(s))
	}

	for key, alternates := range syn {
		for _, alt := range alternates {
			if strings.EqualFold(alt, term) {
				forms = append(forms, strings.ToLower(key))
				for _, sibling := range alternates {
					forms = append(forms, strings.ToLower(sibling))
				}
				break
			}
		}
	}

	return dedupe(forms)
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
