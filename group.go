package numwords

import "strings"

type tokenKind uint8

const (
	tokenWord tokenKind = iota
	tokenConjunction
	tokenScale
	tokenMarker
	tokenUnit
)

// token is one rendered word. counted marks number words that multiply the
// scale noun following them.
type token struct {
	text    string
	kind    tokenKind
	counted bool
}

// appendWords splits text on whitespace so multi-word lexicon entries become
// individual tokens.
func appendWords(dst []token, text string, kind tokenKind) []token {
	for _, word := range strings.Fields(text) {
		dst = append(dst, token{text: word, kind: kind})
	}
	return dst
}

// renderGroup renders a value in [0, 999]. Zero contributes no tokens.
func (t *RuleTable) renderGroup(g int, gender Gender) []token {
	if g <= 0 || g >= groupBase {
		return nil
	}

	lex := t.lexicon(gender)
	var out []token

	h, r := g/100, g%100
	if h > 0 {
		out = appendWords(out, t.hundredWord(lex, h, r), tokenWord)
		if r > 0 {
			out = appendWords(out, t.conj.Hundreds, tokenConjunction)
		}
	}

	switch {
	case r == 0:
	case r < 10:
		out = appendWords(out, lex.units[r], tokenWord)
	case r < 20:
		out = appendWords(out, lex.teens[r-10], tokenWord)
	default:
		if word, ok := lex.compounds[r]; ok {
			out = appendWords(out, word, tokenWord)
			break
		}

		tens, units := lex.tens[r/10], r%10
		if units == 0 {
			out = appendWords(out, tens, tokenWord)
			break
		}

		if t.unitsFirst {
			out = appendWords(out, lex.units[units], tokenWord)
			out = appendWords(out, t.conj.Tens, tokenConjunction)
			out = appendWords(out, tens, tokenWord)
		} else {
			out = appendWords(out, tens, tokenWord)
			out = appendWords(out, t.conj.Tens, tokenConjunction)
			out = appendWords(out, lex.units[units], tokenWord)
		}
	}

	return out
}

// hundredWord returns the hundreds component for digit h. Tables either list
// every hundred (irregular forms) or compose unit + hundred.
func (t *RuleTable) hundredWord(lex *lexicon, h, remainder int) string {
	if h == 1 && remainder == 0 && t.hundredExact != "" {
		return t.hundredExact
	}
	if word := lex.hundreds[h]; word != "" {
		return word
	}
	return t.lexicon(Masculine).units[h] + " " + t.hundred
}
