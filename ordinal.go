package numwords

import "strings"

// ordinalTokens renders the ordinal form of a magnitude. Tables either fix
// the whole form for small values or rewrite the cardinal tokens.
func (t *RuleTable) ordinalTokens(magnitude int64) ([]token, error) {
	if word, ok := t.ordinal.exact[magnitude]; ok {
		return appendWords(nil, word, tokenWord), nil
	}

	cardinal, err := t.cardinalTokens(magnitude, Masculine)
	if err != nil {
		return nil, err
	}

	if t.ordinal.scope == OrdinalScopeAll {
		return t.ordinal.rewriteAll(cardinal), nil
	}
	return t.ordinal.rewriteLast(cardinal), nil
}

// transform maps one cardinal word to its ordinal: explicit words first,
// then the first matching suffix rule, then the default suffix or prefix.
func (r ordinalRules) transform(word string) string {
	if w, ok := r.words[word]; ok {
		return w
	}
	for _, s := range r.suffixes {
		if strings.HasSuffix(word, s.Ending) {
			return strings.TrimSuffix(word, s.Ending) + s.Replace
		}
	}
	if r.defaultSuffix != "" {
		return word + r.defaultSuffix
	}
	return r.prefix + word
}

func (r ordinalRules) rewriteLast(tokens []token) []token {
	last := -1
	for i, tok := range tokens {
		if tok.kind == tokenWord || tok.kind == tokenScale {
			last = i
		}
	}
	if last < 0 {
		return tokens
	}

	out := make([]token, 0, len(tokens)+1)
	out = append(out, tokens[:last]...)
	out = appendWords(out, r.transform(tokens[last].text), tokens[last].kind)
	return append(out, tokens[last+1:]...)
}

// rewriteAll rewrites every number and scale word. With fusing, the cardinal
// multiplier of a scale noun is glued onto the ordinal noun
// ("dos mil" becomes "dosmilésimo").
func (r ordinalRules) rewriteAll(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	var pending []string

	for _, tok := range tokens {
		switch {
		case tok.kind == tokenConjunction:
			if r.dropConj || (r.fuse && tok.counted) {
				continue
			}
			out = append(out, tok)
		case tok.kind == tokenMarker:
			out = append(out, tok)
		case r.fuse && tok.counted:
			pending = append(pending, tok.text)
		case r.fuse && tok.kind == tokenScale:
			prefix := strings.Join(pending, "")
			if len(pending) == 1 && r.dropBeforeScale[pending[0]] {
				prefix = ""
			}
			pending = nil
			out = appendWords(out, prefix+r.transform(tok.text), tok.kind)
		default:
			out = appendWords(out, r.transform(tok.text), tok.kind)
		}
	}
	return out
}
