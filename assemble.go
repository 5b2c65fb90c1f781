package numwords

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/feature/plural"
)

// cardinalTokens renders a magnitude as tokens. gender applies to the units
// group and to scales marked inherit; other groups agree with their scale
// noun. A chained scale multiplies the scale below it, so its group and the
// next lower group share that noun ("mil un billones").
func (t *RuleTable) cardinalTokens(magnitude int64, gender Gender) ([]token, error) {
	groups, err := Segment(magnitude)
	if err != nil {
		return nil, err
	}
	if magnitude == 0 {
		return appendWords(nil, t.zero, tokenWord), nil
	}

	rendered := make([][]token, 0, len(groups))
	for i, g := range groups {
		if g.Scale > len(t.scales) {
			return nil, &ConversionError{
				Kind:   KindValueTooLarge,
				Value:  magnitude,
				Reason: "scale exceeds " + t.code + " table",
			}
		}

		if g.Scale == 0 {
			rendered = append(rendered, t.renderGroup(g.Value, gender))
			continue
		}

		scale := t.scales[g.Scale-1]
		agree := scale.gender
		if agree == genderInherit {
			agree = gender
		}

		count := int64(g.Value)
		if i > 0 && groups[i-1].Scale == g.Scale+1 && t.scales[g.Scale].chain {
			count += int64(groups[i-1].Value) * groupBase
		}

		kind := tokenScale
		if scale.chain {
			kind = tokenWord
		}
		number, name := t.countWords(count, t.renderGroup(g.Value, agree), scale, kind)
		for j := range number {
			number[j].counted = true
		}
		if scale.chain {
			for j := range name {
				name[j].counted = true
			}
			if i+1 == len(groups) || groups[i+1].Scale != g.Scale-1 {
				lower := t.scales[g.Scale-2]
				name = append(name, appendWords(nil, lower.form(t.category(count*groupBase)), tokenScale)...)
			}
		}
		rendered = append(rendered, append(number, name...))
	}

	return t.joinGroups(groups, rendered), nil
}

// countWords pairs a rendered number with the counted noun n in the plural
// category of count. Bare categories drop the number entirely.
func (t *RuleTable) countWords(count int64, number []token, n noun, kind tokenKind) ([]token, []token) {
	category := t.category(count)
	name := appendWords(nil, n.form(category), kind)
	if n.isBare(category) {
		return nil, name
	}
	return t.applyMultiplier(number), name
}

// applyMultiplier swaps the final number word for its form before a noun
// (Spanish "uno" becomes "un").
func (t *RuleTable) applyMultiplier(number []token) []token {
	out := append([]token(nil), number...)
	if len(out) == 0 || len(t.multiplier) == 0 {
		return out
	}
	last := &out[len(out)-1]
	if last.kind != tokenWord {
		return out
	}
	if form, ok := t.multiplier[last.text]; ok {
		last.text = form
	}
	return out
}

func (t *RuleTable) joinGroups(groups []ScaleGroup, rendered [][]token) []token {
	var out []token
	final := len(rendered) - 1
	for i, words := range rendered {
		if i > 0 {
			switch t.conj.GroupPolicy {
			case GroupsAll:
				out = appendWords(out, t.conj.Groups, tokenConjunction)
			case GroupsFinalSmall:
				if i == final && groups[i].Scale == 0 && groups[i].Value < 100 {
					out = appendWords(out, t.conj.Groups, tokenConjunction)
				}
			}
		}
		out = append(out, words...)
	}
	return out
}

// category returns the CLDR cardinal category of count for the table's language.
func (t *RuleTable) category(count int64) PluralCategory {
	switch plural.Cardinal.MatchPlural(t.tag, int(count), 0, 0, 0, 0) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

func (t *RuleTable) negativeTokens() []token {
	return appendWords(nil, t.negative, tokenMarker)
}

// render joins tokens with single spaces. Title casing applies to every
// token except conjunctions, which keep their lexicon spelling.
func (t *RuleTable) render(tokens []token) string {
	var caser cases.Caser
	if t.titleCase {
		// Casers keep state, so each render gets its own.
		caser = cases.Title(t.tag)
	}

	var b strings.Builder
	for _, tok := range tokens {
		text := tok.text
		if t.titleCase && tok.kind != tokenConjunction {
			text = caser.String(text)
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	return b.String()
}
