package numwords

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Group joining policies.
const (
	GroupsNone       = "none"
	GroupsAll        = "all"
	GroupsFinalSmall = "final_small"
)

// Ordinal transformation scopes.
const (
	OrdinalScopeLast = "last"
	OrdinalScopeAll  = "all"
)

// Currency unit positions relative to the number.
const (
	UnitAfter  = "after"
	UnitBefore = "before"
)

// tableDoc is the on-disk shape of a rule table, shared by the embedded
// lexicon and override files.
type tableDoc struct {
	Code            string            `yaml:"code" json:"code"`
	Name            string            `yaml:"name" json:"name"`
	Aliases         []string          `yaml:"aliases" json:"aliases"`
	TitleCase       bool              `yaml:"title_case" json:"title_case"`
	Zero            string            `yaml:"zero" json:"zero"`
	Negative        string            `yaml:"negative" json:"negative"`
	Units           []string          `yaml:"units" json:"units"`
	Teens           []string          `yaml:"teens" json:"teens"`
	Tens            []string          `yaml:"tens" json:"tens"`
	Compounds       map[int]string    `yaml:"compounds" json:"compounds"`
	Hundred         string            `yaml:"hundred" json:"hundred"`
	HundredExact    string            `yaml:"hundred_exact" json:"hundred_exact"`
	Hundreds        []string          `yaml:"hundreds" json:"hundreds"`
	UnitsFirst      bool              `yaml:"units_before_tens" json:"units_before_tens"`
	Conjunctions    conjunctionDoc    `yaml:"conjunctions" json:"conjunctions"`
	MultiplierForms map[string]string `yaml:"multiplier_forms" json:"multiplier_forms"`
	Feminine        *genderDoc        `yaml:"feminine" json:"feminine"`
	Scales          []nounDoc         `yaml:"scales" json:"scales"`
	Ordinal         ordinalDoc        `yaml:"ordinal" json:"ordinal"`
	Currency        currencyDoc       `yaml:"currency" json:"currency"`
}

type conjunctionDoc struct {
	Hundreds    string `yaml:"hundreds" json:"hundreds"`
	Tens        string `yaml:"tens" json:"tens"`
	Groups      string `yaml:"groups" json:"groups"`
	GroupPolicy string `yaml:"group_policy" json:"group_policy"`
}

type genderDoc struct {
	Units     []string       `yaml:"units" json:"units"`
	Teens     []string       `yaml:"teens" json:"teens"`
	Compounds map[int]string `yaml:"compounds" json:"compounds"`
	Hundreds  []string       `yaml:"hundreds" json:"hundreds"`
}

type nounDoc struct {
	Forms  map[PluralCategory]string `yaml:"forms" json:"forms"`
	Bare   []PluralCategory          `yaml:"bare" json:"bare"`
	Gender Gender                    `yaml:"gender" json:"gender"`
	Chain  bool                      `yaml:"chain" json:"chain"`
}

type ordinalDoc struct {
	Scope            string            `yaml:"scope" json:"scope"`
	Exact            map[int64]string  `yaml:"exact" json:"exact"`
	Words            map[string]string `yaml:"words" json:"words"`
	Suffixes         []suffixDoc       `yaml:"suffixes" json:"suffixes"`
	DefaultSuffix    string            `yaml:"default_suffix" json:"default_suffix"`
	Prefix           string            `yaml:"prefix" json:"prefix"`
	DropConjunctions bool              `yaml:"drop_conjunctions" json:"drop_conjunctions"`
	FuseMultipliers  bool              `yaml:"fuse_multipliers" json:"fuse_multipliers"`
	DropBeforeScale  []string          `yaml:"drop_before_scale" json:"drop_before_scale"`
}

type suffixDoc struct {
	Ending  string `yaml:"ending" json:"ending"`
	Replace string `yaml:"replace" json:"replace"`
}

type currencyDoc struct {
	Joiner         string                     `yaml:"joiner" json:"joiner"`
	Position       string                     `yaml:"position" json:"position"`
	Partitive      *partitiveDoc              `yaml:"partitive" json:"partitive"`
	ElideZeroMinor bool                       `yaml:"elide_zero_minor" json:"elide_zero_minor"`
	ElideZeroMajor bool                       `yaml:"elide_zero_major" json:"elide_zero_major"`
	Units          map[string]currencyUnitDoc `yaml:"units" json:"units"`
}

type partitiveDoc struct {
	Word     string `yaml:"word" json:"word"`
	MinScale int    `yaml:"min_scale" json:"min_scale"`
}

type currencyUnitDoc struct {
	Major nounDoc  `yaml:"major" json:"major"`
	Minor *nounDoc `yaml:"minor" json:"minor"`
}

// RuleTable is the compiled, read only lexicon of one language.
// A table never changes after construction and may be shared freely.
type RuleTable struct {
	code      string
	name      string
	aliases   []string
	tag       language.Tag
	titleCase bool

	zero     string
	negative string

	lexicons     map[Gender]*lexicon
	hundred      string
	hundredExact string
	unitsFirst   bool
	conj         conjunctionDoc
	multiplier   map[string]string
	scales       []noun

	ordinal  ordinalRules
	currency currencyRules
}

type lexicon struct {
	units     [10]string
	teens     [10]string
	tens      [10]string
	hundreds  [10]string
	compounds map[int]string
}

type noun struct {
	forms  map[PluralCategory]string
	bare   map[PluralCategory]bool
	gender Gender
	// chain marks a scale that multiplies the scale below it.
	chain  bool
}

// form returns the noun for category, falling back to the other form.
func (n noun) form(category PluralCategory) string {
	if f, ok := n.forms[category]; ok && f != "" {
		return f
	}
	return n.forms[PluralOther]
}

func (n noun) isBare(category PluralCategory) bool {
	return n.bare[category]
}

type ordinalRules struct {
	scope           string
	exact           map[int64]string
	words           map[string]string
	suffixes        []suffixDoc
	defaultSuffix   string
	prefix          string
	dropConj        bool
	fuse            bool
	dropBeforeScale map[string]bool
}

type currencyRules struct {
	joiner         string
	position       string
	partitive      string
	partitiveScale int
	elideZeroMinor bool
	elideZeroMajor bool
	units          map[string]currencyNames
}

type currencyNames struct {
	major noun
	minor *noun
}

// Code returns the ISO 639 code the table is registered under.
func (t *RuleTable) Code() string { return t.code }

// Name returns the display name of the language.
func (t *RuleTable) Name() string { return t.name }

// Tag returns the language tag used for casing and plural rules.
func (t *RuleTable) Tag() language.Tag { return t.tag }

// Aliases returns the lower-cased codes and names that resolve to the table.
func (t *RuleTable) Aliases() []string {
	out := make([]string, len(t.aliases))
	copy(out, t.aliases)
	return out
}

// MaxScale returns the highest scale index the table names.
func (t *RuleTable) MaxScale() int { return len(t.scales) }

// Currencies returns the ISO codes the table has unit names for.
func (t *RuleTable) Currencies() []string {
	out := make([]string, 0, len(t.currency.units))
	for code := range t.currency.units {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func (t *RuleTable) lexicon(g Gender) *lexicon {
	if lex, ok := t.lexicons[g]; ok {
		return lex
	}
	return t.lexicons[Masculine]
}

func compileTable(doc tableDoc) (*RuleTable, error) {
	code := normalizeCode(doc.Code)
	if code == "" {
		return nil, fmt.Errorf("numwords: rule table without code")
	}

	tag, err := language.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("numwords: rule table %q: %w", code, err)
	}

	fail := func(format string, args ...any) error {
		return fmt.Errorf("numwords: rule table %q: "+format, append([]any{code}, args...)...)
	}

	if strings.TrimSpace(doc.Zero) == "" {
		return nil, fail("missing zero word")
	}
	if strings.TrimSpace(doc.Negative) == "" {
		return nil, fail("missing negative word")
	}

	base := &lexicon{compounds: cloneIntMap(doc.Compounds)}
	if err := fillWords(&base.units, doc.Units, 1); err != nil {
		return nil, fail("units: %v", err)
	}
	if err := fillWords(&base.teens, doc.Teens, 0); err != nil {
		return nil, fail("teens: %v", err)
	}
	if err := fillWords(&base.tens, doc.Tens, 2); err != nil {
		return nil, fail("tens: %v", err)
	}
	if len(doc.Hundreds) > 0 {
		if err := fillWords(&base.hundreds, doc.Hundreds, 1); err != nil {
			return nil, fail("hundreds: %v", err)
		}
	} else if strings.TrimSpace(doc.Hundred) == "" {
		return nil, fail("either hundred or hundreds is required")
	}
	for value := range base.compounds {
		if value < 20 || value > 99 {
			return nil, fail("compound %d outside 20-99", value)
		}
	}

	lexicons := map[Gender]*lexicon{Masculine: base}
	if doc.Feminine != nil {
		lexicons[Feminine] = overlayLexicon(base, doc.Feminine)
	}

	switch doc.Conjunctions.GroupPolicy {
	case "":
		doc.Conjunctions.GroupPolicy = GroupsNone
	case GroupsNone, GroupsAll, GroupsFinalSmall:
	default:
		return nil, fail("unknown group policy %q", doc.Conjunctions.GroupPolicy)
	}

	if len(doc.Scales) == 0 {
		return nil, fail("no scales defined")
	}
	scales := make([]noun, 0, len(doc.Scales))
	for i, s := range doc.Scales {
		n, err := compileNoun(s)
		if err != nil {
			return nil, fail("scale %d: %v", i+1, err)
		}
		if n.chain && i == 0 {
			return nil, fail("scale 1: chain needs a lower scale")
		}
		scales = append(scales, n)
	}

	ordinal, err := compileOrdinal(doc.Ordinal)
	if err != nil {
		return nil, fail("ordinal: %v", err)
	}

	cur, err := compileCurrency(doc.Currency)
	if err != nil {
		return nil, fail("currency: %v", err)
	}

	aliases := normalizeCodes(append([]string{code}, doc.Aliases...))

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		name = code
	}

	return &RuleTable{
		code:         code,
		name:         name,
		aliases:      aliases,
		tag:          tag,
		titleCase:    doc.TitleCase,
		zero:         doc.Zero,
		negative:     doc.Negative,
		lexicons:     lexicons,
		hundred:      doc.Hundred,
		hundredExact: doc.HundredExact,
		unitsFirst:   doc.UnitsFirst,
		conj:         doc.Conjunctions,
		multiplier:   cloneStringMap(doc.MultiplierForms),
		scales:       scales,
		ordinal:      ordinal,
		currency:     cur,
	}, nil
}

// fillWords copies ten entries into dst; entries from index required on must
// be non-empty.
func fillWords(dst *[10]string, src []string, required int) error {
	if len(src) != len(dst) {
		return fmt.Errorf("want %d entries, got %d", len(dst), len(src))
	}
	for i, word := range src {
		word = strings.TrimSpace(word)
		if i >= required && word == "" {
			return fmt.Errorf("entry %d is empty", i)
		}
		dst[i] = word
	}
	return nil
}

// overlayLexicon returns a copy of base with the non-empty gendered entries
// of doc applied on top.
func overlayLexicon(base *lexicon, doc *genderDoc) *lexicon {
	out := *base
	out.compounds = cloneIntMap(base.compounds)

	overlay := func(dst *[10]string, src []string) {
		for i, word := range src {
			if i >= len(dst) {
				break
			}
			if word = strings.TrimSpace(word); word != "" {
				dst[i] = word
			}
		}
	}
	overlay(&out.units, doc.Units)
	overlay(&out.teens, doc.Teens)
	overlay(&out.hundreds, doc.Hundreds)

	for value, word := range doc.Compounds {
		if out.compounds == nil {
			out.compounds = make(map[int]string, len(doc.Compounds))
		}
		out.compounds[value] = word
	}
	return &out
}

func compileNoun(doc nounDoc) (noun, error) {
	n := noun{
		forms:  make(map[PluralCategory]string, len(doc.Forms)),
		bare:   make(map[PluralCategory]bool, len(doc.Bare)),
		gender: doc.Gender,
		chain:  doc.Chain,
	}
	for category, form := range doc.Forms {
		if !validCategory(category) {
			return noun{}, fmt.Errorf("unknown plural category %q", category)
		}
		n.forms[category] = strings.TrimSpace(form)
	}
	if n.forms[PluralOther] == "" {
		return noun{}, fmt.Errorf("missing %q form", PluralOther)
	}
	for _, category := range doc.Bare {
		if !validCategory(category) {
			return noun{}, fmt.Errorf("unknown bare category %q", category)
		}
		n.bare[category] = true
	}
	switch n.gender {
	case "":
		n.gender = Masculine
	case Masculine, Feminine, genderInherit:
	default:
		return noun{}, fmt.Errorf("unknown gender %q", doc.Gender)
	}
	return n, nil
}

func compileOrdinal(doc ordinalDoc) (ordinalRules, error) {
	scope := doc.Scope
	switch scope {
	case "":
		scope = OrdinalScopeLast
	case OrdinalScopeLast, OrdinalScopeAll:
	default:
		return ordinalRules{}, fmt.Errorf("unknown scope %q", doc.Scope)
	}

	for i, s := range doc.Suffixes {
		if s.Ending == "" {
			return ordinalRules{}, fmt.Errorf("suffix rule %d has no ending", i)
		}
	}

	drop := make(map[string]bool, len(doc.DropBeforeScale))
	for _, word := range doc.DropBeforeScale {
		drop[word] = true
	}

	exact := make(map[int64]string, len(doc.Exact))
	for value, word := range doc.Exact {
		exact[value] = word
	}

	return ordinalRules{
		scope:           scope,
		exact:           exact,
		words:           cloneStringMap(doc.Words),
		suffixes:        append([]suffixDoc(nil), doc.Suffixes...),
		defaultSuffix:   doc.DefaultSuffix,
		prefix:          doc.Prefix,
		dropConj:        doc.DropConjunctions,
		fuse:            doc.FuseMultipliers,
		dropBeforeScale: drop,
	}, nil
}

func compileCurrency(doc currencyDoc) (currencyRules, error) {
	position := doc.Position
	switch position {
	case "":
		position = UnitAfter
	case UnitAfter, UnitBefore:
	default:
		return currencyRules{}, fmt.Errorf("unknown unit position %q", doc.Position)
	}

	rules := currencyRules{
		joiner:         doc.Joiner,
		position:       position,
		elideZeroMinor: doc.ElideZeroMinor,
		elideZeroMajor: doc.ElideZeroMajor,
		units:          make(map[string]currencyNames, len(doc.Units)),
	}
	if doc.Partitive != nil && doc.Partitive.Word != "" {
		rules.partitive = doc.Partitive.Word
		rules.partitiveScale = doc.Partitive.MinScale
	}

	for code, unit := range doc.Units {
		parsed, err := currency.ParseISO(code)
		if err != nil {
			return currencyRules{}, fmt.Errorf("unit %q: %w", code, err)
		}

		major, err := compileNoun(unit.Major)
		if err != nil {
			return currencyRules{}, fmt.Errorf("unit %q major: %v", code, err)
		}
		if err := unitNoun(major); err != nil {
			return currencyRules{}, fmt.Errorf("unit %q major: %v", code, err)
		}
		names := currencyNames{major: major}
		if unit.Minor != nil {
			minor, err := compileNoun(*unit.Minor)
			if err == nil {
				err = unitNoun(minor)
			}
			if err != nil {
				return currencyRules{}, fmt.Errorf("unit %q minor: %v", code, err)
			}
			names.minor = &minor
		}
		rules.units[parsed.String()] = names
	}
	return rules, nil
}

// unitNoun rejects scale-only settings on a currency noun.
func unitNoun(n noun) error {
	if n.gender == genderInherit {
		return fmt.Errorf("gender %q is only valid on scales", genderInherit)
	}
	if n.chain {
		return fmt.Errorf("chain is only valid on scales")
	}
	return nil
}

func validCategory(c PluralCategory) bool {
	switch c {
	case PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther:
		return true
	}
	return false
}

func cloneStringMap(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func cloneIntMap(src map[int]string) map[int]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[int]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
