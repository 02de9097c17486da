// Package steps builds the complaint-tailored follow-up questionnaire.
// Relevance comes from static keyword tables rather than a model: the
// questionnaire stays interpretable, deterministic for a given complaint,
// and extensible by editing the tables.
package steps

import (
	"sort"
	"strings"

	"github.com/arkodeep/healthtriage/internal/extract"
)

// DefaultCategoryCutoff is the fuzzy-match threshold for scoring symptom
// categories against complaint tokens.
const DefaultCategoryCutoff = 0.60

// Config holds planner tuning knobs.
type Config struct {
	// CategoryCutoff is the fuzzy similarity threshold for category
	// relevance scoring.
	CategoryCutoff float64
	// TopCategories caps how many symptom categories are shown.
	TopCategories int
}

// DefaultConfig returns the standard planner configuration.
func DefaultConfig() Config {
	return Config{
		CategoryCutoff: DefaultCategoryCutoff,
		TopCategories:  5,
	}
}

// Planner turns complaint text into an ordered questionnaire.
type Planner struct {
	matcher *extract.Matcher
	cfg     Config
}

// NewPlanner creates a Planner. The matcher supplies symptom extraction
// for category relevance and auto-selection.
func NewPlanner(m *extract.Matcher, cfg Config) *Planner {
	if cfg.TopCategories <= 0 {
		cfg.TopCategories = DefaultConfig().TopCategories
	}
	if cfg.CategoryCutoff <= 0 {
		cfg.CategoryCutoff = DefaultCategoryCutoff
	}
	return &Planner{matcher: m, cfg: cfg}
}

// Plan returns the ordered questionnaire steps for a complaint. The result
// is deterministic for a given complaint text and fixed keyword tables;
// answers feed a later diagnosis call, never replanning.
func (p *Planner) Plan(complaint string) []Step {
	lower := strings.ToLower(complaint)
	extracted := p.matcher.Extract(complaint)

	areas := matchRules(lower, bodyAreaRules, defaultBodyAreas)
	conditions := matchRules(lower, conditionRules, nil)
	family := matchRules(lower, familyRules, nil)
	factors := matchRules(lower, lifestyleRules, defaultLifestyleFactors)

	return []Step{
		durationStep(lower),
		severityStep(),
		bodyAreaStep(areas),
		p.symptomStep(lower, extracted),
		preexistingStep(conditions),
		lifestyleStep(factors),
		familyHistoryStep(family),
	}
}

// matchRules scans the complaint for each rule keyword as a substring and
// collects the union of mapped values in table order, skipping duplicates.
// An empty result is replaced by defaults (which may be nil).
func matchRules(lower string, rules []Rule, defaults []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range rules {
		if !strings.Contains(lower, r.Keyword) {
			continue
		}
		for _, v := range r.Values {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaults...)
	}
	return out
}

// relevantFirst orders the detected subset first (in detection order), then
// the remaining catalogue entries in catalogue order. Every catalogue entry
// stays reachable; this is a display policy, not a filter.
func relevantFirst(detected, catalogue []string) []string {
	out := make([]string, 0, len(catalogue))
	seen := make(map[string]bool, len(detected))
	for _, d := range detected {
		seen[d] = true
		out = append(out, d)
	}
	for _, c := range catalogue {
		if !seen[c] {
			out = append(out, c)
		}
	}
	return out
}

func durationStep(lower string) Step {
	options := generalDurations
	switch {
	case containsAny(lower, acutePhrases):
		options = acuteDurations
	case containsAny(lower, chronicPhrases):
		options = chronicDurations
	}
	return Step{
		ID:       "duration",
		Title:    "How long have you had this?",
		Subtitle: "Select the option closest to when your symptoms began",
		Type:     KindSingleChoice,
		Options:  append([]string(nil), options...),
	}
}

func severityStep() Step {
	return Step{
		ID:        "severity",
		Title:     "How severe are your symptoms?",
		Subtitle:  "Pick the description that fits best",
		Type:      KindDescribedChoice,
		Described: append([]DescribedOption(nil), severityOptions...),
	}
}

func bodyAreaStep(detected []string) Step {
	catalogue := make([]string, len(BodyAreaCatalogue))
	for i, a := range BodyAreaCatalogue {
		catalogue[i] = a.Area
	}
	return Step{
		ID:        "body_areas",
		Title:     "Which areas of your body are affected?",
		Subtitle:  "Select all that apply",
		Type:      KindMultiChoice,
		Options:   relevantFirst(detected, catalogue),
		Suggested: detected,
		HasOther:  true,
		OtherKey:  "other_body_areas",
	}
}

// symptomStep ranks symptom categories by relevance to the complaint and
// shows the top few, pre-checking any symptom the matcher already found.
func (p *Planner) symptomStep(lower string, extracted []string) Step {
	tokens := strings.Fields(strings.NewReplacer(",", " ", ".", " ").Replace(lower))
	inExtracted := make(map[string]bool, len(extracted))
	for _, s := range extracted {
		inExtracted[strings.ToLower(s)] = true
	}

	type ranked struct {
		cat   Category
		score int
	}
	all := make([]ranked, 0, len(SymptomCategories))
	for _, cat := range SymptomCategories {
		score := 0
		for _, sym := range cat.Symptoms {
			if strings.Contains(lower, sym) || fuzzyAnyToken(sym, tokens, p.cfg.CategoryCutoff) {
				score += 3
			}
			if inExtracted[sym] {
				score += 2
			}
		}
		all = append(all, ranked{cat, score})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	n := min(p.cfg.TopCategories, len(all))
	shown := make([]Category, n)
	for i := 0; i < n; i++ {
		shown[i] = all[i].cat
	}

	var auto []string
	for _, cat := range shown {
		for _, sym := range cat.Symptoms {
			if inExtracted[sym] {
				auto = append(auto, sym)
			}
		}
	}

	return Step{
		ID:           "symptoms",
		Title:        "Do you have any of these symptoms?",
		Subtitle:     "We've grouped them by the areas most relevant to your complaint",
		Type:         KindCategorizedCheckbox,
		Categories:   shown,
		AutoSelected: auto,
		HasOther:     true,
		OtherKey:     "other_symptoms",
	}
}

func fuzzyAnyToken(sym string, tokens []string, cutoff float64) bool {
	for _, tok := range tokens {
		if extract.Similarity(tok, sym) >= cutoff {
			return true
		}
	}
	return false
}

func preexistingStep(detected []string) Step {
	return Step{
		ID:        "preexisting",
		Title:     "Do you have any pre-existing conditions?",
		Subtitle:  "Select all that apply",
		Type:      KindMultiChoice,
		Options:   relevantFirst(detected, PreexistingConditions),
		Suggested: detected,
		HasOther:  true,
		OtherKey:  "other_conditions",
	}
}

// lifestyleStep orders the detected factors first but always exposes the
// full factor mapping.
func lifestyleStep(detected []string) Step {
	byKey := make(map[string]Group, len(LifestyleFactors))
	for _, g := range LifestyleFactors {
		byKey[g.Key] = g
	}
	catalogue := make([]string, len(LifestyleFactors))
	for i, g := range LifestyleFactors {
		catalogue[i] = g.Key
	}

	ordered := relevantFirst(detected, catalogue)
	groups := make([]Group, 0, len(ordered))
	for _, key := range ordered {
		if g, ok := byKey[key]; ok {
			groups = append(groups, g)
		}
	}

	return Step{
		ID:        "lifestyle",
		Title:     "Tell us about your lifestyle",
		Subtitle:  "These factors help refine the assessment",
		Type:      KindGroupedChoice,
		Groups:    groups,
		Suggested: detected,
	}
}

func familyHistoryStep(detected []string) Step {
	return Step{
		ID:        "family_history",
		Title:     "Any conditions that run in your family?",
		Subtitle:  "Select all that apply",
		Type:      KindMultiChoice,
		Options:   relevantFirst(detected, FamilyHistoryOptions),
		Suggested: detected,
	}
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
