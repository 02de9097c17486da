package extract

import "strings"

// healthKeywords is the lexicon used to decide whether a complaint is
// health-related before the questionnaire is generated.
var healthKeywords = map[string]bool{}

func init() {
	for _, w := range []string{
		"pain", "ache", "sore", "hurt", "fever", "cough", "cold", "flu",
		"headache", "stomach", "nausea", "vomit", "diarrhea", "diarrhoea",
		"rash", "itch", "burn", "bleed", "blood", "swollen", "swell",
		"dizzy", "fatigue", "tired", "weak", "breath", "chest", "heart",
		"skin", "eye", "ear", "throat", "nose", "mouth", "tongue",
		"joint", "muscle", "back", "neck", "knee", "leg", "arm", "hand",
		"foot", "feet", "head", "abdomen", "belly", "urine", "pee",
		"sleep", "insomnia", "anxiety", "stress", "depression", "mood",
		"weight", "appetite", "allergy", "sneeze", "phlegm", "mucus",
		"infection", "wound", "injury", "fracture", "cramp", "spasm",
		"numbness", "tingling", "vision", "blur", "deaf", "hearing",
		"constipation", "gas", "acidity", "ulcer", "diabetes", "sugar",
		"thyroid", "asthma", "tb", "malaria", "dengue", "typhoid",
		"jaundice", "hepatitis", "cancer", "tumor", "lump", "bump",
		"pimple", "acne", "boil", "cut", "bruise", "symptom", "disease",
		"illness", "sick", "unwell", "health", "medical", "doctor",
		"medicine", "drug", "treatment", "diagnosis", "condition",
		"sweat", "chills", "shiver", "restless", "palpitation",
	} {
		healthKeywords[w] = true
	}
}

// ambiguousSymptoms are vocabulary entries short or common enough that a
// fuzzy hit alone is weak evidence the complaint is medical.
var ambiguousSymptoms = map[string]bool{
	"back pain": true,
	"cold":      true,
	"gas":       true,
	"back":      true,
}

// ValidateComplaint reports whether text looks like a genuine health
// complaint. On rejection it returns a user-facing message explaining what
// is needed instead.
func (m *Matcher) ValidateComplaint(text string) (bool, string) {
	text = strings.TrimSpace(text)

	if len(text) < 5 {
		return false, "Please describe your health concern in more detail (at least a few words)."
	}
	if len(strings.Fields(text)) < 2 {
		return false, "Please describe your symptoms in a short sentence so we can help you better."
	}

	lower := strings.ToLower(text)
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.NewReplacer(",", " ", ".", " ").Replace(lower)) {
		words[w] = true
	}

	for w := range words {
		if healthKeywords[w] {
			return true, ""
		}
	}

	// Extraction cross-check, filtering out short ambiguous matches unless
	// they appear verbatim.
	var medical []string
	for _, s := range m.Extract(text) {
		sl := strings.ToLower(s)
		if !ambiguousSymptoms[sl] || strings.Contains(lower, sl) {
			medical = append(medical, sl)
		}
	}
	switch {
	case len(medical) > 1:
		return true, ""
	case len(medical) == 1:
		// A single fuzzy hit needs at least one of its words present.
		for _, sw := range strings.Fields(medical[0]) {
			if words[sw] {
				return true, ""
			}
		}
	}

	// Strict suffix stemming for plural and tense forms (headaches → headache).
	for w := range words {
		for _, stem := range suffixStems(w) {
			if healthKeywords[stem] {
				return true, ""
			}
		}
	}

	return false, "That doesn't seem to be a health-related concern. Please describe your symptoms or health issue (e.g. 'I have a persistent cough and fever')."
}

func suffixStems(w string) []string {
	stems := []string{w}
	if strings.HasSuffix(w, "s") && len(w) > 3 {
		stems = append(stems, w[:len(w)-1])
	}
	if strings.HasSuffix(w, "es") && len(w) > 4 {
		stems = append(stems, w[:len(w)-2])
	}
	if strings.HasSuffix(w, "ing") && len(w) > 5 {
		stems = append(stems, w[:len(w)-3])
	}
	if strings.HasSuffix(w, "ed") && len(w) > 4 {
		stems = append(stems, w[:len(w)-2])
	}
	if strings.HasSuffix(w, "ness") && len(w) > 6 {
		stems = append(stems, w[:len(w)-4])
	}
	return stems
}
