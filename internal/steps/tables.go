package steps

import "fmt"

// Category groups related symptoms for the checkbox step.
type Category struct {
	Name     string   `json:"name"`
	Symptoms []string `json:"symptoms"`
}

// SymptomCategories is the fixed, ordered catalogue of symptom groups.
var SymptomCategories = []Category{
	{"General", []string{"fatigue", "weight loss", "weight gain", "high fever", "lethargy",
		"malaise", "sweating", "chills", "shivering", "restlessness"}},
	{"Head & Neurological", []string{"headache", "dizziness", "lack of concentration",
		"altered sensorium", "visual disturbances", "spinning movements",
		"loss of balance", "unsteadiness"}},
	{"Respiratory", []string{"cough", "breathlessness", "continuous sneezing", "phlegm",
		"throat irritation", "sinus pressure", "runny nose", "congestion",
		"mucoid sputum", "rusty sputum", "blood in sputum"}},
	{"Digestive", []string{"stomach pain", "acidity", "vomiting", "nausea", "diarrhoea",
		"constipation", "loss of appetite", "indigestion", "abdominal pain",
		"passage of gases", "belly pain", "distention of abdomen",
		"pain during bowel movements", "bloody stool"}},
	{"Skin", []string{"skin rash", "itching", "nodal skin eruptions", "yellowish skin",
		"pus filled pimples", "blackheads", "scurring", "skin peeling",
		"blister", "red sore around nose", "yellow crust ooze",
		"dischromic  patches", "bruising"}},
	{"Musculoskeletal", []string{"joint pain", "muscle pain", "back pain", "neck pain",
		"knee pain", "hip joint pain", "muscle weakness",
		"stiff neck", "swelling joints", "movement stiffness",
		"muscle wasting", "painful walking", "cramps"}},
	{"Urinary", []string{"burning micturition", "spotting  urination", "dark urine",
		"yellow urine", "foul smell of urine", "continuous feel of urine",
		"bladder discomfort", "polyuria"}},
	{"Cardiovascular", []string{"chest pain", "fast heart rate", "palpitations",
		"prominent veins on calf", "swollen blood vessels",
		"cold hands and feets", "swollen legs"}},
	{"Mental Health", []string{"anxiety", "mood swings", "irritability", "depression",
		"restlessness", "lack of concentration"}},
	{"Eyes & Ears", []string{"blurred and distorted vision", "redness of eyes",
		"watering from eyes", "sunken eyes", "pain behind the eyes",
		"yellowing of eyes"}},
}

// PreexistingConditions is the fixed catalogue for the medical-history step.
var PreexistingConditions = []string{
	"Diabetes", "Hypertension", "Heart Disease", "Asthma / COPD",
	"Thyroid Disorder", "Liver Disease", "Kidney Disease", "Cancer",
	"Arthritis", "HIV/AIDS", "Tuberculosis", "Epilepsy", "None",
}

// FamilyHistoryOptions is the fixed catalogue for the family-history step.
var FamilyHistoryOptions = []string{
	"Heart Disease", "Diabetes", "Cancer", "Hypertension",
	"Asthma", "Thyroid Disorder", "Mental Health Issues",
	"Liver Disease", "Kidney Disease", "Arthritis", "None",
}

// Group is one lifestyle factor with its answer options.
type Group struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// LifestyleFactors is the ordered lifestyle catalogue.
var LifestyleFactors = []Group{
	{"exercise", "Exercise Frequency", []string{"Daily", "3-4 times/week", "Occasionally", "Rarely/Never"}},
	{"diet", "Diet Quality", []string{"Balanced & Healthy", "Mostly Healthy", "Average", "Mostly Junk/Fast Food"}},
	{"sleep", "Sleep Quality", []string{"Good (7-8 hrs)", "Average (5-6 hrs)", "Poor (< 5 hrs)", "Irregular"}},
	{"stress", "Stress Level", []string{"Low", "Moderate", "High", "Very High"}},
	{"smoking", "Smoking", []string{"Never", "Quit", "Occasionally", "Regularly"}},
	{"alcohol", "Alcohol", []string{"Never", "Socially", "Weekly", "Daily"}},
}

// AreaSymptoms maps a body area to its representative symptoms, used when
// folding body-area selections back into the symptom set.
type AreaSymptoms struct {
	Area     string
	Symptoms []string
}

// BodyAreaCatalogue is the ordered body-area catalogue with the symptoms
// each area implies.
var BodyAreaCatalogue = []AreaSymptoms{
	{"Head", []string{"headache", "dizziness", "visual disturbances"}},
	{"Chest", []string{"chest pain", "breathlessness", "cough"}},
	{"Abdomen", []string{"stomach pain", "abdominal pain", "nausea"}},
	{"Limbs", []string{"joint pain", "muscle pain", "swelling joints"}},
	{"Skin", []string{"skin rash", "itching", "blister"}},
	{"Back", []string{"back pain"}},
	{"Throat", []string{"throat irritation", "cough"}},
	{"Eyes", []string{"blurred and distorted vision", "redness of eyes"}},
	{"Joints", []string{"joint pain", "swelling joints", "movement stiffness"}},
	{"Urinary", []string{"burning micturition", "dark urine"}},
}

// SymptomsForArea returns the symptoms a body area implies, or nil for an
// unknown area.
func SymptomsForArea(area string) []string {
	for _, a := range BodyAreaCatalogue {
		if a.Area == area {
			return a.Symptoms
		}
	}
	return nil
}

// Rule maps a complaint keyword to the category values it makes relevant.
// Tables are ordered slices so detection order is deterministic.
type Rule struct {
	Keyword string
	Values  []string
}

var bodyAreaRules = []Rule{
	{"head", []string{"Head"}},
	{"migraine", []string{"Head"}},
	{"dizz", []string{"Head"}},
	{"chest", []string{"Chest"}},
	{"heart", []string{"Chest"}},
	{"breath", []string{"Chest"}},
	{"cough", []string{"Chest", "Throat"}},
	{"stomach", []string{"Abdomen"}},
	{"abdomen", []string{"Abdomen"}},
	{"belly", []string{"Abdomen"}},
	{"nausea", []string{"Abdomen"}},
	{"vomit", []string{"Abdomen"}},
	{"skin", []string{"Skin"}},
	{"rash", []string{"Skin"}},
	{"itch", []string{"Skin"}},
	{"back", []string{"Back"}},
	{"throat", []string{"Throat"}},
	{"eye", []string{"Eyes"}},
	{"vision", []string{"Eyes"}},
	{"joint", []string{"Joints"}},
	{"knee", []string{"Joints", "Limbs"}},
	{"leg", []string{"Limbs"}},
	{"arm", []string{"Limbs"}},
	{"muscle", []string{"Limbs"}},
	{"urin", []string{"Urinary"}},
	{"bladder", []string{"Urinary"}},
}

var lifestyleRules = []Rule{
	{"sleep", []string{"sleep"}},
	{"insomnia", []string{"sleep"}},
	{"tired", []string{"sleep"}},
	{"fatigue", []string{"sleep"}},
	{"stress", []string{"stress"}},
	{"anxiety", []string{"stress"}},
	{"work", []string{"stress"}},
	{"diet", []string{"diet"}},
	{"food", []string{"diet"}},
	{"eat", []string{"diet"}},
	{"appetite", []string{"diet"}},
	{"smok", []string{"smoking"}},
	{"cigarette", []string{"smoking"}},
	{"alcohol", []string{"alcohol"}},
	{"drink", []string{"alcohol"}},
	{"exercise", []string{"exercise"}},
	{"gym", []string{"exercise"}},
	{"sedentary", []string{"exercise"}},
}

var conditionRules = []Rule{
	{"diabet", []string{"Diabetes"}},
	{"sugar", []string{"Diabetes"}},
	{"pressure", []string{"Hypertension"}},
	{"hypertension", []string{"Hypertension"}},
	{"heart", []string{"Heart Disease"}},
	{"asthma", []string{"Asthma / COPD"}},
	{"breath", []string{"Asthma / COPD"}},
	{"thyroid", []string{"Thyroid Disorder"}},
	{"liver", []string{"Liver Disease"}},
	{"kidney", []string{"Kidney Disease"}},
	{"cancer", []string{"Cancer"}},
	{"arthritis", []string{"Arthritis"}},
	{"joint", []string{"Arthritis"}},
	{"tuberculosis", []string{"Tuberculosis"}},
	{"seizure", []string{"Epilepsy"}},
	{"epilep", []string{"Epilepsy"}},
}

var familyRules = []Rule{
	{"heart", []string{"Heart Disease"}},
	{"diabet", []string{"Diabetes"}},
	{"cancer", []string{"Cancer"}},
	{"pressure", []string{"Hypertension"}},
	{"hypertension", []string{"Hypertension"}},
	{"asthma", []string{"Asthma"}},
	{"thyroid", []string{"Thyroid Disorder"}},
	{"depress", []string{"Mental Health Issues"}},
	{"anxiety", []string{"Mental Health Issues"}},
}

// Default subsets keep every step populated when no keyword matches.
var (
	defaultBodyAreas        = []string{"Head", "Chest", "Abdomen"}
	defaultLifestyleFactors = []string{"sleep", "stress", "diet"}
)

// Duration presets selected by acute/chronic phrasing in the complaint.
var (
	acutePhrases = []string{
		"sudden", "since today", "this morning", "since yesterday",
		"just started", "few hours", "last night",
	}
	chronicPhrases = []string{
		"chronic", "for years", "for months", "long time",
		"keeps coming back", "recurring", "on and off",
	}

	acuteDurations = []string{
		"Less than 24 hours", "Since today", "1-3 days", "3-7 days",
	}
	chronicDurations = []string{
		"More than a month", "1-3 months", "3-6 months", "Over a year",
	}
	generalDurations = []string{
		"Less than a week", "1-2 weeks", "2-4 weeks", "1-3 months", "More than 3 months",
	}
)

// DescribedOption is an option with an explanatory description.
type DescribedOption struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

var severityOptions = []DescribedOption{
	{"Mild", "Noticeable but doesn't interfere with daily activities"},
	{"Moderate", "Makes some daily activities difficult"},
	{"Severe", "Significantly limits daily activities"},
	{"Very Severe", "Unable to perform daily activities"},
}

func init() {
	for _, table := range [][]Rule{bodyAreaRules, lifestyleRules, conditionRules, familyRules} {
		seen := make(map[string]bool, len(table))
		for _, r := range table {
			if seen[r.Keyword] {
				panic(fmt.Sprintf("steps: duplicate keyword rule %q", r.Keyword))
			}
			seen[r.Keyword] = true
		}
	}
}
