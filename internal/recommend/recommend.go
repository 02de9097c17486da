// Package recommend provides the static recommendation lookup used when the
// enhancement service is absent. Entries are keyed by disease name exactly
// as the classifier labels them.
package recommend

import "github.com/arkodeep/healthtriage/internal/classify"

// Entry is the advice bundle for one condition.
type Entry struct {
	Condition        string   `json:"condition"`
	Medicines        []string `json:"medicines"`
	HomeRemedies     []string `json:"home_remedies"`
	DietaryAdvice    []string `json:"dietary_advice"`
	LifestyleChanges []string `json:"lifestyle_changes"`
	Specialist       string   `json:"specialist"`
}

// Set is the recommendation output for a full diagnosis.
type Set struct {
	Recommendations []Entry `json:"recommendations"`
	UrgentWarning   string  `json:"urgent_warning,omitempty"`
}

// ForDiagnosis returns one Entry per ranked condition, falling back to a
// generic entry for any disease not in the local database.
func ForDiagnosis(result classify.Result) Set {
	recs := make([]Entry, 0, len(result.TopConditions))
	for _, c := range result.TopConditions {
		if e, ok := database[c.Name]; ok {
			e.Condition = c.Name
			recs = append(recs, e)
			continue
		}
		recs = append(recs, genericEntry(c.Name))
	}
	return Set{Recommendations: recs}
}

func genericEntry(condition string) Entry {
	return Entry{
		Condition:        condition,
		Medicines:        []string{"Consult a doctor"},
		HomeRemedies:     []string{"Rest and monitor"},
		DietaryAdvice:    []string{"Eat balanced meals"},
		LifestyleChanges: []string{"Get adequate rest"},
		Specialist:       "General Physician",
	}
}
