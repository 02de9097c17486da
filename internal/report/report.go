// Package report renders the markdown health assessment report locally,
// used both as the offline output and as the fallback when the LLM summary
// agent is unavailable.
package report

import (
	"fmt"
	"strings"

	"github.com/arkodeep/healthtriage/internal/classify"
	"github.com/arkodeep/healthtriage/internal/recommend"
)

// Patient carries the intake fields the report surfaces. Zero values render
// as placeholders rather than failing.
type Patient struct {
	Name      string
	Age       string
	Gender    string
	Complaint string
}

// Render builds the full markdown report. modelAccuracy is the training
// accuracy percentage from the model metadata; pass 0 when unknown.
func Render(p Patient, diagnosis classify.Result, recs recommend.Set, modelAccuracy float64) string {
	var b strings.Builder

	b.WriteString("## Health Assessment Report\n\n")
	b.WriteString("### Patient Summary\n")
	fmt.Fprintf(&b, "**Patient Name:** %s\n", orDefault(p.Name, "Not Provided"))
	fmt.Fprintf(&b, "**Age:** %s | **Gender:** %s\n", orDefault(p.Age, "N/A"), orDefault(p.Gender, "N/A"))
	fmt.Fprintf(&b, "**Primary Complaint:** %s\n\n", orDefault(p.Complaint, "N/A"))

	b.WriteString("### Symptoms Identified\n")
	for _, s := range diagnosis.ExtractedSymptoms {
		fmt.Fprintf(&b, "- %s\n", title(s))
	}

	b.WriteString("\n### Possible Conditions\n\n| Condition | Confidence | Score |\n|-----------|-----------|-------|\n")
	for _, c := range diagnosis.TopConditions {
		fmt.Fprintf(&b, "| **%s** | %s | %.1f%% |\n", c.Name, c.Confidence, c.ConfidenceScore)
	}

	b.WriteString("\n### You Can Use These Medicines & Treatments\n\n")
	for _, rec := range recs.Recommendations {
		fmt.Fprintf(&b, "#### %s\n", rec.Condition)
		fmt.Fprintf(&b, "**You can use these medicines:** %s\n", strings.Join(rec.Medicines, ", "))
		fmt.Fprintf(&b, "**Home Remedies:** %s\n", strings.Join(rec.HomeRemedies, ", "))
		fmt.Fprintf(&b, "**Dietary Advice:** %s\n", strings.Join(rec.DietaryAdvice, ", "))
		fmt.Fprintf(&b, "**Lifestyle:** %s\n", strings.Join(rec.LifestyleChanges, ", "))
		fmt.Fprintf(&b, "**Appropriate Specialist:** %s\n\n---\n\n", orDefault(rec.Specialist, "General Physician"))
	}

	b.WriteString("### Important Warnings\n")
	if recs.UrgentWarning != "" {
		fmt.Fprintf(&b, "**%s**\n\n", recs.UrgentWarning)
	} else {
		b.WriteString("No urgent warnings. Seek help if symptoms worsen.\n\n")
	}

	b.WriteString("### Next Steps\n1. Consult the appropriate specialist\n2. Get relevant lab tests\n3. Follow up in 1-2 weeks\n\n")
	b.WriteString("### Disclaimer\n> AI-generated. Not a substitute for professional medical advice.\n\n")
	if modelAccuracy > 0 {
		fmt.Fprintf(&b, "*Powered by HealthAI ML Model (%.1f%% accuracy)*\n", modelAccuracy)
	} else {
		b.WriteString("*Powered by HealthAI ML Model (N/A% accuracy)*\n")
	}
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// title uppercases the first letter of every space-separated word, matching
// how extracted symptom names are displayed.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
