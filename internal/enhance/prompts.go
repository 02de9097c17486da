package enhance

import (
	"strings"

	"github.com/arkodeep/healthtriage/internal/llm"
)

const diagnosisSystemPrompt = `You are DiagnosisAgent, a medical AI analyst.
You receive a patient's health data and ML predictions. Refine the diagnosis:
keep the ranked conditions grounded in the ML probabilities, improve the
reasoning, and add any symptoms the patient described that the extractor
missed. Only use diseases from the known disease list.`

const recommendationSystemPrompt = `You are RecommendationAgent. For each
diagnosed condition produce medicines (mark OTC vs Prescription), home
remedies, dietary advice, lifestyle changes, and the appropriate specialist.
Set urgent_warning when any condition needs emergency care, otherwise leave
it empty.`

const summarySystemPrompt = `You are SummaryAgent. Compile a patient-friendly
health report in Markdown with sections:
## Health Assessment Report
### Patient Summary
### Symptoms Identified
### Possible Conditions (use a table)
### You Can Use These Medicines & Treatments
### Important Warnings
### Next Steps
### Disclaimer
> AI-generated, not a substitute for professional medical advice.
Use emojis, bold text, and clear structure. Be empathetic.`

func diagnosisSchema(diseases []string) *llm.Schema {
	enum := make([]any, len(diseases))
	for i, d := range diseases {
		enum[i] = d
	}
	nameProp := map[string]any{"type": "string"}
	if len(enum) > 0 {
		nameProp["enum"] = enum
	}
	return &llm.Schema{
		Name:        "triage-diagnosis",
		Description: "Refined diagnosis with ranked conditions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"extracted_symptoms": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"top_conditions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": nameProp,
							"confidence": map[string]any{
								"type": "string",
								"enum": []any{"High", "Medium", "Low"},
							},
							"confidence_score": map[string]any{"type": "number"},
							"reasoning":        map[string]any{"type": "string"},
						},
						"required": []any{"name", "confidence", "reasoning"},
					},
				},
			},
			"required": []any{"extracted_symptoms", "top_conditions"},
		},
	}
}

func recommendationSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "triage-recommendations",
		Description: "Per-condition treatment recommendations",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"recommendations": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"condition":         map[string]any{"type": "string"},
							"medicines":         stringArray(),
							"home_remedies":     stringArray(),
							"dietary_advice":    stringArray(),
							"lifestyle_changes": stringArray(),
							"specialist":        map[string]any{"type": "string"},
						},
						"required": []any{"condition", "medicines", "specialist"},
					},
				},
				"urgent_warning": map[string]any{"type": "string"},
			},
			"required": []any{"recommendations"},
		},
	}
}

func stringArray() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}

func userMessage(sections ...string) []llm.Message {
	return []llm.Message{{
		Role:    llm.RoleUser,
		Content: strings.Join(sections, "\n\n"),
	}}
}
