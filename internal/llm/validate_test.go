package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func diagnosisSchema() *Schema {
	return &Schema{
		Name:        "triage-diagnosis",
		Description: "Structured diagnosis with ranked conditions",
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
							"name":       map[string]any{"type": "string"},
							"confidence": map[string]any{"type": "string", "enum": []any{"High", "Medium", "Low"}},
						},
						"required": []any{"name", "confidence"},
					},
				},
			},
			"required": []any{"top_conditions"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"extracted_symptoms":["headache"],"top_conditions":[{"name":"Migraine","confidence":"High"}]}`)
	if err := validateResponse(diagnosisSchema(), raw); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"extracted_symptoms":["headache"]}`)
	err := validateResponse(diagnosisSchema(), raw)

	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_BadEnum(t *testing.T) {
	raw := json.RawMessage(`{"top_conditions":[{"name":"Migraine","confidence":"Certain"}]}`)
	err := validateResponse(diagnosisSchema(), raw)

	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse for bad enum, got %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(diagnosisSchema(), json.RawMessage(`{not json`))

	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse for malformed JSON, got %v", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}
