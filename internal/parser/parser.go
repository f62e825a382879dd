// Package parser converts raw LLM completion text into validated content
// items. It is pure text-in, value-or-error-out: no I/O, no side effects.
// Every failure is one of three typed errors identifying the stage that
// rejected the input: ExtractionError, SyntaxError or SchemaError.
package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"bezbot/internal/domain"
	"bezbot/internal/schema"
)

// ExtractionError means no well-formed payload boundary was found in the text.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no structured payload found: %s", e.Reason)
}

func (e *ExtractionError) Stage() string { return "extraction" }

// SyntaxError means the extracted payload is not valid JSON.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed payload: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Stage() string { return "syntax" }

// SchemaError means the payload deserialized but violates the FormatSpec.
// Field is the first offending field in declaration order; Index is the
// position of the offending item, or -1 for payload-level violations.
type SchemaError struct {
	Field  string
	Index  int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q (item %d): %s", e.Field, e.Index, e.Reason)
}

func (e *SchemaError) Stage() string { return "schema" }

// StageError is implemented by all parser error types.
type StageError interface {
	error
	Stage() string
}

// Parse extracts, deserializes and validates a completion against spec.
// On success it returns the full item list (possibly empty); on failure it
// returns a nil slice and a StageError. Partial lists are never returned:
// a single invalid element fails the whole collection.
func Parse(raw string, spec schema.FormatSpec) ([]domain.ChoiceItem, error) {
	payload, err := extract(raw)
	if err != nil {
		return nil, err
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &root); err != nil {
		return nil, &SyntaxError{Err: err}
	}

	elemsRaw, ok := root[spec.RootKey]
	if !ok {
		return nil, &SchemaError{Field: spec.RootKey, Index: -1, Reason: "missing payload root key"}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(elemsRaw, &elems); err != nil {
		return nil, &SchemaError{Field: spec.RootKey, Index: -1, Reason: "payload root is not a list"}
	}

	items := make([]domain.ChoiceItem, 0, len(elems))
	for i, elem := range elems {
		item, err := validateElement(elem, spec, i)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// extract locates the machine-readable block within the completion text.
// Models wrap the payload in prose, markdown code fences or reasoning tags;
// the payload itself is the outermost brace-delimited object.
func extract(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", &ExtractionError{Reason: "empty completion"}
	}

	// Drop a leading <think> block if the model emitted one.
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
			cleaned = strings.TrimSpace(cleaned)
		}
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", &ExtractionError{Reason: "no JSON object delimiters in completion"}
	}
	return cleaned[start : end+1], nil
}

// validateElement checks one payload element against the declared fields in
// declaration order, so the first reported violation is deterministic.
// Unknown extra fields are ignored.
func validateElement(elem json.RawMessage, spec schema.FormatSpec, index int) (domain.ChoiceItem, error) {
	var item domain.ChoiceItem

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil {
		return item, &SchemaError{Field: spec.RootKey, Index: index, Reason: "element is not an object"}
	}

	for _, f := range spec.Fields {
		rawValue, ok := fields[f.Name]
		if !ok {
			return item, &SchemaError{Field: f.Name, Index: index, Reason: "missing field"}
		}

		var value string
		if err := json.Unmarshal(rawValue, &value); err != nil {
			return item, &SchemaError{Field: f.Name, Index: index, Reason: "value is not a string"}
		}

		switch f.Kind {
		case schema.FieldAnswerLabel:
			label := domain.AnswerLabel(strings.TrimSpace(value))
			if !label.IsValid() {
				return item, &SchemaError{Field: f.Name, Index: index, Reason: fmt.Sprintf("value %q is not one of A, B, C, D", value)}
			}
			value = string(label)
		default:
			if !f.AllowEmpty && strings.TrimSpace(value) == "" {
				return item, &SchemaError{Field: f.Name, Index: index, Reason: "value must not be empty"}
			}
		}

		setField(&item, f.Name, value)
	}

	return item, nil
}

func setField(item *domain.ChoiceItem, name, value string) {
	switch name {
	case "title":
		item.Title = value
	case "variant_a":
		item.VariantA = value
	case "variant_b":
		item.VariantB = value
	case "variant_c":
		item.VariantC = value
	case "variant_d":
		item.VariantD = value
	case "correct_answer":
		item.CorrectAnswer = domain.AnswerLabel(value)
	case "explanation":
		item.Explanation = value
	}
}
