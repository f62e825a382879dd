// Package schema declares the expected shape of generated quiz and scenario
// items. The same FormatSpec drives both the format instructions embedded in
// prompts and the validation performed by the completion parser, so the model
// and the parser can never drift apart.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"bezbot/internal/domain"
)

// FieldKind is the semantic type of a declared field.
type FieldKind int

const (
	// FieldString is free text.
	FieldString FieldKind = iota
	// FieldAnswerLabel is a constrained enum: one of A, B, C, D.
	FieldAnswerLabel
)

// FieldSpec declares one field of a generated item.
type FieldSpec struct {
	Name        string
	Description string
	Kind        FieldKind
	AllowEmpty  bool
}

// FormatSpec is the full declaration of a content kind: the payload root key
// and the ordered field list. Field order is the validation order.
type FormatSpec struct {
	Kind    domain.ContentKind
	RootKey string
	Fields  []FieldSpec
}

// Both kinds deliberately share one payload shape; a scenario carries its
// narrative inside the title field and is generated as a one-element list.
var (
	quizSpec = FormatSpec{
		Kind:    domain.KindQuiz,
		RootKey: "questions",
		Fields: []FieldSpec{
			{Name: "title", Description: "The question text", Kind: FieldString},
			{Name: "variant_a", Description: "Answer option A", Kind: FieldString},
			{Name: "variant_b", Description: "Answer option B", Kind: FieldString},
			{Name: "variant_c", Description: "Answer option C", Kind: FieldString},
			{Name: "variant_d", Description: "Answer option D", Kind: FieldString},
			{Name: "correct_answer", Description: "The correct option (A, B, C or D)", Kind: FieldAnswerLabel},
			{Name: "explanation", Description: "A short explanation of the correct answer", Kind: FieldString, AllowEmpty: true},
		},
	}

	scenarioSpec = FormatSpec{
		Kind:    domain.KindScenario,
		RootKey: "questions",
		Fields: []FieldSpec{
			{Name: "title", Description: "A realistic workplace incident description followed by the question of what the worker should do", Kind: FieldString},
			{Name: "variant_a", Description: "Action option A", Kind: FieldString},
			{Name: "variant_b", Description: "Action option B", Kind: FieldString},
			{Name: "variant_c", Description: "Action option C", Kind: FieldString},
			{Name: "variant_d", Description: "Action option D", Kind: FieldString},
			{Name: "correct_answer", Description: "The correct option (A, B, C or D)", Kind: FieldAnswerLabel},
			{Name: "explanation", Description: "Why the chosen action is the right one", Kind: FieldString, AllowEmpty: true},
		},
	}
)

// Describe returns the FormatSpec for a content kind. The returned value is a
// process-wide constant and safe for concurrent reads.
func Describe(kind domain.ContentKind) FormatSpec {
	if kind == domain.KindScenario {
		return scenarioSpec
	}
	return quizSpec
}

// Instructions renders the format-instruction block embedded into prompts:
// the declared fields with their semantics, plus a worked example of the
// exact serialization the parser accepts.
func (s FormatSpec) Instructions() string {
	var b strings.Builder
	b.WriteString("Respond with a single JSON object and nothing else.\n")
	fmt.Fprintf(&b, "The object must contain a %q array. Each element has these fields:\n", s.RootKey)
	for _, f := range s.Fields {
		fmt.Fprintf(&b, "- %q (string): %s\n", f.Name, f.Description)
	}
	b.WriteString("\nExample of the exact expected output:\n")
	b.WriteString(s.Example())
	return b.String()
}

// Example returns the worked example serialization of one valid item.
// The parser must round-trip this exact payload (see the round-trip tests).
func (s FormatSpec) Example() string {
	item := domain.ChoiceItem{
		Title:         "What must a worker do before operating a lifting machine?",
		VariantA:      "Start work immediately",
		VariantB:      "Complete the required safety briefing and equipment check",
		VariantC:      "Ask a colleague to watch",
		VariantD:      "Notify the customer",
		CorrectAnswer: domain.AnswerB,
		Explanation:   "Machinery may only be operated after the briefing and pre-start check.",
	}
	payload := map[string][]domain.ChoiceItem{s.RootKey: {item}}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		// The example is built from static data; marshalling cannot fail.
		panic(err)
	}
	return string(out)
}

// FieldNames returns the declared field names in validation order.
func (s FormatSpec) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}
