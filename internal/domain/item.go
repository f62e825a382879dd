package domain

// AnswerLabel identifies one of the four answer options of a ChoiceItem.
type AnswerLabel string

const (
	AnswerA AnswerLabel = "A"
	AnswerB AnswerLabel = "B"
	AnswerC AnswerLabel = "C"
	AnswerD AnswerLabel = "D"
)

// IsValid reports whether the label is one of A, B, C or D.
func (l AnswerLabel) IsValid() bool {
	switch l {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return true
	}
	return false
}

// ContentKind distinguishes the two generated content flavors.
// Both share the same item shape; a scenario embeds its narrative in Title.
type ContentKind string

const (
	KindQuiz     ContentKind = "quiz"
	KindScenario ContentKind = "scenario"
)

// ChoiceItem is a single multiple-choice question. It is the unit of
// generated content for both quizzes and workplace scenarios.
type ChoiceItem struct {
	Title         string      `json:"title"`
	VariantA      string      `json:"variant_a"`
	VariantB      string      `json:"variant_b"`
	VariantC      string      `json:"variant_c"`
	VariantD      string      `json:"variant_d"`
	CorrectAnswer AnswerLabel `json:"correct_answer"`
	Explanation   string      `json:"explanation"`
}

// Validate validates the item against the content invariants.
// Explanation may be empty; every other field is required.
func (i *ChoiceItem) Validate() error {
	if i.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if i.VariantA == "" {
		return NewValidationError("variant_a", "variant_a is required")
	}
	if i.VariantB == "" {
		return NewValidationError("variant_b", "variant_b is required")
	}
	if i.VariantC == "" {
		return NewValidationError("variant_c", "variant_c is required")
	}
	if i.VariantD == "" {
		return NewValidationError("variant_d", "variant_d is required")
	}
	if !i.CorrectAnswer.IsValid() {
		return NewValidationError("correct_answer", "correct_answer must be one of A, B, C, D")
	}
	return nil
}
