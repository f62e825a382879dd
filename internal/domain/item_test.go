package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerLabelIsValid(t *testing.T) {
	for _, label := range []AnswerLabel{AnswerA, AnswerB, AnswerC, AnswerD} {
		assert.True(t, label.IsValid())
	}
	for _, label := range []AnswerLabel{"", "E", "a", " B", "AB"} {
		assert.False(t, label.IsValid(), "label %q", label)
	}
}

func TestChoiceItemValidate(t *testing.T) {
	item := ChoiceItem{
		Title:         "What should a worker do upon discovering faulty equipment?",
		VariantA:      "Continue working",
		VariantB:      "Immediately report it to the supervisor",
		VariantC:      "Try to repair it on their own",
		VariantD:      "Ignore the fault",
		CorrectAnswer: AnswerB,
	}
	assert.NoError(t, item.Validate())

	// Explanation may stay empty; every other field is required.
	cases := []struct {
		field  string
		mutate func(*ChoiceItem)
	}{
		{"title", func(i *ChoiceItem) { i.Title = "" }},
		{"variant_a", func(i *ChoiceItem) { i.VariantA = "" }},
		{"variant_b", func(i *ChoiceItem) { i.VariantB = "" }},
		{"variant_c", func(i *ChoiceItem) { i.VariantC = "" }},
		{"variant_d", func(i *ChoiceItem) { i.VariantD = "" }},
		{"correct_answer", func(i *ChoiceItem) { i.CorrectAnswer = "E" }},
	}
	for _, tc := range cases {
		broken := item
		tc.mutate(&broken)
		err := broken.Validate()
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "field %s", tc.field)
		assert.Equal(t, tc.field, vErr.Field)
	}
}
