// Package fallback holds the fixed, hand-authored content returned when
// generation or parsing fails. These fixtures are the last line of defense:
// they must themselves satisfy every content invariant, which is enforced by
// the tests in this package.
package fallback

import "bezbot/internal/domain"

var fallbackQuiz = []domain.ChoiceItem{
	{
		Title:         "What duties does Order No. 753n place on the employer?",
		VariantA:      "Developing occupational safety instructions based on the equipment manufacturer's technical documentation",
		VariantB:      "Providing workers with personal protective equipment",
		VariantC:      "Organizing safe workplaces",
		VariantD:      "Arranging regular medical examinations for employees",
		CorrectAnswer: domain.AnswerA,
		Explanation:   "Order No. 753n requires the employer to develop occupational safety instructions based on the equipment manufacturer's technical documentation.",
	},
	{
		Title:         "What safety measures are prescribed for working with hazardous cargo?",
		VariantA:      "Using specialized packaging and transport vehicles",
		VariantB:      "Arranging regular medical examinations for employees",
		VariantC:      "Providing workers with personal protective equipment",
		VariantD:      "Scheduling additional breaks for workers",
		CorrectAnswer: domain.AnswerA,
		Explanation:   "Handling hazardous cargo requires labelling and the use of specialized packaging and transport vehicles.",
	},
	{
		Title:         "What requirements apply to cargo transportation?",
		VariantA:      "Ensuring the stability of transport vehicles",
		VariantB:      "Providing additional breaks for drivers",
		VariantC:      "Ensuring regular technical inspection of transport vehicles",
		VariantD:      "Providing workers with personal protective equipment",
		CorrectAnswer: domain.AnswerA,
		Explanation:   "Cargo transportation requirements are systematized to guarantee traffic safety and the stability of transport vehicles.",
	},
	{
		Title:         "What should a worker do upon discovering faulty equipment?",
		VariantA:      "Continue working",
		VariantB:      "Immediately report it to the supervisor",
		VariantC:      "Try to repair it on their own",
		VariantD:      "Ignore the fault",
		CorrectAnswer: domain.AnswerB,
		Explanation:   "On discovering faulty equipment the worker must immediately report it to the supervisor to keep the workplace safe.",
	},
	{
		Title:         "Which personal protective equipment is mandatory when working with chemicals?",
		VariantA:      "Gloves only",
		VariantB:      "Gloves, safety goggles and a respirator",
		VariantC:      "A protective suit and footwear",
		VariantD:      "It depends on the specific substance and working conditions",
		CorrectAnswer: domain.AnswerD,
		Explanation:   "The choice of PPE depends on the type of chemical, its concentration and the working conditions.",
	},
}

var fallbackScenario = domain.ChoiceItem{
	Title:         "A worker on the production floor notices smoke and a crackling sound coming from an electrical panel while other employees nearby continue working. What should the worker do in this situation?",
	VariantA:      "Continue working, since the panel is not their area of responsibility",
	VariantB:      "Immediately report to the supervisor and leave the danger zone together with the other employees",
	VariantC:      "Attempt to extinguish the possible fire on their own",
	VariantD:      "Wait until somebody else notices the problem",
	CorrectAnswer: domain.AnswerB,
	Explanation:   "When signs of fire appear in an electrical installation, the worker must immediately notify the supervisor, have the power cut and leave the danger zone so that everyone stays safe.",
}

// Quiz returns the fixed 5-item fallback quiz. The slice is a fresh copy on
// every call, so callers may not corrupt the fixtures.
func Quiz() []domain.ChoiceItem {
	out := make([]domain.ChoiceItem, len(fallbackQuiz))
	copy(out, fallbackQuiz)
	return out
}

// Scenario returns the fixed fallback scenario item.
func Scenario() domain.ChoiceItem {
	return fallbackScenario
}
