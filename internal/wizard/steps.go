package wizard

// Step numbers of the wizard
const (
	StepIncome = iota + 1
	StepExpenses
	StepDebt
	StepGoals
	StepRisk
)

// TotalSteps is the number of wizard steps; entering the last one produces results
const TotalSteps = StepRisk

// DefaultName is used when step 1 leaves the name blank
const DefaultName = "Friend"

// MinMonthlyIncome is the lowest income that lets the wizard past step 1
const MinMonthlyIncome = 1000

// Encouragement is the message shown alongside a step
type Encouragement struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

var encouragements = [TotalSteps]Encouragement{
	{Emoji: "🌱", Text: "Great start! Knowing your income is the first step to financial freedom."},
	{Emoji: "📊", Text: "You're doing amazing! Understanding your expenses unlocks your potential."},
	{Emoji: "🎯", Text: "Almost there! Clear goals turn dreams into action plans."},
	{Emoji: "💪", Text: "Incredible — 80% done! Your risk profile will personalize everything."},
	{Emoji: "✨", Text: "Generating your personalized financial blueprint…"},
}

// EncouragementFor returns the message for step, or false outside the wizard
func EncouragementFor(step int) (Encouragement, bool) {
	if step < 1 || step > TotalSteps {
		return Encouragement{}, false
	}
	return encouragements[step-1], true
}

// Progress is the percentage of the progress bar filled at step
func Progress(step int) float64 {
	if step <= 1 {
		return 0
	}
	if step >= TotalSteps {
		return 100
	}
	return float64(step-1) / float64(TotalSteps-1) * 100
}

// StepName names each step for logs and clients
func StepName(step int) string {
	switch step {
	case StepIncome:
		return "income"
	case StepExpenses:
		return "expenses"
	case StepDebt:
		return "debt"
	case StepGoals:
		return "goals"
	case StepRisk:
		return "risk"
	}
	return "unknown"
}
