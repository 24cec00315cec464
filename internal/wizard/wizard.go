// Package wizard is the five-step state machine that collects a UserProfile
// and produces a PlanningResult on entering the last step.
//
// States are values. GoTo never mutates its input; it returns the next state
// and a Transition describing what happened so a renderer can react to it.
package wizard

import (
	"math"
	"strings"

	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Planner computes a result for a completed profile
type Planner interface {
	Plan(models.UserProfile) models.PlanningResult
}

// Fields are the form values submitted with a transition. Only the fields
// of the step being left are read.
type Fields struct {
	Name        string   `json:"name,omitempty"`
	Income      float64  `json:"income,omitempty"`
	Expenses    float64  `json:"expenses,omitempty"`
	Investments float64  `json:"investments,omitempty"`
	Debt        float64  `json:"debt,omitempty"`
	Goals       []string `json:"goals,omitempty"`
	Risk        string   `json:"risk,omitempty"`
}

// Notice is a transient message for the user
type Notice struct {
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

// Transition describes the outcome of one GoTo call
type Transition struct {
	From          int           `json:"from"`
	To            int           `json:"to"`
	Moved         bool          `json:"moved"`
	Blocked       bool          `json:"blocked"`
	Notice        *Notice       `json:"notice,omitempty"`
	Completed     bool          `json:"completed"`
	Progress      float64       `json:"progress"`
	Encouragement Encouragement `json:"encouragement"`
}

// Machine drives wizard transitions
type Machine struct {
	planner Planner
	log     *logrus.Logger
}

// NewMachine initializes a machine that plans with planner
func NewMachine(planner Planner, log *logrus.Logger) *Machine {
	return &Machine{planner: planner, log: log}
}

// Start returns the state of a fresh wizard
func (m *Machine) Start() models.WizardState {
	return models.WizardState{
		CurrentStep: StepIncome,
		Profile:     models.DefaultProfile(),
	}
}

// Restart discards all answers and results
func (m *Machine) Restart(models.WizardState) models.WizardState {
	return m.Start()
}

// Next moves one step forward
func (m *Machine) Next(s models.WizardState, f Fields) (models.WizardState, Transition) {
	return m.GoTo(s, s.CurrentStep+1, f)
}

// Prev moves one step back
func (m *Machine) Prev(s models.WizardState, f Fields) (models.WizardState, Transition) {
	return m.GoTo(s, s.CurrentStep-1, f)
}

// GoTo moves to target after storing the current step's fields. Targets
// outside the wizard are ignored. Forward moves must pass validation of the
// current step; backward moves are never blocked. Entering the last step,
// or re-entering it, computes the result.
func (m *Machine) GoTo(s models.WizardState, target int, f Fields) (models.WizardState, Transition) {
	from := s.CurrentStep
	if target < 1 || target > TotalSteps {
		return s, m.transition(from, from, s)
	}

	next := models.WizardState{
		CurrentStep: from,
		Profile:     collect(s.Profile, from, f),
		Result:      s.Result,
	}

	if target > from {
		if notice, ok := validate(next.Profile, from); !ok {
			t := m.transition(from, from, next)
			t.Blocked = true
			t.Notice = notice
			m.log.WithFields(logrus.Fields{"step": StepName(from), "target": StepName(target)}).Debug("Wizard transition blocked")
			return next, t
		}
	}

	next.CurrentStep = target
	next.Result = nil
	if target == TotalSteps {
		res := m.planner.Plan(next.Profile)
		next.Result = &res
	}

	t := m.transition(from, target, next)
	t.Moved = from != target
	t.Completed = next.Result != nil
	return next, t
}

func (m *Machine) transition(from, to int, s models.WizardState) Transition {
	enc, _ := EncouragementFor(s.CurrentStep)
	return Transition{
		From:          from,
		To:            to,
		Progress:      Progress(s.CurrentStep),
		Encouragement: enc,
	}
}

// collect stores the fields belonging to step into a copy of p
func collect(p models.UserProfile, step int, f Fields) models.UserProfile {
	out := p.Clone()
	switch step {
	case StepIncome:
		out.Name = strings.TrimSpace(f.Name)
		if out.Name == "" {
			out.Name = DefaultName
		}
		out.MonthlyIncome = f.Income
	case StepExpenses:
		out.FixedExpenses = f.Expenses
		out.ExistingInvestments = f.Investments
	case StepDebt:
		out.Debt = f.Debt
	case StepGoals:
		out.Goals = uniqueGoals(f.Goals)
	case StepRisk:
		if r := strings.TrimSpace(f.Risk); r != "" {
			out.RiskProfile = models.RiskTier(strings.ToLower(r))
		}
	}
	return out
}

// validate reports whether the profile may leave step. NaN and infinite
// amounts never pass.
func validate(p models.UserProfile, step int) (*Notice, bool) {
	switch step {
	case StepIncome:
		if !(p.MonthlyIncome >= MinMonthlyIncome) || math.IsInf(p.MonthlyIncome, 0) {
			return &Notice{Message: "Please enter a valid monthly income", Icon: "⚠️"}, false
		}
	case StepExpenses:
		if !(p.FixedExpenses >= 0) || math.IsInf(p.FixedExpenses, 0) {
			return nil, false
		}
	}
	return nil, true
}

func uniqueGoals(goals []string) []string {
	seen := make(map[string]bool, len(goals))
	out := make([]string, 0, len(goals))
	for _, g := range goals {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}
