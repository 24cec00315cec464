package wizard

import (
	"io"
	"math"
	"testing"

	"github.com/Dan9191/finplan-service/internal/calculator"
	"github.com/Dan9191/finplan-service/internal/catalog"
	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/Dan9191/finplan-service/internal/policy"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func newMachine() *Machine {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMachine(calculator.New(policy.New(), catalog.New()), log)
}

// walk drives a fresh wizard to the last step with the given answers.
func walk(t *testing.T, m *Machine, steps ...Fields) models.WizardState {
	t.Helper()
	s := m.Start()
	for _, f := range steps {
		var tr Transition
		s, tr = m.Next(s, f)
		if tr.Blocked {
			t.Fatalf("unexpected block leaving step %d: %+v", tr.From, tr)
		}
	}
	return s
}

func TestStart(t *testing.T) {
	s := newMachine().Start()
	if s.CurrentStep != StepIncome {
		t.Errorf("CurrentStep = %d, want 1", s.CurrentStep)
	}
	if s.Profile.RiskProfile != models.Moderate {
		t.Errorf("RiskProfile = %q, want moderate", s.Profile.RiskProfile)
	}
	if s.Result != nil {
		t.Error("fresh wizard has a result")
	}
}

func TestIncomeFloorBlocks(t *testing.T) {
	m := newMachine()
	s := m.Start()
	next, tr := m.Next(s, Fields{Name: "Asha", Income: 800})
	if !tr.Blocked || tr.Moved {
		t.Fatalf("transition = %+v, want blocked", tr)
	}
	if next.CurrentStep != StepIncome {
		t.Errorf("CurrentStep = %d, want 1", next.CurrentStep)
	}
	if tr.Notice == nil || tr.Notice.Message != "Please enter a valid monthly income" {
		t.Errorf("Notice = %+v, want income warning", tr.Notice)
	}
	// the fields are still stored even though the move was refused
	if next.Profile.MonthlyIncome != 800 || next.Profile.Name != "Asha" {
		t.Errorf("profile = %+v, want collected fields", next.Profile)
	}
}

func TestIncomeFloorBoundary(t *testing.T) {
	m := newMachine()
	_, tr := m.Next(m.Start(), Fields{Income: 1000})
	if tr.Blocked {
		t.Errorf("income of exactly 1000 was blocked")
	}
}

func TestNonFiniteAmountsBlock(t *testing.T) {
	m := newMachine()
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, tr := m.Next(m.Start(), Fields{Name: "Asha", Income: v})
		if !tr.Blocked || tr.Notice == nil {
			t.Errorf("income %v: transition = %+v, want blocked with notice", v, tr)
		}

		s := walk(t, m, Fields{Income: 50000})
		next, tr := m.Next(s, Fields{Expenses: v})
		if !tr.Blocked || next.CurrentStep != StepExpenses {
			t.Errorf("expenses %v: transition = %+v, want blocked", v, tr)
		}
	}
}

func TestNegativeExpensesBlockSilently(t *testing.T) {
	m := newMachine()
	s := walk(t, m, Fields{Income: 50000})
	next, tr := m.Next(s, Fields{Expenses: -500})
	if !tr.Blocked {
		t.Fatalf("transition = %+v, want blocked", tr)
	}
	if tr.Notice != nil {
		t.Errorf("Notice = %+v, want none", tr.Notice)
	}
	if next.CurrentStep != StepExpenses {
		t.Errorf("CurrentStep = %d, want 2", next.CurrentStep)
	}
}

func TestBackwardNeverGated(t *testing.T) {
	m := newMachine()
	s := walk(t, m, Fields{Income: 50000})
	prev, tr := m.Prev(s, Fields{Expenses: -500})
	if tr.Blocked || !tr.Moved || prev.CurrentStep != StepIncome {
		t.Errorf("Prev() = step %d, %+v; want an ungated move to 1", prev.CurrentStep, tr)
	}
	if prev.Profile.FixedExpenses != -500 {
		t.Errorf("FixedExpenses = %v, want the collected -500", prev.Profile.FixedExpenses)
	}
}

func TestOutOfRangeIsNoOp(t *testing.T) {
	m := newMachine()
	s := m.Start()
	for _, target := range []int{0, -1, TotalSteps + 1} {
		next, tr := m.GoTo(s, target, Fields{Name: "ignored", Income: 99999})
		if diff := cmp.Diff(s, next); diff != "" {
			t.Errorf("GoTo(%d) changed state:\n%s", target, diff)
		}
		if tr.Moved || tr.Blocked {
			t.Errorf("GoTo(%d) transition = %+v", target, tr)
		}
	}
}

func TestNameDefaultsToFriend(t *testing.T) {
	m := newMachine()
	s, _ := m.Next(m.Start(), Fields{Name: "   ", Income: 2000})
	if s.Profile.Name != DefaultName {
		t.Errorf("Name = %q, want %q", s.Profile.Name, DefaultName)
	}
}

func TestGoalsDeduplicated(t *testing.T) {
	m := newMachine()
	s := walk(t, m,
		Fields{Income: 50000},
		Fields{Expenses: 10000},
		Fields{Debt: 0},
		Fields{Goals: []string{"house", "retirement", "house", ""}},
	)
	if diff := cmp.Diff([]string{"house", "retirement"}, s.Profile.Goals); diff != "" {
		t.Errorf("goals mismatch (-want +got):\n%s", diff)
	}
}

func TestFullRunProducesResult(t *testing.T) {
	m := newMachine()
	s := m.Start()
	answers := []Fields{
		{Name: "Ravi", Income: 50000},
		{Expenses: 20000, Investments: 100000},
		{Debt: 0},
		{Goals: []string{"retirement"}},
	}
	var tr Transition
	for _, f := range answers {
		s, tr = m.Next(s, f)
	}
	if s.CurrentStep != TotalSteps || !tr.Completed || s.Result == nil {
		t.Fatalf("state after walk: step %d, transition %+v", s.CurrentStep, tr)
	}
	if tr.Progress != 100 {
		t.Errorf("Progress = %v, want 100", tr.Progress)
	}
	if s.Result.DisposableIncome != 30000 {
		t.Errorf("DisposableIncome = %v, want 30000", s.Result.DisposableIncome)
	}
	if s.Result.Projections[1].ProjectedCorpus != 4830812 {
		t.Errorf("10y corpus = %d, want 4830812", s.Result.Projections[1].ProjectedCorpus)
	}
}

func TestReenteringLastStepRecomputes(t *testing.T) {
	m := newMachine()
	s := walk(t, m, Fields{Income: 50000}, Fields{Expenses: 20000}, Fields{}, Fields{})

	again, tr := m.GoTo(s, TotalSteps, Fields{})
	if tr.Moved || !tr.Completed {
		t.Errorf("re-entry transition = %+v", tr)
	}
	if diff := cmp.Diff(s, again); diff != "" {
		t.Errorf("re-entry without changes altered state:\n%s", diff)
	}

	aggressive, _ := m.GoTo(s, TotalSteps, Fields{Risk: "aggressive"})
	if aggressive.Result.RiskProfile != models.Aggressive {
		t.Errorf("RiskProfile = %q, want aggressive", aggressive.Result.RiskProfile)
	}
	if aggressive.Result.Instruments[0].ID != "direct_equity" {
		t.Errorf("first instrument = %q, want direct_equity", aggressive.Result.Instruments[0].ID)
	}
}

func TestUnknownRiskResolvesToModerate(t *testing.T) {
	m := newMachine()
	s := walk(t, m, Fields{Income: 50000}, Fields{Expenses: 20000}, Fields{}, Fields{})
	s, _ = m.GoTo(s, TotalSteps, Fields{Risk: "unknown_tier"})
	if s.Profile.RiskProfile != "unknown_tier" {
		t.Errorf("profile keeps %q, want the raw choice", s.Profile.RiskProfile)
	}
	if s.Result.RiskProfile != models.Moderate {
		t.Errorf("result tier = %q, want moderate", s.Result.RiskProfile)
	}
}

func TestLeavingLastStepClearsResult(t *testing.T) {
	m := newMachine()
	s := walk(t, m, Fields{Income: 50000}, Fields{Expenses: 20000}, Fields{}, Fields{})
	back, _ := m.Prev(s, Fields{})
	if back.Result != nil {
		t.Error("result kept after leaving the last step")
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	m := newMachine()
	s := walk(t, m, Fields{Income: 50000}, Fields{Expenses: 20000}, Fields{})
	before := s.Profile.Clone()
	_, _ = m.Next(s, Fields{Goals: []string{"travel"}})
	if diff := cmp.Diff(before, s.Profile); diff != "" {
		t.Errorf("input state mutated:\n%s", diff)
	}
}

func TestRestart(t *testing.T) {
	m := newMachine()
	s := walk(t, m, Fields{Income: 50000}, Fields{Expenses: 20000}, Fields{}, Fields{})
	if diff := cmp.Diff(m.Start(), m.Restart(s)); diff != "" {
		t.Errorf("Restart() mismatch:\n%s", diff)
	}
}

func TestProgressAndEncouragement(t *testing.T) {
	tests := []struct {
		step     int
		progress float64
		emoji    string
	}{
		{1, 0, "🌱"},
		{2, 25, "📊"},
		{3, 50, "🎯"},
		{4, 75, "💪"},
		{5, 100, "✨"},
	}
	for _, tc := range tests {
		if got := Progress(tc.step); got != tc.progress {
			t.Errorf("Progress(%d) = %v, want %v", tc.step, got, tc.progress)
		}
		enc, ok := EncouragementFor(tc.step)
		if !ok || enc.Emoji != tc.emoji {
			t.Errorf("EncouragementFor(%d) = %+v, %v", tc.step, enc, ok)
		}
	}
	if _, ok := EncouragementFor(6); ok {
		t.Error("EncouragementFor(6) reported ok")
	}
}
