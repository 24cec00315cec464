package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestWizardRun(t *testing.T) {
	input := strings.Join([]string{
		"Asha", "500", // blocked: income below the floor
		"Asha", "50,000",
		"20000", "0",
		"back", // return to step 2
		"20000", "100000",
		"0",
		"home, retire",
		"Aggressive",
	}, "\n") + "\n"

	var out bytes.Buffer
	c := &wizardCmd{app: newApp(&out)}
	st, err := c.run(bufio.NewScanner(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	want := models.UserProfile{
		Name:                "Asha",
		MonthlyIncome:       50000,
		FixedExpenses:       20000,
		ExistingInvestments: 100000,
		Goals:               []string{"home", "retire"},
		RiskProfile:         models.Aggressive,
	}
	if diff := cmp.Diff(want, st.Profile); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
	if st.Result == nil || st.Result.RiskProfile != models.Aggressive {
		t.Fatalf("result = %+v", st.Result)
	}
	if !strings.Contains(out.String(), "Please enter a valid monthly income") {
		t.Errorf("notice not shown:\n%s", out.String())
	}
}

func TestWizardRunRejectsNonFiniteIncome(t *testing.T) {
	for _, bad := range []string{"NaN", "Inf", "-inf"} {
		t.Run(bad, func(t *testing.T) {
			input := strings.Join([]string{
				"Asha", bad,
				"Asha", "50000",
				"20000", "NaN",
				"0",
				"",
				"moderate",
			}, "\n") + "\n"

			var out bytes.Buffer
			c := &wizardCmd{app: newApp(&out)}
			st, err := c.run(bufio.NewScanner(strings.NewReader(input)))
			if err != nil {
				t.Fatalf("run() error: %v", err)
			}
			if !strings.Contains(out.String(), "Please enter a valid monthly income") {
				t.Errorf("%s income was not blocked:\n%s", bad, out.String())
			}
			if st.Profile.MonthlyIncome != 50000 || st.Profile.ExistingInvestments != 0 {
				t.Errorf("profile = %+v", st.Profile)
			}
			if st.Result == nil || st.Result.Projections[1].ProjectedCorpus <= 0 {
				t.Errorf("result = %+v", st.Result)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := map[string]float64{
		"50,000": 50000,
		"1000.5": 1000.5,
		"abc":    -1,
		"NaN":    -1,
		"+Inf":   -1,
		"":       -1,
	}
	for in, want := range tests {
		if got := number(in); got != want {
			t.Errorf("number(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWizardRunEOF(t *testing.T) {
	c := &wizardCmd{app: newApp(io.Discard)}
	_, err := c.run(bufio.NewScanner(strings.NewReader("Asha\n")))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("run() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestPlanProfile(t *testing.T) {
	c := &planCmd{name: "Ravi", income: 40000, goals: " home ,, car ", risk: "CONSERVATIVE"}
	p := c.profile()
	if diff := cmp.Diff([]string{"home", "car"}, p.Goals); diff != "" {
		t.Errorf("goals mismatch (-want +got):\n%s", diff)
	}
	if p.RiskProfile != models.Conservative {
		t.Errorf("RiskProfile = %q", p.RiskProfile)
	}
}

func TestInstrumentTable(t *testing.T) {
	a := newApp(io.Discard)
	md := instrumentTable("x", a.calc.InstrumentsFor(models.Moderate))
	for _, id := range []string{"mf_equity", "ppf", "us_index", "gold"} {
		if !strings.Contains(md, "`"+id+"`") {
			t.Errorf("table missing %s:\n%s", id, md)
		}
	}
}
