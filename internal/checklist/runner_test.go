package checklist

import (
	"strings"
	"testing"

	"deploycheck/internal/logging"
)

type recordingReporter struct {
	sections []string
	results  []Result
	summary  *Tally
}

func (r *recordingReporter) Section(title string) { r.sections = append(r.sections, title) }

func (r *recordingReporter) Result(result Result) { r.results = append(r.results, result) }

func (r *recordingReporter) Summary(tally Tally) { r.summary = &tally }

func always(v bool) func() bool { return func() bool { return v } }

func TestCheckCountsPassAndFail(t *testing.T) {
	rep := &recordingReporter{}
	r := NewRunner(rep, logging.NewNop())

	if got := r.Check(Definition{Name: "ok", Check: always(true)}); got != OutcomePass {
		t.Fatalf("expected PASS, got %s", got)
	}
	if got := r.Check(Definition{Name: "bad", Check: always(false), Detail: "missing marker"}); got != OutcomeFail {
		t.Fatalf("expected FAIL, got %s", got)
	}

	tally := r.Tally()
	if tally.Passed != 1 || tally.Failed != 1 || tally.Warnings != 0 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
	if len(rep.results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(rep.results))
	}
	if rep.results[0].Detail != "" {
		t.Fatalf("passing check must not carry detail, got %q", rep.results[0].Detail)
	}
	if rep.results[1].Detail != "missing marker" || rep.results[1].Kind != KindCheck {
		t.Fatalf("unexpected failing result: %+v", rep.results[1])
	}
}

func TestAdviseCountsWarningsOnly(t *testing.T) {
	rep := &recordingReporter{}
	r := NewRunner(rep, logging.NewNop())

	r.Advise(Definition{Name: "optional present", Check: always(true)})
	r.Advise(Definition{Name: "optional missing", Check: always(false)})

	tally := r.Tally()
	if tally.Passed != 0 || tally.Failed != 0 {
		t.Fatalf("advisory checks must not touch passed/failed: %+v", tally)
	}
	if tally.Warnings != 1 || tally.Advisory != 1 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
	if rep.results[0].Outcome != OutcomeOK || rep.results[1].Outcome != OutcomeWarning {
		t.Fatalf("unexpected outcomes: %+v", rep.results)
	}
}

func TestRunDispatchesOnSeverity(t *testing.T) {
	r := NewRunner(nil, nil)
	if got := r.Run(Definition{Name: "w", Check: always(false), Severity: SeverityWarn}); got != OutcomeWarning {
		t.Fatalf("expected WARNING, got %s", got)
	}
	if got := r.Run(Definition{Name: "f", Check: always(false)}); got != OutcomeFail {
		t.Fatalf("expected FAIL, got %s", got)
	}
}

func TestPanickingPredicateFails(t *testing.T) {
	rep := &recordingReporter{}
	r := NewRunner(rep, logging.NewNop())

	got := r.Check(Definition{Name: "boom", Check: func() bool {
		var s []string
		return s[3] == ""
	}})
	if got != OutcomeFail {
		t.Fatalf("expected FAIL, got %s", got)
	}
	if !strings.Contains(rep.results[0].Detail, "panicked") {
		t.Fatalf("expected panic detail, got %q", rep.results[0].Detail)
	}
}

func TestNilPredicateFails(t *testing.T) {
	r := NewRunner(nil, nil)
	if got := r.Check(Definition{Name: "empty"}); got != OutcomeFail {
		t.Fatalf("expected FAIL, got %s", got)
	}
}

func TestSkipAndRecord(t *testing.T) {
	rep := &recordingReporter{}
	r := NewRunner(rep, logging.NewNop())

	r.Section("4. Security Checks")
	r.Skip("_headers file missing")
	r.Record("HTML file size", OutcomeWarning, "150,000 bytes")

	tally := r.Tally()
	if tally.Warnings != 2 || tally.Evaluated() != 2 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
	if rep.results[0].Kind != KindSkip || rep.results[1].Kind != KindMeasure {
		t.Fatalf("unexpected kinds: %+v", rep.results)
	}
	if len(rep.sections) != 1 || rep.sections[0] != "4. Security Checks" {
		t.Fatalf("unexpected sections: %v", rep.sections)
	}
}

func TestFinalizeExitCode(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []Outcome
		want     int
	}{
		{"empty", nil, 0},
		{"warnings only", []Outcome{OutcomeWarning, OutcomeOK, OutcomePass}, 0},
		{"one failure", []Outcome{OutcomePass, OutcomeFail}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &recordingReporter{}
			r := NewRunner(rep, logging.NewNop())
			for _, o := range tt.outcomes {
				r.Record("x", o, "")
			}
			if got := r.Finalize(); got != tt.want {
				t.Fatalf("Finalize() = %d, want %d", got, tt.want)
			}
			if rep.summary == nil {
				t.Fatal("expected summary to be reported")
			}
			if rep.summary.Evaluated() != len(tt.outcomes) {
				t.Fatalf("summary counted %d, want %d", rep.summary.Evaluated(), len(tt.outcomes))
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	want := map[Outcome]string{
		OutcomePass:    "PASS",
		OutcomeFail:    "FAIL",
		OutcomeWarning: "WARNING",
		OutcomeOK:      "OK",
		Outcome(99):    "UNKNOWN",
	}
	for o, s := range want {
		if o.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(o), o.String(), s)
		}
	}
}
