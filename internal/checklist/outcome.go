package checklist

// Outcome is the result of evaluating one check.
type Outcome int

const (
	// OutcomePass means a required check held.
	OutcomePass Outcome = iota
	// OutcomeFail means a required check did not hold.
	OutcomeFail
	// OutcomeWarning means an advisory check did not hold or a precondition was missing.
	OutcomeWarning
	// OutcomeOK means an advisory check held. It never affects the verdict.
	OutcomeOK
)

func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "PASS"
	case OutcomeFail:
		return "FAIL"
	case OutcomeWarning:
		return "WARNING"
	case OutcomeOK:
		return "OK"
	default:
		return "UNKNOWN"
	}
}

// Severity decides what a false predicate costs.
type Severity int

const (
	// SeverityFail counts a false predicate as a failure.
	SeverityFail Severity = iota
	// SeverityWarn counts a false predicate as a warning.
	SeverityWarn
)

// Kind tells a Reporter how a Result was produced.
type Kind int

const (
	// KindCheck is a required check (runCheck).
	KindCheck Kind = iota
	// KindAdvisory is an advisory check (runWarning).
	KindAdvisory
	// KindSkip is a missing precondition counted as one warning.
	KindSkip
	// KindMeasure is an externally computed outcome such as a size bucket.
	KindMeasure
)

// Definition is one named check over already-loaded text.
type Definition struct {
	Name     string
	Check    func() bool
	Severity Severity
	// Detail is printed under a FAIL line when set.
	Detail string
}

// Result is emitted to the Reporter once per counted check.
type Result struct {
	Kind    Kind
	Name    string
	Outcome Outcome
	Detail  string
}

// Tally holds the running counters for one run.
type Tally struct {
	Passed   int
	Failed   int
	Warnings int
	// Advisory counts advisory checks that came back OK.
	Advisory int
}

// Evaluated returns the number of counted checks.
func (t Tally) Evaluated() int {
	return t.Passed + t.Failed + t.Warnings + t.Advisory
}

// OK reports whether no check failed. Warnings do not matter.
func (t Tally) OK() bool {
	return t.Failed == 0
}

// ExitCode maps the tally to a process exit status.
func (t Tally) ExitCode() int {
	if t.OK() {
		return 0
	}
	return 1
}

func (t *Tally) add(outcome Outcome) {
	switch outcome {
	case OutcomePass:
		t.Passed++
	case OutcomeFail:
		t.Failed++
	case OutcomeWarning:
		t.Warnings++
	case OutcomeOK:
		t.Advisory++
	}
}
