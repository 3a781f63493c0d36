package checklist

import (
	"fmt"
	"log/slog"

	"deploycheck/internal/logging"
)

// Reporter renders runner events.
type Reporter interface {
	Section(title string)
	Result(result Result)
	Summary(tally Tally)
}

// Runner evaluates definitions in call order and owns the tally.
type Runner struct {
	reporter Reporter
	logger   *slog.Logger
	tally    Tally
	section  string
}

// NewRunner returns a runner that reports through reporter. A nil reporter
// discards output.
func NewRunner(reporter Reporter, logger *slog.Logger) *Runner {
	if reporter == nil {
		reporter = discardReporter{}
	}
	return &Runner{
		reporter: reporter,
		logger:   logging.NewComponentLogger(logger, "checklist"),
	}
}

// Section starts a new category of checks.
func (r *Runner) Section(title string) {
	r.section = title
	r.reporter.Section(title)
}

// Run dispatches def on its severity.
func (r *Runner) Run(def Definition) Outcome {
	if def.Severity == SeverityWarn {
		return r.Advise(def)
	}
	return r.Check(def)
}

// Check evaluates a required definition: PASS when it holds, FAIL otherwise.
// A panicking predicate counts as FAIL.
func (r *Runner) Check(def Definition) Outcome {
	ok, detail := evaluate(def)
	result := Result{Kind: KindCheck, Name: def.Name, Outcome: OutcomePass}
	if !ok {
		result.Outcome = OutcomeFail
		result.Detail = detail
	}
	r.emit(result)
	return result.Outcome
}

// Advise evaluates an advisory definition: OK when it holds, WARNING otherwise.
func (r *Runner) Advise(def Definition) Outcome {
	ok, _ := evaluate(def)
	result := Result{Kind: KindAdvisory, Name: def.Name, Outcome: OutcomeOK}
	if !ok {
		result.Outcome = OutcomeWarning
	}
	r.emit(result)
	return result.Outcome
}

// Skip records one warning for a missing precondition.
func (r *Runner) Skip(message string) {
	r.emit(Result{Kind: KindSkip, Name: message, Outcome: OutcomeWarning})
}

// Record counts an outcome computed by the caller.
func (r *Runner) Record(name string, outcome Outcome, detail string) {
	r.emit(Result{Kind: KindMeasure, Name: name, Outcome: outcome, Detail: detail})
}

// Tally returns a copy of the current counters.
func (r *Runner) Tally() Tally {
	return r.tally
}

// Finalize reports the summary and returns the process exit code.
func (r *Runner) Finalize() int {
	r.reporter.Summary(r.tally)
	r.logger.Debug("checklist finished",
		logging.Int("passed", r.tally.Passed),
		logging.Int("failed", r.tally.Failed),
		logging.Int("warnings", r.tally.Warnings),
	)
	return r.tally.ExitCode()
}

func (r *Runner) emit(result Result) {
	r.tally.add(result.Outcome)
	r.logger.Debug("check evaluated",
		logging.String(logging.FieldGroup, r.section),
		logging.String(logging.FieldCheck, result.Name),
		logging.String(logging.FieldOutcome, result.Outcome.String()),
	)
	r.reporter.Result(result)
}

func evaluate(def Definition) (ok bool, detail string) {
	if def.Check == nil {
		return false, "no predicate defined"
	}
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			detail = fmt.Sprintf("check panicked: %v", rec)
		}
	}()
	if def.Check() {
		return true, ""
	}
	return false, def.Detail
}

type discardReporter struct{}

func (discardReporter) Section(string) {}

func (discardReporter) Result(Result) {}

func (discardReporter) Summary(Tally) {}
