package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"deploycheck/internal/testsupport"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandCompleteBundle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCompleteBundle(t, cfg)
	chdir(t, cfg.Bundle.Root)

	out, err := executeRoot(t)
	if err != nil {
		t.Fatalf("expected success, got %v\n%s", err, out)
	}
	for _, want := range []string{bannerTitle, "Test Summary", "All critical tests passed!", "Next steps:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRootCommandMissingHTML(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	chdir(t, cfg.Bundle.Root)

	out, err := executeRoot(t)
	if !errors.Is(err, errChecksFailed) {
		t.Fatalf("expected errChecksFailed, got %v", err)
	}
	if !strings.Contains(out, "Critical: HTML file not found. Exiting.") {
		t.Fatalf("expected critical message:\n%s", out)
	}
	if strings.Contains(out, "Test Summary") {
		t.Fatalf("summary must not print after a fatal precondition:\n%s", out)
	}
}

func TestRootCommandFailingCheck(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCompleteBundle(t, cfg)
	testsupport.RemoveFile(t, cfg.Bundle.Path(cfg.Bundle.Notes))
	chdir(t, cfg.Bundle.Root)

	out, err := executeRoot(t)
	if !errors.Is(err, errChecksFailed) {
		t.Fatalf("expected errChecksFailed, got %v", err)
	}
	if !strings.Contains(out, "1 test(s) failed") {
		t.Fatalf("expected failure summary:\n%s", out)
	}
}

func TestRootCommandWarningsStillSucceed(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCompleteBundle(t, cfg)
	testsupport.WritePadded(t, cfg.Bundle.Path(cfg.Bundle.HTML), testsupport.CompleteHTML, 150_000)
	chdir(t, cfg.Bundle.Root)

	out, err := executeRoot(t)
	if err != nil {
		t.Fatalf("warnings alone must not fail the run, got %v\n%s", err, out)
	}
}

func TestRootCommandRejectsArguments(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	chdir(t, cfg.Bundle.Root)

	if _, err := executeRoot(t, "extra"); err == nil {
		t.Fatal("expected positional arguments to be rejected")
	}
}
