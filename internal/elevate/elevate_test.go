package elevate

import (
	"errors"
	"os/exec"
	"testing"
)

func exitError(t *testing.T) *exec.ExitError {
	t.Helper()
	err := exec.Command("false").Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error from false, got %v", err)
	}
	return exitErr
}

func TestClassifySuccess(t *testing.T) {
	outcome := Classify(nil, "")
	if !outcome.OK() || outcome.Message != "" {
		t.Fatalf("expected clean success, got %#v", outcome)
	}
}

func TestClassifyRejectionPhraseWinsOverExitStatus(t *testing.T) {
	cases := []string{
		"[sudo] password for operator: Sorry, try again.\n",
		"sudo: 3 incorrect password attempts\n",
		"operator is not in the sudoers file.\n",
		"Sorry, user operator is not allowed to execute '/usr/sbin/efibootmgr' as root.\n",
	}
	for _, stderr := range cases {
		outcome := Classify(exitError(t), stderr)
		if outcome.Status != StatusAuthFailure {
			t.Fatalf("expected auth failure for %q, got %#v", stderr, outcome)
		}
		if outcome.Message != "Incorrect password" {
			t.Fatalf("unexpected message %q", outcome.Message)
		}
	}
}

func TestClassifyRejectionPhraseWithZeroExit(t *testing.T) {
	// Phrase match takes priority irrespective of the exit status.
	outcome := Classify(nil, "Sorry, try again.\n")
	if outcome.Status != StatusAuthFailure {
		t.Fatalf("expected auth failure, got %#v", outcome)
	}
}

func TestClassifyGenericFailureUsesStderr(t *testing.T) {
	outcome := Classify(exitError(t), "efibootmgr: invalid BootOrder\n")
	if outcome.Status != StatusFailure {
		t.Fatalf("expected failure, got %#v", outcome)
	}
	if outcome.Message != "efibootmgr: invalid BootOrder" {
		t.Fatalf("expected trimmed stderr text, got %q", outcome.Message)
	}
}

func TestClassifyGenericFailureEmptyStderr(t *testing.T) {
	outcome := Classify(exitError(t), "")
	if outcome.Status != StatusFailure {
		t.Fatalf("expected failure, got %#v", outcome)
	}
	if outcome.Message != "command exited with status 1" {
		t.Fatalf("unexpected fallback message %q", outcome.Message)
	}
}

func TestClassifyNonExitError(t *testing.T) {
	outcome := Classify(errors.New("fork/exec: no such file"), "")
	if outcome.Status != StatusFailure || outcome.Message != "fork/exec: no such file" {
		t.Fatalf("unexpected outcome %#v", outcome)
	}
}

func TestRunRejectsEmptyArgv(t *testing.T) {
	if outcome := Run(nil, "secret"); outcome.Status != StatusFailure {
		t.Fatalf("expected failure for empty argv, got %#v", outcome)
	}
	if outcome := RunDetached(nil); outcome.Status != StatusFailure {
		t.Fatalf("expected failure for empty argv, got %#v", outcome)
	}
}
