// Package elevate runs commands under sudo, feeding the credential on
// stdin and classifying the result.
package elevate

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Status describes how a privileged invocation ended.
type Status int

const (
	StatusOK Status = iota
	StatusAuthFailure
	StatusFailure
)

// Outcome is the classified result of one privileged invocation. Message
// is empty on success, "Incorrect password" on rejected credentials, and
// a diagnostic string otherwise.
type Outcome struct {
	Status  Status
	Message string
}

// OK reports whether the invocation succeeded.
func (o Outcome) OK() bool { return o.Status == StatusOK }

// rejectionPhrases are sudo stderr fragments indicating the credential was
// refused. Matching is a case-sensitive substring check and takes priority
// over the exit status.
var rejectionPhrases = []string{
	"try again",
	"incorrect password attempt",
	"is not in the sudoers file",
	"not allowed to execute",
}

const authFailureMessage = "Incorrect password"

// Run executes argv under sudo -S, writing secret followed by a newline to
// the elevation prompt. The call blocks until the command exits. The stdin
// pipe is closed before waiting; sudo otherwise blocks forever waiting for
// more credential input.
func Run(argv []string, secret string) Outcome {
	if len(argv) == 0 {
		return Outcome{Status: StatusFailure, Message: "no command given"}
	}
	cmd := exec.Command("sudo", append([]string{"-S"}, argv...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return Outcome{Status: StatusFailure, Message: err.Error()}
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return Outcome{Status: StatusFailure, Message: err.Error()}
	}
	fmt.Fprintf(stdin, "%s\n", secret)
	stdin.Close()
	return Classify(cmd.Wait(), stderr.String())
}

// RunDetached executes argv under sudo without piping a credential,
// relying on the timestamp cache primed by a preceding Run. Callers treat
// the invocation as fire-and-forget; the outcome exists only for tracing.
func RunDetached(argv []string) Outcome {
	if len(argv) == 0 {
		return Outcome{Status: StatusFailure, Message: "no command given"}
	}
	cmd := exec.Command("sudo", argv...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	return Classify(cmd.Run(), stderr.String())
}

// Classify folds a wait error and the captured stderr into an Outcome. A
// rejection phrase on stderr wins over the exit status; otherwise non-zero
// exit yields a generic failure carrying the trimmed stderr text, or the
// numeric status when stderr is empty.
func Classify(waitErr error, stderr string) Outcome {
	for _, phrase := range rejectionPhrases {
		if strings.Contains(stderr, phrase) {
			return Outcome{Status: StatusAuthFailure, Message: authFailureMessage}
		}
	}
	if waitErr == nil {
		return Outcome{Status: StatusOK}
	}
	message := strings.TrimSpace(stderr)
	if message == "" {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			message = fmt.Sprintf("command exited with status %d", exitErr.ExitCode())
		} else {
			message = waitErr.Error()
		}
	}
	return Outcome{Status: StatusFailure, Message: message}
}
