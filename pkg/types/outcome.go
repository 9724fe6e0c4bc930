// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Outcome classifies a single external conversion attempt.
type Outcome string

const (
	// OutcomeLaunchFailed means the converter process could not be started
	// (binary missing from PATH, not executable).
	OutcomeLaunchFailed Outcome = "launch_failed"

	// OutcomeExitFailed means the process ran and exited non-zero.
	OutcomeExitFailed Outcome = "exit_failed"

	// OutcomeSucceeded means the process ran and exited zero.
	OutcomeSucceeded Outcome = "succeeded"
)

// Launched reports whether a process was actually started.
func (o Outcome) Launched() bool {
	return o == OutcomeExitFailed || o == OutcomeSucceeded
}
