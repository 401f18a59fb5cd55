package domain

import "time"

// TransferStatus is the state of a background materialization job.
type TransferStatus string

const (
	// TransferPending means the task has been created but the
	// transfer call has not started yet.
	TransferPending TransferStatus = "pending"

	// TransferRunning means the transfer call is in flight.
	TransferRunning TransferStatus = "transferring"

	// TransferCompleted means the transfer finished successfully.
	TransferCompleted TransferStatus = "completed"

	// TransferFailed means the transfer call failed. The failure is
	// recorded on the task and never surfaced to the user who already
	// received the provisional link.
	TransferFailed TransferStatus = "failed"
)

// Terminal reports whether the status is an end state.
func (s TransferStatus) Terminal() bool {
	return s == TransferCompleted || s == TransferFailed
}

// CanTransition reports whether moving from s to next respects the
// monotone task lifecycle: pending -> transferring -> completed|failed.
// No task ever regresses or leaves a terminal state.
func (s TransferStatus) CanTransition(next TransferStatus) bool {
	switch s {
	case TransferPending:
		return next == TransferRunning || next == TransferFailed
	case TransferRunning:
		return next == TransferCompleted || next == TransferFailed
	default:
		return false
	}
}

// TransferTask is one background materialization job: the detached
// copy of a selected share into its serving path.
type TransferTask struct {
	// ID is a unique opaque token for the task.
	ID string

	// Status is the current lifecycle state.
	Status TransferStatus

	// Title is the title of the resource being transferred.
	Title string

	// DestPath is the serving path the share is transferred into.
	DestPath string

	// StartedAt is when the task was created.
	StartedAt time.Time

	// FinishedAt is when the task reached a terminal state. Zero
	// while the task is pending or transferring.
	FinishedAt time.Time

	// Error describes the failure. Set iff Status is TransferFailed.
	Error string
}
