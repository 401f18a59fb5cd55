package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoSession indicates a selection or pagination command arrived
	// for a user with no active search session. This is a normal
	// empty state, not a failure.
	ErrNoSession = errors.New("no active session")

	// ErrEmptyKeyword indicates a search trigger with nothing after
	// the prefix once whitespace is trimmed.
	ErrEmptyKeyword = errors.New("empty search keyword")

	// ErrPageOutOfRange indicates a page number outside [1, totalPages].
	// Callers clamp or bounce before paging; the engine reports this
	// when handed an invalid page anyway.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrIndexOutOfRange indicates a selection index that resolves
	// outside the result list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrGatewayUnavailable indicates the search gateway call failed
	// (refused, timed out, non-success status, or a malformed body).
	ErrGatewayUnavailable = errors.New("search gateway unavailable")

	// ErrLinkGeneration indicates the share-by-path collaborator could
	// not produce a provisional link. The resolution as a whole fails
	// and no transfer task is scheduled.
	ErrLinkGeneration = errors.New("link generation failed")

	// ErrTransfer indicates the detached transfer call failed. It is
	// recorded on the TransferTask only and never shown to the user.
	ErrTransfer = errors.New("transfer failed")

	// ErrInvalidTransition indicates an attempted transfer-status
	// change that would violate the monotone task lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnsupportedBackend indicates a result item whose backend kind
	// has no registered resolver.
	ErrUnsupportedBackend = errors.New("unsupported backend kind")
)
