package domain

// Resolution is the immediate outcome of resolving a selected result:
// a link the user can be handed right away. For backends that need
// asynchronous materialization the link is provisional and a detached
// transfer must be started by the caller once the reply has been sent.
type Resolution struct {
	// Link is the share link to hand to the user.
	Link string

	// AccessCode is the extraction code for the link, if any.
	AccessCode string

	// Provisional is true when the linked content is still being
	// materialized and may take a bounded delay to become visible.
	Provisional bool

	// TaskID identifies the transfer task backing a provisional
	// resolution. Empty for synchronous resolutions.
	TaskID string

	// Start launches the detached transfer backing a provisional
	// resolution. Nil for synchronous resolutions. The caller must
	// send its reply before invoking Start so the immediate response
	// always precedes the background work.
	Start func()
}
