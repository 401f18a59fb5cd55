package driving

import "context"

// ReplySink receives outbound reply texts in order. A handler may emit
// a short sequence per inbound message (an acknowledgment followed by
// a result); the sink is called once per reply.
type ReplySink func(text string)

// MessageHandler is the conversational entry point. Every inbound text
// maps to exactly one action (search, select, page, or no-op) and
// terminates in zero or more replies; no input is an error.
type MessageHandler interface {
	// HandleMessage processes one inbound text for one user. Replies
	// are emitted through reply before HandleMessage returns, except
	// that detached background work may continue afterwards. The
	// returned error reports infrastructure problems only; user-level
	// failures become reply texts.
	HandleMessage(ctx context.Context, ownerID, text string, reply ReplySink) error
}
