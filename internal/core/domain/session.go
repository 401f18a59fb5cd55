package domain

// DefaultPageSize is the number of results shown per page when a
// session is created without an explicit page size.
const DefaultPageSize = 10

// SearchSession is one user's most recent search: the grouped result
// list and the page cursor. A session is created (or overwritten) on
// every successful search and mutated by pagination commands. It is
// never explicitly destroyed; a new search for the same owner simply
// replaces it.
type SearchSession struct {
	// OwnerID is the opaque identifier of the user the session
	// belongs to. At most one session exists per owner.
	OwnerID string

	// Results is the grouped result list in display order. Selection
	// by number depends on this order staying stable for the lifetime
	// of the session.
	Results []ResultItem

	// Page is the current page cursor, 1-based.
	Page int

	// PageSize is fixed at session creation.
	PageSize int
}

// NewSearchSession creates a session on page 1. A non-positive
// pageSize falls back to DefaultPageSize.
func NewSearchSession(ownerID string, results []ResultItem, pageSize int) SearchSession {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return SearchSession{
		OwnerID:  ownerID,
		Results:  results,
		Page:     1,
		PageSize: pageSize,
	}
}
