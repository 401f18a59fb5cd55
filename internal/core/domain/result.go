package domain

// BackendKind identifies which netdisk provider a result came from.
// The set of kinds is closed: every result is either a quark or a
// baidu share, and resolution behaviour is selected per kind.
type BackendKind string

const (
	// BackendQuark is a pan.quark.cn share. Quark results need an
	// asynchronous transfer into a serving path before the generated
	// link is reliably browsable.
	BackendQuark BackendKind = "quark"

	// BackendBaidu is a pan.baidu.com share. Baidu results carry a
	// directly usable link (plus the access code issued at search
	// time), so resolution is synchronous.
	BackendBaidu BackendKind = "baidu"
)

// Valid reports whether k is one of the known backend kinds.
func (k BackendKind) Valid() bool {
	return k == BackendQuark || k == BackendBaidu
}

// ResultItem is one discoverable netdisk resource.
type ResultItem struct {
	// Title is the display title of the resource.
	Title string

	// RawLink is the backend-specific share URL as returned by the
	// search gateway.
	RawLink string

	// Backend is the originating provider. It is always set before an
	// item leaves the grouping engine, even when the gateway response
	// omitted a provenance field.
	Backend BackendKind

	// AccessCode is the extraction code issued at search time, if the
	// backend uses one. Empty otherwise.
	AccessCode string

	// PublishedAt is the gateway-reported timestamp string for the
	// share. Informational only.
	PublishedAt string

	// Source is the gateway-reported provenance tag (which upstream
	// channel produced the share). Informational only.
	Source string
}

// SearchReply is the gateway response after decoding: the per-kind
// result lists plus the gateway-reported total.
type SearchReply struct {
	// Quark holds the quark results in gateway order.
	Quark []ResultItem

	// Baidu holds the baidu results in gateway order.
	Baidu []ResultItem

	// Total is the number of results the gateway reports across all
	// kinds, which may exceed what it returned.
	Total int
}

// Empty reports whether the reply carries no results at all.
// An empty reply is a normal "no results" outcome, not an error.
func (r *SearchReply) Empty() bool {
	return len(r.Quark) == 0 && len(r.Baidu) == 0
}
