package services

import "github.com/panseek/panseek/internal/core/domain"

// groupBlockSize is the block length of the interleave: up to five
// items from one kind, then up to five from the other. Selection by
// number depends on this order staying exactly stable, so the block
// size is a contract, not a tuning knob.
const groupBlockSize = 5

// Group merges the quark and baidu result lists into one display
// order using a 5-and-5 block interleave: up to five unconsumed quark
// items, then up to five baidu items, alternating until both lists
// are exhausted. Items keep their relative order within each list; no
// item is dropped or duplicated, so the output length is always
// len(quark) + len(baidu).
//
// Group is pure. It also stamps the backend kind on every item, so
// nothing downstream ever sees an item without provenance even when
// the gateway omitted it.
func Group(quark, baidu []domain.ResultItem) []domain.ResultItem {
	merged := make([]domain.ResultItem, 0, len(quark)+len(baidu))
	qi, bi := 0, 0

	for qi < len(quark) || bi < len(baidu) {
		for end := min(qi+groupBlockSize, len(quark)); qi < end; qi++ {
			item := quark[qi]
			item.Backend = domain.BackendQuark
			merged = append(merged, item)
		}
		for end := min(bi+groupBlockSize, len(baidu)); bi < end; bi++ {
			item := baidu[bi]
			item.Backend = domain.BackendBaidu
			merged = append(merged, item)
		}
	}

	return merged
}
