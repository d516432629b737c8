// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

import "sync"

// historyPool recycles the roughly 50KB of per-call match-finding state.
// Each compression call takes its own history, so concurrent callers never
// share scratch. The caller resets the chain heads on acquire; entries need
// no cleaning because they are written before they are read.
var historyPool = sync.Pool{
	New: func() any {
		return &history{}
	},
}

// acquireHistory takes a history from the pool.
func acquireHistory() *history {
	return historyPool.Get().(*history)
}

// releaseHistory returns a history to the pool.
func releaseHistory(h *history) {
	if h == nil {
		return
	}

	historyPool.Put(h)
}
