// Package cache implements spec.md §5/§6's external cache capability: a
// synchronous get/set interface keyed by a stable content hash of an
// intra-node routing sub-problem, plus an in-memory implementation. The
// cache is purely an optimization — every stage that consults one must
// produce identical output with Cache == nil.
package cache
