// Package engine drives DSN detection: it walks a project tree in
// deterministic order, dispatches candidate files to the detector registry,
// validates extracted candidates, and stops at the first hit.
//
// Concurrency model: candidate paths are gathered into bounded batches and
// each batch is read and evaluated by a worker pool, but batch results are
// inspected strictly in traversal order and no further batch starts once a
// match is found. Speculative matches from later-ordered files in the same
// batch are discarded, so the returned result is always the one the purely
// sequential scan would have produced.
package engine
