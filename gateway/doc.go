// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gateway moves survey responses between a client and wherever they
are stored.

# Interfaces

Writer and Reader are the two operations the survey controller and the
CLI depend on. HTTPGateway implements both against the API server;
store.Store implements them directly against the database.

# Failures

Every failed operation returns a *Failure carrying the operation, a Kind
and, for KindStatus, the HTTP status. Failures are logged where they are
created, so callers only decide what to show:

	var f *gateway.Failure
	if errors.As(err, &f) && f.Kind == gateway.KindTimeout {
		...
	}

Requests are bounded by a timeout and never retried.

# Fallback Chain

Resilient reads from the primary source first. When that fails it serves
the last snapshot saved by SnapshotCache, then the StaticSource dataset.
Only when all three fail does it return ErrNoData. Result.Notice reports
the offline message whenever a fallback was used.

SnapshotCache stores one snapshot in badger, encoded as CBOR and
compressed with zstd. StaticSource accepts JSON with comments; with no
path it serves an embedded sample dataset.
*/
package gateway
