// Package backup snapshots and restores the PAM configuration directory.
//
// The model is deliberately simple: one whole-directory copy at a fixed
// sibling path (by default "<configdir>.backup"). Creating a snapshot
// when one already exists is an idempotent no-op, so the snapshot always
// reflects the state at the time of the first backup. Restoring deletes
// the live directory and copies the snapshot back in full.
//
// Copies preserve file permission bits. The copy is atomic per file at
// best: a failure partway through (disk full, permissions) can leave a
// partially populated tree, and there is no rollback.
package backup
