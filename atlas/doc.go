// Package atlas owns a set of independently-seeded solver runs, generating
// and caching each one lazily on first access, the way the teacher's
// internal/tower package generated dungeon floors on demand. Where the
// teacher cached *Floor values keyed by floor number, atlas caches fully
// drained Map values keyed by an integer index, so that a slow first
// request pays the generation cost once and every later request for the
// same index is a cache hit.
package atlas
