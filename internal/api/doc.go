// Package api implements the framegrid HTTP server.
//
// The server exposes plan documents and engine operations over a JSON API:
//
//   - CRUD on plan documents (/api/v1/plans)
//   - engine operations: enforce, grid, links, segments
//   - move sessions: start, pointer updates, finalize
//   - rendering: top-view SVG and topology DOT
//
// Plans live in a [store.Store] chosen by configuration (memory, file,
// redis, or mongo) and every mutation runs load-modify-save under a
// per-plan lock. Move sessions are the exception: a session pins its plan
// in server memory between pointer updates and only writes back on
// finalize, because pointer updates are total-delta recomputes over live
// session state. While a session is open, other mutations on that plan
// return 409.
//
// Configuration comes from environment variables (FRAMEGRID_*), parsed
// with caarlos0/env. See [Config].
package api
