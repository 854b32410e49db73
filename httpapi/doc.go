// Package httpapi exposes maze generation and race coordination over a
// small JSON API. Mazes and race sessions live in process-local stores
// keyed by UUID; nothing is persisted.
//
// Routes (under the configured base URL):
//
//	POST /v1/mazes          generate a maze
//	GET  /v1/mazes/:id      re-fetch a generated maze
//	POST /v1/races          start a race between two algorithms
//	POST /v1/races/:id/tick advance a race by a batch of ticks
//	GET  /v1/races/:id      read a race snapshot without advancing
package httpapi
