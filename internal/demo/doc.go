// Package demo implements the name-card demo server: a profile form whose
// first/last fields live in a substrate store, one store per WebSocket
// session. Field-scoped bindings push targeted updates to the browser, so
// editing one field never refreshes consumers bound to the other.
package demo
