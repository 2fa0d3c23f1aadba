// Package api is the thin HTTP presentation layer over the placename
// engine: a chi router exposing a listing endpoint, a statistics endpoint,
// a liveness probe and a minimal HTML form page.
//
// The handler owns an immutable dataset shared across requests; every
// request builds its own short-lived Generator over it, so per-request
// threshold overrides never race. Request parameters are parsed and clamped
// here - the engine itself never sees raw query values.
package api
