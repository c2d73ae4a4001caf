// Package controller contains HTTP middlewares and helper handlers used by the web server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origin and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context, logs access info
//     and observes request latency.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers under /debug/pprof/.
//   - Flasher: Stores one-shot messages in a signed cookie across a redirect.
package controller
