// Package serve is the process-level wiring between a dispatch.Pipeline and
// net/http. The pipeline itself has no opinion on transports; this package
// supplies the common one, mounting the pipeline at the root of a gorilla
// mux with request logging and optional middleware adapters.
package serve
