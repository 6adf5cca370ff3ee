package server

// Server is the lifecycle contract exposed to the entrypoint: start serving
// and stop serving. [RunServer] blocks until the process receives a stop
// signal or the underlying listener fails.
type Server interface {
	RunServer()
	Shutdown()
}
