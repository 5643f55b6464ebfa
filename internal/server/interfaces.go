package server

import "context"

// Server is the lifecycle contract of the portal's transports.
type Server interface {
	// RunServer serves until ctx is cancelled or any transport fails, then
	// shuts every transport down. The transport failure, if any, is returned.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops every transport. It is safe to call more
	// than once.
	Shutdown()
}
