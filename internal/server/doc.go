// Package server runs the blog HTTP API and the gRPC health service.
//
// Every transport with a configured address is started, and all of them are
// stopped gracefully on a termination signal.
package server
