// Package server runs an http.Handler with production timeouts and graceful
// shutdown. It wraps the standard http.Server and fits errgroup-based
// lifecycles.
//
// # Basic Usage
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, handler))
//	if err := eg.Wait(); err != nil {
//		log.Error("Server failed", logger.Error(err))
//	}
//
// Run returns nil once the context is cancelled and shutdown completes. A
// failure to bind or serve is returned as is, wrapped with ErrListen or
// ErrHTTPServer.
//
// # Configuration
//
// Config reads SERVER_ADDR, SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT,
// SERVER_IDLE_TIMEOUT, SERVER_SHUTDOWN_TIMEOUT and SERVER_MAX_HEADER_BYTES.
// Zero durations fall back to the Default* constants.
//
// Starting a server that is already running returns ErrServerAlreadyRunning.
// Stop on a server that never started is a no-op.
package server
