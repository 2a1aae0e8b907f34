package server

import "errors"

var (
	ErrMissingAddress       = errors.New("server address is required")
	ErrInvalidConfig        = errors.New("invalid server configuration")
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrListen               = errors.New("failed to bind listener")
	ErrHTTPServer           = errors.New("HTTP server error")
	ErrHTTPShutdown         = errors.New("HTTP shutdown error")
)
