// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package services provides suture.Service wrappers for long-running components.

HTTPServerService adapts the blocking ListenAndServe/Shutdown pair of
*http.Server to suture's context-aware Serve:

	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

Return values drive the supervisor:

	nil         -> stopped cleanly, not restarted
	error       -> crashed, restarted with backoff
	ctx.Err()   -> shutdown requested

http.ErrServerClosed is treated as a clean stop. The HTTPServer interface
lets tests substitute a fake server.
*/
package services
