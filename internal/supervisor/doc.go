// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package supervisor runs the service's long-running components under a suture v4
supervisor tree.

	RootSupervisor ("tunematch")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The catalog and recommendation engine are built before the tree starts and
are immutable, so they need no supervision. A crashed HTTP server is
restarted with suture's exponential backoff; context cancellation (SIGINT or
SIGTERM in cmd/server) shuts the tree down, waiting up to
TreeConfig.ShutdownTimeout for services to return.

Supervisor events are logged through sutureslog, which takes a *slog.Logger.
Pass logging.NewSlogLogger() to route them into the zerolog output:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
