// Package controllers maps HTTP requests onto the services layer. Each
// controller owns its request schemas; domain errors are translated to the
// JSON envelope via their apperr kind.
package controllers

import (
	"github.com/bargaoui/rideaux/pkg/apperr"
	"github.com/bargaoui/rideaux/pkg/ctx"
	"github.com/bargaoui/rideaux/pkg/logger"
)

// fail writes err as a JSON error envelope. Internal errors are logged with
// the request's logger and masked with a generic message.
func fail(c *ctx.Context, err error) {
	if apperr.KindOf(err) == apperr.Internal {
		logger.WithCtx(c.Context()).Error("request failed", "error", err)
	}
	c.Error(apperr.Status(err), apperr.Message(err))
}

func invalidNumberErr(key string) error {
	return apperr.New(apperr.Validation, "Invalid numeric value for "+key)
}
