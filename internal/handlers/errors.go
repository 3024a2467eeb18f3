package handlers

import (
	"context"
	"errors"
	"net/http"

	"fitplan-api/internal/models"
	"fitplan-api/internal/repositories"
	"fitplan-api/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// errorResponse maps a service error onto the client-facing status and message.
// Error details are logged but never copied into the body.
func (h *UserHandler) errorResponse(ctx context.Context, req *lambda.Request, err error, notFoundMsg string) *lambda.Response {
	switch {
	case models.IsValidationError(err):
		return respond(http.StatusBadRequest, MsgMissingFields)
	case notFoundMsg != "" && repositories.IsNotFound(err):
		return respond(http.StatusBadRequest, notFoundMsg)
	}

	fields := logrus.Fields{
		"route_key":  req.RouteKey,
		"request_id": req.RequestID,
	}

	var repoErr *repositories.RepositoryError
	if errors.As(err, &repoErr) && repoErr.Cause != nil {
		fields["cause"] = repoErr.Cause.Error()
	}

	h.logger.WithContext(ctx).WithFields(fields).WithError(err).Error("Request failed")
	return respond(http.StatusInternalServerError, MsgInternalError)
}
