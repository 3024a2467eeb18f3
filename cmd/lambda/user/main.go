package main

import (
	"context"
	"net/http"

	"fitplan-api/internal/handlers"
	"fitplan-api/pkg/lambda"
	"fitplan-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

// containerSource hands out the warm container for an invocation
type containerSource interface {
	GetContainer(ctx context.Context) (*server.Container, error)
}

type app struct {
	containers containerSource
}

func (a *app) handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	container, err := a.containers.GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).WithField("request_id", event.RequestContext.RequestID).Error("Failed to initialize container")
		return lambda.ToAPIGatewayV2(handlers.JSONResponse(http.StatusInternalServerError, handlers.MsgInternalError)), nil
	}

	req, err := lambda.FromAPIGatewayV2(event)
	if err != nil {
		container.Logger.WithError(err).WithField("request_id", event.RequestContext.RequestID).Warn("Rejected undecodable request body")
		return lambda.ToAPIGatewayV2(handlers.JSONResponse(http.StatusBadRequest, handlers.MsgInvalidBody)), nil
	}

	return lambda.ToAPIGatewayV2(container.UserHandler.Dispatch(ctx, req)), nil
}

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	a := &app{containers: server.GetConnectionManager()}
	awslambda.Start(a.handle)
}
