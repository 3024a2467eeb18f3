package lambda

import (
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	RouteKey   string            `json:"route_key"`
	Method     string            `json:"method"`
	Path       string            `json:"path"`
	Headers    map[string]string `json:"headers"`
	Cookies    []string          `json:"cookies"`
	PathParams map[string]string `json:"path_params"`
	Body       []byte            `json:"body"`
	RequestID  string            `json:"request_id"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// FromAPIGatewayV2 converts an HTTP API (payload v2) event into a generic request
func FromAPIGatewayV2(event events.APIGatewayV2HTTPRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded && event.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = decoded
	}

	return &Request{
		RouteKey:   event.RouteKey,
		Method:     event.RequestContext.HTTP.Method,
		Path:       event.RawPath,
		Headers:    event.Headers,
		Cookies:    event.Cookies,
		PathParams: event.PathParameters,
		Body:       body,
		RequestID:  event.RequestContext.RequestID,
	}, nil
}

// ToAPIGatewayV2 converts a generic response into an HTTP API (payload v2) response
func ToAPIGatewayV2(resp *Response) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}
