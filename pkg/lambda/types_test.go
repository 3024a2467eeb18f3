package lambda

import (
	"encoding/base64"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAPIGatewayV2(t *testing.T) {
	event := events.APIGatewayV2HTTPRequest{
		RouteKey:       "POST /user/userProfile/{id}",
		RawPath:        "/user/userProfile/7",
		Headers:        map[string]string{"content-type": "application/json"},
		Cookies:        []string{"token=abc"},
		PathParameters: map[string]string{"id": "7"},
		Body:           `{"age":30}`,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RequestID: "req-1",
			HTTP:      events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: "POST"},
		},
	}

	got, err := FromAPIGatewayV2(event)
	require.NoError(t, err)

	want := &Request{
		RouteKey:   "POST /user/userProfile/{id}",
		Method:     "POST",
		Path:       "/user/userProfile/7",
		Headers:    map[string]string{"content-type": "application/json"},
		Cookies:    []string{"token=abc"},
		PathParams: map[string]string{"id": "7"},
		Body:       []byte(`{"age":30}`),
		RequestID:  "req-1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromAPIGatewayV2() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAPIGatewayV2_Base64Body(t *testing.T) {
	event := events.APIGatewayV2HTTPRequest{
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"age":30}`)),
		IsBase64Encoded: true,
	}

	got, err := FromAPIGatewayV2(event)
	require.NoError(t, err)
	assert.Equal(t, `{"age":30}`, string(got.Body))

	event.Body = "%%%"
	_, err = FromAPIGatewayV2(event)
	assert.Error(t, err)
}

func TestToAPIGatewayV2(t *testing.T) {
	resp := ToAPIGatewayV2(&Response{
		StatusCode: 401,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`"User not authenticated"`),
	})

	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, `"User not authenticated"`, resp.Body)
}
