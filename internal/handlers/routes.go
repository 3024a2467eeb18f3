package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fitplan-api/internal/middleware"
	"fitplan-api/pkg/lambda"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	UserHandler    *UserHandler
	MetricsHandler http.Handler
	HealthCheck    func(ctx context.Context) error
	DevInfo        map[string]string
}

// SetupRoutes configures the user routes plus health and metrics endpoints
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		if config.HealthCheck != nil {
			if err := config.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"service": "fitplan-api",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "fitplan-api",
			"version": "1.0.0",
		})
	})

	if config.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(config.MetricsHandler))
	}

	for _, routeKey := range RouteKeys() {
		method, template, _ := strings.Cut(routeKey, " ")
		router.Handle(method, ginPath(template), dispatchHandler(config.UserHandler, routeKey))
	}

	// Unknown paths still go through authentication and the {id} binding first
	router.NoRoute(func(c *gin.Context) {
		dispatchHandler(config.UserHandler, c.Request.Method+" "+c.Request.URL.Path)(c)
	})
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, logger *logrus.Logger, corsOrigin string, rps float64, burst int) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(corsOrigin))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimiter(rps, burst, logger))
	router.Use(middleware.StructuredLogger(logger))
}

// SetupDevelopmentRoutes adds development-only routes
func SetupDevelopmentRoutes(router *gin.Engine, config *RouterConfig) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	dev := router.Group("/dev")
	{
		dev.GET("/config", func(c *gin.Context) {
			c.JSON(http.StatusOK, config.DevInfo)
		})
	}
}

// ginPath turns "/user/userProfile/{id}" into "/user/userProfile/:id"
func ginPath(template string) string {
	segments := strings.Split(template, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			segments[i] = ":" + strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
		}
	}
	return strings.Join(segments, "/")
}

// dispatchHandler adapts a gin request into the serverless request shape
func dispatchHandler(h *UserHandler, routeKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := requestFromGin(c, routeKey)
		if err != nil {
			writeResponse(c, respond(http.StatusBadRequest, MsgInvalidBody))
			return
		}

		writeResponse(c, h.Dispatch(c.Request.Context(), req))
	}
}

func requestFromGin(c *gin.Context, routeKey string) (*lambda.Request, error) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for name := range c.Request.Header {
		headers[strings.ToLower(name)] = c.Request.Header.Get(name)
	}

	var cookies []string
	if cookie := c.GetHeader("Cookie"); cookie != "" {
		cookies = []string{cookie}
	}

	pathParams := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		pathParams[p.Key] = p.Value
	}
	if len(c.Params) == 0 {
		// Unmatched paths bind their last segment so a wrong method reaches the route lookup
		pathParams["id"] = lastSegment(c.Request.URL.Path)
	}

	return &lambda.Request{
		RouteKey:   routeKey,
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		Headers:    headers,
		Cookies:    cookies,
		PathParams: pathParams,
		Body:       body,
		RequestID:  c.GetString(middleware.RequestIDKey),
	}, nil
}

func lastSegment(path string) string {
	path = strings.TrimSuffix(path, "/")
	return path[strings.LastIndex(path, "/")+1:]
}

func writeResponse(c *gin.Context, resp *lambda.Response) {
	for name, value := range resp.Headers {
		c.Header(name, value)
	}
	c.Data(resp.StatusCode, resp.Headers[contentTypeHeaderName], resp.Body)
}
