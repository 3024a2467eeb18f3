package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fitplan-api/internal/middleware"
	"fitplan-api/internal/models"
	"fitplan-api/internal/services"
	"fitplan-api/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// Route keys served by the user handler
const (
	RoutePostProfile  = "POST /user/userProfile/{id}"
	RoutePostRoutines = "POST /user/userRoutines/{id}"
	RoutePostRecipes  = "POST /user/userRecipes/{id}"
	RouteGetProfile   = "GET /user/userProfile/{id}"
	RouteGetRoutines  = "GET /user/userRoutines/{id}"
	RouteGetRecipes   = "GET /user/userRecipes/{id}"

	unmatchedRouteLabel = "unmatched"
)

// Authenticator resolves the user ID from the request cookies
type Authenticator interface {
	Authenticate(cookies []string) (int64, bool)
}

// RequestObserver receives the outcome of every dispatched request
type RequestObserver interface {
	ObserveRequest(route string, status int, duration time.Duration)
}

type routeFunc func(ctx context.Context, userID int64, req *lambda.Request) *lambda.Response

// UserHandler dispatches the user profile routes
type UserHandler struct {
	auth     Authenticator
	service  services.UserProfileService
	observer RequestObserver
	logger   *logrus.Logger
	routes   map[string]routeFunc
}

// NewUserHandler creates a new user handler
func NewUserHandler(auth Authenticator, service services.UserProfileService, observer RequestObserver, logger *logrus.Logger) *UserHandler {
	if logger == nil {
		logger = logrus.New()
	}

	h := &UserHandler{
		auth:     auth,
		service:  service,
		observer: observer,
		logger:   logger,
	}

	h.routes = map[string]routeFunc{
		RoutePostProfile:  h.postProfile,
		RoutePostRoutines: h.postRoutines,
		RoutePostRecipes:  h.postRecipes,
		RouteGetProfile:   h.getProfile,
		RouteGetRoutines:  h.getRoutines,
		RouteGetRecipes:   h.getRecipes,
	}

	return h
}

// RouteKeys returns the route keys the handler serves
func RouteKeys() []string {
	return []string{
		RoutePostProfile,
		RoutePostRoutines,
		RoutePostRecipes,
		RouteGetProfile,
		RouteGetRoutines,
		RouteGetRecipes,
	}
}

// Dispatch authenticates the request, binds it to the path user and runs the matching route
func (h *UserHandler) Dispatch(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			h.logger.WithFields(logrus.Fields{
				"route_key":  req.RouteKey,
				"request_id": req.RequestID,
				"panic":      fmt.Sprint(r),
			}).Error("Recovered from panic in dispatcher")
			resp = respond(http.StatusInternalServerError, MsgInternalError)
		}

		if h.observer != nil {
			label := req.RouteKey
			if _, ok := h.routes[label]; !ok {
				label = unmatchedRouteLabel
			}
			h.observer.ObserveRequest(label, resp.StatusCode, time.Since(start))
		}
	}()

	userID, ok := h.auth.Authenticate(req.Cookies)
	if !ok {
		return respond(http.StatusUnauthorized, MsgNotAuthenticated)
	}

	pathID, err := strconv.ParseInt(req.PathParams["id"], 10, 64)
	if err != nil || pathID <= 0 || pathID != userID {
		h.logger.WithFields(logrus.Fields{
			"route_key":  req.RouteKey,
			"request_id": req.RequestID,
			"user_id":    userID,
			"path_id":    req.PathParams["id"],
		}).Warn("Path user does not match authenticated user")
		return respond(http.StatusUnauthorized, MsgUserIDMismatch)
	}

	route, ok := h.routes[req.RouteKey]
	if !ok {
		return respond(http.StatusNotFound, MsgRouteNotFound)
	}

	return route(ctx, userID, req)
}

// decodeInput parses and validates the POST body; a nil input comes with the rejection response
func (h *UserHandler) decodeInput(req *lambda.Request) (*models.ProfileInput, *lambda.Response) {
	body := req.Body
	if len(body) == 0 {
		body = []byte("{}")
	}

	var input models.ProfileInput
	if err := json.Unmarshal(body, &input); err != nil {
		h.logger.WithField("request_id", req.RequestID).WithError(err).Debug("Malformed request body")
		return nil, respond(http.StatusBadRequest, MsgInvalidBody)
	}

	if err := input.Validate(); err != nil {
		h.logger.WithField("request_id", req.RequestID).WithError(err).Debug("Request body failed validation")
		return nil, respond(http.StatusBadRequest, MsgMissingFields)
	}

	return &input, nil
}

// @Summary Create or update the user profile
// @Description Validates the body, upserts the profile row and updates the user record in one transaction
// @Tags profile
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param profile body models.ProfileInput true "Profile data"
// @Success 200 {object} models.UserProfile
// @Failure 400 {string} string "Missing required fields"
// @Failure 401 {string} string "User not authenticated"
// @Failure 500 {string} string "Internal Server Error"
// @Security CookieAuth
// @Router /user/userProfile/{id} [post]
func (h *UserHandler) postProfile(ctx context.Context, userID int64, req *lambda.Request) *lambda.Response {
	input, rejected := h.decodeInput(req)
	if rejected != nil {
		return rejected
	}

	profile, err := h.service.UpdateProfile(ctx, userID, input)
	if err != nil {
		return h.errorResponse(ctx, req, err, "")
	}

	return respond(http.StatusOK, profile)
}

// @Summary Generate exercise routines
// @Description Generates a routine from the body and stores it for the user
// @Tags routines
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param profile body models.ProfileInput true "Profile data"
// @Success 200 {string} string "User data created successfully"
// @Failure 400 {string} string "Missing required fields"
// @Failure 401 {string} string "User not authenticated"
// @Failure 500 {string} string "Internal Server Error"
// @Security CookieAuth
// @Router /user/userRoutines/{id} [post]
func (h *UserHandler) postRoutines(ctx context.Context, userID int64, req *lambda.Request) *lambda.Response {
	input, rejected := h.decodeInput(req)
	if rejected != nil {
		return rejected
	}

	if err := h.service.CreateRoutines(ctx, userID, input); err != nil {
		return h.errorResponse(ctx, req, err, "")
	}

	return respond(http.StatusOK, MsgDataCreated)
}

// @Summary Generate a meal plan
// @Description Generates recipes from the body and stores them for the user
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param profile body models.ProfileInput true "Profile data"
// @Success 200 {string} string "User data created successfully"
// @Failure 400 {string} string "Missing required fields"
// @Failure 401 {string} string "User not authenticated"
// @Failure 500 {string} string "Internal Server Error"
// @Security CookieAuth
// @Router /user/userRecipes/{id} [post]
func (h *UserHandler) postRecipes(ctx context.Context, userID int64, req *lambda.Request) *lambda.Response {
	input, rejected := h.decodeInput(req)
	if rejected != nil {
		return rejected
	}

	if err := h.service.CreateRecipes(ctx, userID, input); err != nil {
		return h.errorResponse(ctx, req, err, "")
	}

	return respond(http.StatusOK, MsgDataCreated)
}

// @Summary Get the user profile
// @Description Returns the stored profile row
// @Tags profile
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserProfile
// @Failure 400 {string} string "User not found"
// @Failure 401 {string} string "User not authenticated"
// @Failure 500 {string} string "Internal Server Error"
// @Security CookieAuth
// @Router /user/userProfile/{id} [get]
func (h *UserHandler) getProfile(ctx context.Context, userID int64, req *lambda.Request) *lambda.Response {
	profile, err := h.service.GetProfile(ctx, userID)
	if err != nil {
		return h.errorResponse(ctx, req, err, MsgUserNotFound)
	}

	return respond(http.StatusOK, profile)
}

// @Summary Get the user routines
// @Description Returns the last generated routine
// @Tags routines
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserRoutines
// @Failure 400 {string} string "User routines not found"
// @Failure 401 {string} string "User not authenticated"
// @Failure 500 {string} string "Internal Server Error"
// @Security CookieAuth
// @Router /user/userRoutines/{id} [get]
func (h *UserHandler) getRoutines(ctx context.Context, userID int64, req *lambda.Request) *lambda.Response {
	routines, err := h.service.GetRoutines(ctx, userID)
	if err != nil {
		return h.errorResponse(ctx, req, err, MsgRoutinesNotFound)
	}

	return respond(http.StatusOK, routines)
}

// @Summary Get the user recipes
// @Description Returns the last generated meal plan
// @Tags recipes
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserRecipes
// @Failure 400 {string} string "User recipes not found"
// @Failure 401 {string} string "User not authenticated"
// @Failure 500 {string} string "Internal Server Error"
// @Security CookieAuth
// @Router /user/userRecipes/{id} [get]
func (h *UserHandler) getRecipes(ctx context.Context, userID int64, req *lambda.Request) *lambda.Response {
	recipes, err := h.service.GetRecipes(ctx, userID)
	if err != nil {
		return h.errorResponse(ctx, req, err, MsgRecipesNotFound)
	}

	return respond(http.StatusOK, recipes)
}

var _ Authenticator = (*middleware.AuthService)(nil)
