package handlers

// @title FitPlan User API
// @version 1.0
// @description Per-user profile, exercise routine and meal plan routes.
// @description Every route requires the session cookie and an {id} matching its user.

// @contact.name API Support
// @contact.url https://github.com/fitplan/fitplan-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
// @description HS256 session token carrying a numeric userId claim.

// @tag.name profile
// @tag.description Physical profile of the user

// @tag.name routines
// @tag.description Generated exercise routines

// @tag.name recipes
// @tag.description Generated meal plans
