package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// tokenMarker precedes the JWT inside the cookie string
const tokenMarker = "token="

// Claims represents JWT claims
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
	Issuer        string
}

// AuthService verifies the session token carried in the request cookies
type AuthService struct {
	config *AuthConfig
	logger *logrus.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, logger *logrus.Logger) *AuthService {
	if config.TokenDuration == 0 {
		config.TokenDuration = 24 * time.Hour
	}
	if config.Issuer == "" {
		config.Issuer = "fitplan-api"
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &AuthService{config: config, logger: logger}
}

// GenerateToken generates a JWT token for a user
func (a *AuthService) GenerateToken(userID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.config.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    a.config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(a.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (a *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("token has no userId claim")
	}

	return claims, nil
}

// TokenFromCookies extracts the token from the first cookie string.
// A raw Cookie header works too since the value is cut at the next ';'.
func TokenFromCookies(cookies []string) (string, bool) {
	if len(cookies) == 0 {
		return "", false
	}

	_, after, found := strings.Cut(cookies[0], tokenMarker)
	if !found {
		return "", false
	}

	token, _, _ := strings.Cut(after, ";")
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate resolves the user ID from the request cookies.
// Failures are logged and reported as unauthenticated, never as errors.
func (a *AuthService) Authenticate(cookies []string) (int64, bool) {
	tokenString, ok := TokenFromCookies(cookies)
	if !ok {
		a.logger.Debug("No session token in request cookies")
		return 0, false
	}

	claims, err := a.ValidateToken(tokenString)
	if err != nil {
		a.logger.WithError(err).Warn("Token validation failed")
		return 0, false
	}

	a.logger.WithField("user_id", claims.UserID).Debug("User authenticated successfully")
	return claims.UserID, true
}
