package auth

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fidel-summary/internal/handler/http/requestid"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 1 * time.Hour

const minSecretLength = 32

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// ValidateCredentialsConfig checks the API_USER / API_PASSWORD pair at
// startup so the server refuses to boot with empty or weak credentials.
func ValidateCredentialsConfig() error {
	user := os.Getenv("API_USER")
	pass := os.Getenv("API_PASSWORD")
	if user == "" || pass == "" {
		return fmt.Errorf("API_USER and API_PASSWORD must be set")
	}
	if len(pass) < 12 {
		return fmt.Errorf("API_PASSWORD must be at least 12 characters")
	}
	for _, weak := range []string{"password", "123456", "admin", "test", "secret"} {
		if pass == weak || pass == weak+"123" {
			return fmt.Errorf("API_PASSWORD must not be a common weak value")
		}
	}
	return nil
}

// ValidateJWTSecret enforces a 256-bit minimum on JWT_SECRET and rejects
// well-known weak values.
func ValidateJWTSecret() error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if len(secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters (256 bits)", minSecretLength)
	}
	for _, weak := range []string{"secret", "password", "test", "admin", "default"} {
		if secret == weak || secret == weak+"123" {
			return fmt.Errorf("JWT_SECRET must not be a common weak value")
		}
	}
	return nil
}

// TokenHandler issues a JWT for valid credentials. The username becomes the
// token subject and therefore the owner ID every summary is scoped to.
func TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if err := validateCredentials(req.Username, req.Password); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		secret := []byte(os.Getenv("JWT_SECRET"))
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": req.Username,
			"exp": time.Now().Add(TokenTTL).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.String("user", req.Username),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest("success")
		RecordAuthDuration(time.Since(start).Seconds())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{
			Token:     signed,
			ExpiresIn: int64(TokenTTL.Seconds()),
		}); err != nil {
			logger.Error("failed to encode token response", slog.Any("error", err))
		}
	}
}

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("credentials must not be empty")
	}

	apiUser := os.Getenv("API_USER")
	apiPass := os.Getenv("API_PASSWORD")

	// Constant-time comparison to prevent timing attacks.
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(apiUser)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(apiPass)) == 1
	if !userMatch || !passMatch {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}
