package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"vakeel/config"

	"github.com/golang-jwt/jwt"
)

// AuthCookieName is the cookie the signed token travels in.
const AuthCookieName = "auth_token"

// AuthTokenTTL is the session token lifetime.
const AuthTokenTTL = 24 * time.Hour

// Claims is the identity a verified token carries.
type Claims struct {
	ID           string
	Email        string
	EnrollmentID string
}

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT carrying the lawyer's surrogate id,
// email, and enrollment id. The token expires after the given duration.
func GenerateToken(id, email, enrollmentID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":           id,
		"email":         email,
		"enrollment_id": enrollmentID,
		"iat":           time.Now().Unix(),
		"exp":           time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaimsFromToken validates a token string and returns the identity it
// carries. Tampered, expired, and malformed tokens all fail the same way.
func ExtractClaimsFromToken(tokenString string) (*Claims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	enrollmentID, ok := mapClaims["enrollment_id"].(string)
	if !ok || enrollmentID == "" {
		return nil, errors.New("token does not contain a valid 'enrollment_id' claim")
	}
	email, _ := mapClaims["email"].(string)

	return &Claims{ID: sub, Email: email, EnrollmentID: enrollmentID}, nil
}

// TokenRemainingTTL returns how long a valid token has left before its natural
// expiry, or zero for invalid tokens. Used to size revocation entries.
func TokenRemainingTTL(tokenString string) time.Duration {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return 0
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return 0
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < 0 {
		return 0
	}
	return remaining
}
