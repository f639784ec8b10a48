package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "attendee")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "attendee", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ValidateToken_Untrusted(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name          string
		token         string
		expectedError error
	}{
		{
			name:          "empty token",
			token:         "",
			expectedError: ErrInvalidToken,
		},
		{
			name:          "garbage token",
			token:         "not-a-jwt-at-all",
			expectedError: ErrInvalidToken,
		},
		{
			name: "wrong signing secret",
			token: func() string {
				other := NewJWTService("different-secret")
				token, _ := other.GenerateToken(uuid.New(), "attendee")
				return token
			}(),
			expectedError: ErrInvalidToken,
		},
		{
			name: "expired token",
			token: func() string {
				claims := &Claims{
					UserID: uuid.New(),
					Role:   "attendee",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
						IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
					},
				}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				return token
			}(),
			expectedError: ErrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}
