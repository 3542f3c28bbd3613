package service_test

import (
	"testing"
	"time"

	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/filmbox/movie-collection-website/internal/service"
	"github.com/filmbox/movie-collection-website/internal/testutil"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenIssuedAt signs a {sub, iat} token with the given secret, so tests can
// age tokens arbitrarily.
func tokenIssuedAt(t *testing.T, secret string, userID uuid.UUID, issuedAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": issuedAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	cfg := testutil.TestConfig()
	tokens := service.NewTokenService(cfg)
	userID := uuid.New()

	token, err := tokens.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_Verify_TamperedToken(t *testing.T) {
	cfg := testutil.TestConfig()
	tokens := service.NewTokenService(cfg)

	token, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	// Flipping any single bit must fail verification. Flips inside the
	// base64 padding bits of a segment's last character decode to the same
	// bytes under lenient decoding, so strict decoding has to catch them.
	for i := 0; i < len(token); i++ {
		for bit := 0; bit < 8; bit++ {
			mutated := []byte(token)
			mutated[i] ^= 1 << bit

			_, err := tokens.Verify(string(mutated))
			assert.ErrorIs(t, err, domain.ErrInvalidToken, "flip of bit %d in byte %d verified", bit, i)
		}
	}
}

func TestTokenService_Verify_Lifetime(t *testing.T) {
	cfg := testutil.TestConfig()
	tokens := service.NewTokenService(cfg)
	userID := uuid.New()

	tests := []struct {
		name     string
		issuedAt time.Time
		wantErr  bool
	}{
		{
			name:     "just issued",
			issuedAt: time.Now(),
			wantErr:  false,
		},
		{
			name:     "six days twenty-three hours old",
			issuedAt: time.Now().Add(-(6*24 + 23) * time.Hour),
			wantErr:  false,
		},
		{
			name:     "seven days one hour old",
			issuedAt: time.Now().Add(-(7*24 + 1) * time.Hour),
			wantErr:  true,
		},
		{
			name:     "eight days old",
			issuedAt: time.Now().Add(-8 * 24 * time.Hour),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tokenIssuedAt(t, cfg.TokenSecret, userID, tt.issuedAt)

			got, err := tokens.Verify(token)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, got)
		})
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	cfg := testutil.TestConfig()
	tokens := service.NewTokenService(cfg)

	wrongSecret := tokenIssuedAt(t, "a-different-secret", uuid.New(), time.Now())

	missingIat, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
	}).SignedString([]byte(cfg.TokenSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"iat": time.Now().Unix(),
	}).SignedString([]byte(cfg.TokenSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a token", token: "garbage"},
		{name: "wrong secret", token: wrongSecret},
		{name: "missing iat", token: missingIat},
		{name: "non-uuid subject", token: badSubject},
		{name: "none algorithm", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(tt.token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestTokenService_MissingSecret(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.TokenSecret = ""
	tokens := service.NewTokenService(cfg)

	_, err := tokens.Issue(uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotConfigured)

	_, err = tokens.Verify("anything")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}
