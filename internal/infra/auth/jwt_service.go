package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/domain/service"
	"github.com/Abhithakur7080/your-video/internal/errors"
)

const (
	claimType = "type"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	accessTTL, refreshTTL := 15*time.Minute, 10*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID uuid.UUID) (access service.SignedToken, refresh service.SignedToken, err error) {
	access, err = s.generateToken(userID, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return service.SignedToken{}, service.SignedToken{}, err
	}

	refresh, err = s.generateToken(userID, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return service.SignedToken{}, service.SignedToken{}, err
	}

	return access, refresh, nil
}

// ValidateToken verifies tokenString against whichever secret its type claim names.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		mc, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return nil, jwt.ErrTokenInvalidClaims
		}
		switch service.TokenType(stringClaim(mc, claimType)) {
		case service.TokenTypeAccess:
			return []byte(s.accessSecret), nil
		case service.TokenTypeRefresh:
			return []byte(s.refreshSecret), nil
		default:
			return nil, jwt.ErrTokenInvalidClaims
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate token")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a user id")
	}

	result := &service.Claims{
		UserID: userID,
		Type:   service.TokenType(stringClaim(claims, claimType)),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: sub,
			ID:      stringClaim(claims, "jti"),
		},
	}
	if exp, err := claims.GetExpirationTime(); err == nil {
		result.ExpiresAt = exp
	}
	if iat, err := claims.GetIssuedAt(); err == nil {
		result.IssuedAt = iat
	}

	return result, nil
}

// Fingerprint is the hex SHA-256 of token. Only fingerprints of refresh tokens are persisted.
func (s *jwtService) Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// generateToken is a private helper to create a JWT with specific claims.
// The jti claim makes two tokens issued within the same second distinct.
func (s *jwtService) generateToken(userID uuid.UUID, ttl time.Duration, secret string, tokenType service.TokenType) (service.SignedToken, error) {
	now := s.now()
	expiresAt := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":     userID.String(),  // Subject (who the token is for)
		"iat":     now.Unix(),       // Issued At
		"exp":     expiresAt.Unix(), // Expiration Time
		"jti":     uuid.NewString(), // Unique token id
		claimType: string(tokenType),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return service.SignedToken{}, errors.Wrap(err, "failed to sign token")
	}

	return service.SignedToken{Token: signed, ExpiresAt: time.Unix(expiresAt.Unix(), 0)}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)

	return v
}
