package commands

import (
	"crypto/rsa"
	"os"
	"time"

	"timeclock/backend/internal/auth"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 72 * time.Hour
)

// AuthClaims is the identity signed into tokens at sign-in.
type AuthClaims struct {
	ID       int
	Role     string
	Email    string
	ClientID string
}

func loadPrivateKey(privateKeyFile string) (*rsa.PrivateKey, error) {
	pem, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key file")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return key, nil
}

func signed(c AuthClaims, ttl time.Duration, key *rsa.PrivateKey) (string, error) {
	now := time.Now()
	claims := auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		UserId:   c.ID,
		Role:     c.Role,
		Email:    c.Email,
		ClientID: c.ClientID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}

// GenToken issues an access/refresh token pair for the given identity.
func GenToken(c AuthClaims, privateKeyFile string) (string, string, error) {
	key, err := loadPrivateKey(privateKeyFile)
	if err != nil {
		return "", "", err
	}

	accessToken, err := signed(c, accessTokenTTL, key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshToken, err := signed(c, refreshTokenTTL, key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens checks a token pair during refresh. The access token may be
// expired; the refresh token must be fully valid.
func VerifyTokens(accessToken, refreshToken, privateKeyFile string) (auth.Claims, auth.Claims, error) {
	key, err := loadPrivateKey(privateKeyFile)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, err
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return &key.PublicKey, nil
	}

	var accessClaims auth.Claims
	if _, err := jwt.ParseWithClaims(accessToken, &accessClaims, keyFunc); err != nil {
		vErr, ok := err.(*jwt.ValidationError)
		if !ok || vErr.Errors != jwt.ValidationErrorExpired {
			return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing access token")
		}
	}

	var refreshClaims auth.Claims
	token, err := jwt.ParseWithClaims(refreshToken, &refreshClaims, keyFunc)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing refresh token")
	}
	if !token.Valid {
		return auth.Claims{}, auth.Claims{}, errors.New("invalid refresh token")
	}

	if accessClaims.UserId != refreshClaims.UserId {
		return auth.Claims{}, auth.Claims{}, errors.New("token pair mismatch")
	}

	return accessClaims, refreshClaims, nil
}
