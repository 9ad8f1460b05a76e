package auth

import (
	"context"
	"crypto/rsa"
	"net/http"
	"os"

	"timeclock/backend/foundation/web"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	RoleEmployee = "EMPLOYEE"
	RoleManager  = "MANAGER"
	RoleAdmin    = "ADMIN"
)

type ctxKey int

// Key is used to store/retrieve Claims from a context.Context.
const Key ctxKey = 1

// Claims is what we sign into every token.
type Claims struct {
	jwt.StandardClaims
	UserId   int    `json:"user_id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	ClientID string `json:"client_id,omitempty"`
}

// Authorized reports whether the claims carry one of the listed roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// Auth validates tokens signed by commands.GenToken.
type Auth struct {
	key *rsa.PublicKey
}

func NewAuth(privateKeyFile string) (*Auth, error) {
	pem, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key file")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return &Auth{key: &privateKey.PublicKey}, nil
}

// ValidateToken parses and verifies a bearer token.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}

// GetClaims retrieves the Claims stored by the authenticate middleware.
func GetClaims(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}
	return claims, nil
}
