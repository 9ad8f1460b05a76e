package auth

import (
	"net/http"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/commands"
	"timeclock/backend/internal/entity"
	"timeclock/backend/internal/repository/postgres/user"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Controller struct {
	user User
	code LoginCode
}

func NewController(user User, code LoginCode) *Controller {
	return &Controller{user: user, code: code}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	err := c.BindFunc(&data, "Email", "Password")
	if err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid email or password"), http.StatusUnauthorized))
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid email or password"), http.StatusUnauthorized))
	}

	return uc.respondTokens(c, detail)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	err := c.BindFunc(&data, "AccessToken", "RefreshToken")
	if err != nil {
		return c.RespondError(err)
	}

	_, refreshTokenClaims, err := commands.VerifyTokens(data.AccessToken, data.RefreshToken, "./private.pem")
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	userClaims := commands.AuthClaims{
		ID:       refreshTokenClaims.UserId,
		Role:     refreshTokenClaims.Role,
		Email:    refreshTokenClaims.Email,
		ClientID: refreshTokenClaims.ClientID,
	}

	accessToken, refreshToken, err := commands.GenToken(userClaims, "./private.pem")
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

// RequestCode issues a one-time sign-in code. The response never reveals
// whether the email exists.
func (uc Controller) RequestCode(c *web.Context) error {
	var data user.RequestCodeRequest

	err := c.BindFunc(&data, "Email")
	if err != nil {
		return c.RespondError(err)
	}

	if _, err := uc.user.GetByEmail(c.Ctx, data.Email); err == nil {
		if _, err := uc.code.Issue(c.Ctx, data.Email); err != nil {
			return c.RespondError(err)
		}
	}

	return c.Respond(map[string]interface{}{
		"data":   map[string]bool{"sent": true},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) VerifyCode(c *web.Context) error {
	var data user.VerifyCodeRequest

	err := c.BindFunc(&data, "Email", "Code")
	if err != nil {
		return c.RespondError(err)
	}

	if err := uc.code.Verify(c.Ctx, data.Email, data.Code); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	return uc.respondTokens(c, detail)
}

func (uc Controller) respondTokens(c *web.Context, detail entity.User) error {
	claims := commands.AuthClaims{ID: detail.ID}
	if detail.Role != nil {
		claims.Role = *detail.Role
	}
	if detail.Email != nil {
		claims.Email = *detail.Email
	}
	if detail.ClientID != nil {
		claims.ClientID = *detail.ClientID
	}

	accessToken, refreshToken, err := commands.GenToken(claims, "./private.pem")
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"user":          detail,
		},
		"error": nil,
	}, http.StatusOK)
}
