package handlers

import (
	"net/http"

	"bookmarks_api/internal/models"

	"github.com/gin-gonic/gin"
)

// tokenResponse is returned by a successful sign-in.
type tokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// @Summary      Sign up
// @Description  Creates an account. The email is lowercased and must be unused.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.Credentials  true  "Credentials"
// @Success      201   {object}  models.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input models.Credentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Authorization.SignUp(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "auth_sign_up_failed")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      Sign in
// @Description  Exchanges credentials for a bearer access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.Credentials  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var input models.Credentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Authorization.SignIn(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "auth_sign_in_failed")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}
