package handlers

import (
	"net/http"

	"bookmarks_api/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *Handler) getMe(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// @Summary      Edit current user
// @Description  Partial update: omitted fields keep their value.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      models.UserPatch  true  "Fields to change"
// @Success      200   {object}  models.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [patch]
// @Security     BearerAuth
func (h *Handler) editMe(c *gin.Context) {
	var patch models.UserPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}

	me := currentUser(c)
	user, err := h.services.Users.Edit(c.Request.Context(), me.ID, patch)
	if err != nil {
		h.respondError(c, err, "user_edit_failed", "user_id", me.ID)
		return
	}

	c.JSON(http.StatusOK, user)
}
