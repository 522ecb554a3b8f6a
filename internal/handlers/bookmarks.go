package handlers

import (
	"net/http"
	"strconv"

	"bookmarks_api/internal/models"
	"bookmarks_api/internal/service"

	"github.com/gin-gonic/gin"
)

// bookmarkID parses the :id path segment, replying 400 when it is not a positive integer.
func (h *Handler) bookmarkID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.respondError(c, service.NewFieldError("id", "must be a positive integer"), "bookmark_bad_id")
		return 0, false
	}
	return id, true
}

// @Summary      List bookmarks
// @Description  All bookmarks of the caller in creation order; empty list when none.
// @Tags         bookmarks
// @Produce      json
// @Success      200  {array}   models.Bookmark
// @Failure      401  {object}  errorResponse
// @Router       /bookmarks [get]
// @Security     BearerAuth
func (h *Handler) listBookmarks(c *gin.Context) {
	me := currentUser(c)
	list, err := h.services.Bookmarks.List(c.Request.Context(), me.ID)
	if err != nil {
		h.respondError(c, err, "bookmarks_list_failed", "user_id", me.ID)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Create bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      models.BookmarkInput  true  "Bookmark"
// @Success      201   {object}  models.Bookmark
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bookmarks [post]
// @Security     BearerAuth
func (h *Handler) createBookmark(c *gin.Context) {
	var input models.BookmarkInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	me := currentUser(c)
	b, err := h.services.Bookmarks.Create(c.Request.Context(), me.ID, input)
	if err != nil {
		h.respondError(c, err, "bookmark_create_failed", "user_id", me.ID)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// @Summary      Get bookmark
// @Tags         bookmarks
// @Produce      json
// @Param        id   path      int  true  "Bookmark ID"
// @Success      200  {object}  models.Bookmark
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookmarks/{id} [get]
// @Security     BearerAuth
func (h *Handler) getBookmark(c *gin.Context) {
	id, ok := h.bookmarkID(c)
	if !ok {
		return
	}

	me := currentUser(c)
	b, err := h.services.Bookmarks.Get(c.Request.Context(), me.ID, id)
	if err != nil {
		h.respondError(c, err, "bookmark_get_failed", "user_id", me.ID, "bookmark_id", id)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Edit bookmark
// @Description  Partial update: omitted fields keep their value.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Bookmark ID"
// @Param        body  body      models.BookmarkPatch  true  "Fields to change"
// @Success      200   {object}  models.Bookmark
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bookmarks/{id} [patch]
// @Security     BearerAuth
func (h *Handler) editBookmark(c *gin.Context) {
	id, ok := h.bookmarkID(c)
	if !ok {
		return
	}
	var patch models.BookmarkPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}

	me := currentUser(c)
	b, err := h.services.Bookmarks.Update(c.Request.Context(), me.ID, id, patch)
	if err != nil {
		h.respondError(c, err, "bookmark_edit_failed", "user_id", me.ID, "bookmark_id", id)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Delete bookmark
// @Tags         bookmarks
// @Param        id   path  int  true  "Bookmark ID"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookmarks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteBookmark(c *gin.Context) {
	id, ok := h.bookmarkID(c)
	if !ok {
		return
	}

	me := currentUser(c)
	if err := h.services.Bookmarks.Delete(c.Request.Context(), me.ID, id); err != nil {
		h.respondError(c, err, "bookmark_delete_failed", "user_id", me.ID, "bookmark_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
