package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/blog-platform/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. All mutating
// routes sit behind the auth gate; reads are public.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  domain.Post
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create handles POST /posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	author, err := actor(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Create(c.Request().Context(), author, ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /posts/:id.
//
// @Summary      Update a post's title and content
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID"
// @Param        body  body      updatePostRequest  true  "New title and content"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	author, err := actor(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.Update(c.Request().Context(), author, c.Param("id"), req.Title, req.Content); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post has been updated"})
}

// Delete handles DELETE /posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post ID"
// @Success      200 {object}  messageResponse
// @Failure      404 {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	author, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), author, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post has been deleted"})
}

// Like handles PUT /posts/like/:id.
//
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post ID"
// @Success      200 {object}  messageResponse
// @Failure      404 {object}  errorResponse
// @Router       /posts/like/{id} [put]
func (h *PostHandler) Like(c echo.Context) error {
	author, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.service.Like(c.Request().Context(), author, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post has been liked"})
}

// Comment handles PUT /posts/comment/:id.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post ID"
// @Param        body  body      commentRequest  true  "Comment text"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/comment/{id} [put]
func (h *PostHandler) Comment(c echo.Context) error {
	author, err := actor(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.Comment(c.Request().Context(), author, c.Param("id"), req.Comment); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "comment has been added"})
}

// Activity handles GET /posts/activity/:id.
//
// @Summary      List a post's activity trail
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Post ID"
// @Success      200 {array}  domain.ActivityEvent
// @Failure      404 {object} errorResponse
// @Router       /posts/activity/{id} [get]
func (h *PostHandler) Activity(c echo.Context) error {
	if _, err := actor(c); err != nil {
		return err
	}

	events, err := h.service.Activity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
