package handler

import (
	"github.com/gin-gonic/gin"

	unionapp "github.com/unionadmin/backend/internal/application/union"
)

// PostHandler handles union post endpoints
type PostHandler struct {
	BaseHandler
	postService *unionapp.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *unionapp.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create godoc
// @ID           createPost
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body union.CreatePostRequest true "Post details"
// @Success      201 {object} dto.Response
// @Security     BearerAuth
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req unionapp.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	post, err := h.postService.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Post created", post)
}

// Get godoc
// @ID           getPost
// @Summary      Get a post by ID
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	post, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", post)
}

// List godoc
// @ID           listPosts
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200 {object} dto.ListEnvelope
// @Security     BearerAuth
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	query := listQuery(c)
	posts, total, err := h.postService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.BaseHandler.List(c, posts, query, total)
}

// Update godoc
// @ID           updatePost
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body union.UpdatePostRequest true "Fields to update"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	var req unionapp.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Post updated", post)
}

// Delete godoc
// @ID           deletePost
// @Summary      Soft-delete a post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id, actor); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Post deleted", nil)
}
