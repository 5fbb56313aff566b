package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kishoreadhith-v/clubs-api/internal/dto"
	apierrors "github.com/kishoreadhith-v/clubs-api/internal/errors"
	"github.com/kishoreadhith-v/clubs-api/internal/services"
	"github.com/kishoreadhith-v/clubs-api/internal/utils"
)

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

type updateContentRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

// CreatePost creates a post in a forum
func (h *PostHandler) CreatePost(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}

	type CreatePostRequest struct {
		ForumID string `json:"forum_id" binding:"required"`
		Content string `json:"content" binding:"required,max=10000"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	forumID, err := utils.ParseObjectID("forum_id", req.ForumID)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), services.CreatePostInput{
		RollNo:  rollno,
		ForumID: forumID,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostDTO(*post))
}

// ListPosts returns the posts of the forum given by ?forum_id=
func (h *PostHandler) ListPosts(c *gin.Context) {
	forumID, err := utils.ParseObjectID("forum_id", c.Query("forum_id"))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	params := utils.GetPaginationParams(c)
	posts, total, err := h.postService.ListPosts(c.Request.Context(), forumID, params.RepositoryPage())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListResponse(posts, dto.ToPostDTO, params.Page, params.Limit, total))
}

// GetPost returns a specific post by ID
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// UpdatePost replaces the content of a post. Only the author may update it.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}
	id, ok := resourceID(c)
	if !ok {
		return
	}

	var req updateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), rollno, id, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// DeletePost deletes a post. Only the author may delete it.
func (h *PostHandler) DeletePost(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}
	id, ok := resourceID(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), rollno, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
