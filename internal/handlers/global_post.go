package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kishoreadhith-v/clubs-api/internal/dto"
	"github.com/kishoreadhith-v/clubs-api/internal/services"
	"github.com/kishoreadhith-v/clubs-api/internal/utils"
)

// GlobalPostHandler serves campus-wide posts.
type GlobalPostHandler struct {
	postService *services.GlobalPostService
}

func NewGlobalPostHandler(postService *services.GlobalPostService) *GlobalPostHandler {
	return &GlobalPostHandler{
		postService: postService,
	}
}

func (h *GlobalPostHandler) CreatePost(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}

	var req updateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), rollno, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGlobalPostDTO(*post))
}

func (h *GlobalPostHandler) ListPosts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	posts, total, err := h.postService.ListPosts(c.Request.Context(), params.RepositoryPage())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListResponse(posts, dto.ToGlobalPostDTO, params.Page, params.Limit, total))
}

func (h *GlobalPostHandler) GetPost(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGlobalPostDTO(*post))
}

func (h *GlobalPostHandler) UpdatePost(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.ToGlobalPostDTO(*post))
}

func (h *GlobalPostHandler) DeletePost(c *gin.Context) {
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

// JoinPost adds the current user to the post's participants
func (h *GlobalPostHandler) JoinPost(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}
	id, ok := resourceID(c)
	if !ok {
		return
	}

	joined, err := h.postService.JoinPost(c.Request.Context(), rollno, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "Joined post successfully"
	if !joined {
		message = "Already joined"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        message,
		"already_joined": !joined,
	})
}
