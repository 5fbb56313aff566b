package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kishoreadhith-v/clubs-api/internal/dto"
	"github.com/kishoreadhith-v/clubs-api/internal/services"
	"github.com/kishoreadhith-v/clubs-api/internal/utils"
)

type ForumHandler struct {
	forumService *services.ForumService
}

func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{
		forumService: forumService,
	}
}

// CreateForum creates a forum owned by the current user
func (h *ForumHandler) CreateForum(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}

	type CreateForumRequest struct {
		Title       string `json:"title" binding:"required,max=200"`
		Description string `json:"description" binding:"max=2000"`
	}

	var req CreateForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	forum, err := h.forumService.CreateForum(c.Request.Context(), services.CreateForumInput{
		RollNo:      rollno,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToForumDTO(*forum))
}

// ListForums returns forums newest first
func (h *ForumHandler) ListForums(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	forums, total, err := h.forumService.ListForums(c.Request.Context(), params.RepositoryPage())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListResponse(forums, dto.ToForumDTO, params.Page, params.Limit, total))
}

// GetForum returns a specific forum by ID
func (h *ForumHandler) GetForum(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	forum, err := h.forumService.GetForum(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToForumDTO(*forum))
}
