package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kishoreadhith-v/clubs-api/internal/dto"
	apierrors "github.com/kishoreadhith-v/clubs-api/internal/errors"
	"github.com/kishoreadhith-v/clubs-api/internal/services"
	"github.com/kishoreadhith-v/clubs-api/internal/utils"
)

type ReplyHandler struct {
	replyService *services.ReplyService
}

func NewReplyHandler(replyService *services.ReplyService) *ReplyHandler {
	return &ReplyHandler{
		replyService: replyService,
	}
}

func (h *ReplyHandler) CreateReply(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}

	type CreateReplyRequest struct {
		PostID  string `json:"post_id" binding:"required"`
		Content string `json:"content" binding:"required,max=10000"`
	}

	var req CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	postID, err := utils.ParseObjectID("post_id", req.PostID)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	reply, err := h.replyService.CreateReply(c.Request.Context(), services.CreateReplyInput{
		RollNo:  rollno,
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReplyDTO(*reply))
}

// ListReplies returns the replies to the post given by ?post_id=
func (h *ReplyHandler) ListReplies(c *gin.Context) {
	postID, err := utils.ParseObjectID("post_id", c.Query("post_id"))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	params := utils.GetPaginationParams(c)
	replies, total, err := h.replyService.ListReplies(c.Request.Context(), postID, params.RepositoryPage())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListResponse(replies, dto.ToReplyDTO, params.Page, params.Limit, total))
}

func (h *ReplyHandler) GetReply(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	reply, err := h.replyService.GetReply(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReplyDTO(*reply))
}

func (h *ReplyHandler) UpdateReply(c *gin.Context) {
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

	reply, err := h.replyService.UpdateReply(c.Request.Context(), rollno, id, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReplyDTO(*reply))
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	rollno, ok := currentRollNo(c)
	if !ok {
		return
	}
	id, ok := resourceID(c)
	if !ok {
		return
	}

	if err := h.replyService.DeleteReply(c.Request.Context(), rollno, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reply deleted successfully"})
}
