package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kishoreadhith-v/clubs-api/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (suite *HandlerTestSuite) createForumAndPost(token string) (dto.ForumDTO, dto.PostDTO) {
	w := suite.do(http.MethodPost, "/api/forums", map[string]string{"title": "Chess Club"}, token)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var forum dto.ForumDTO
	suite.decode(w, &forum)

	w = suite.do(http.MethodPost, "/api/posts", map[string]string{
		"forum_id": forum.ID,
		"content":  "Tournament on Sunday",
	}, token)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var post dto.PostDTO
	suite.decode(w, &post)

	return forum, post
}

func (suite *HandlerTestSuite) TestCreatePost_Success() {
	token := suite.createTestUser("21CS001", "CS", 2)
	forum, post := suite.createForumAndPost(token)

	suite.Equal(forum.ID, post.ForumID)
	suite.Equal(forum.AuthorID, post.AuthorID)

	w := suite.do(http.MethodGet, "/api/posts?forum_id="+forum.ID, nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var list dto.ListResponse[dto.PostDTO]
	suite.decode(w, &list)
	suite.Equal(int64(1), list.TotalCount)
	suite.Equal(1, list.TotalPages)
	suite.Require().Len(list.Items, 1)
	suite.Equal(post.ID, list.Items[0].ID)
}

func (suite *HandlerTestSuite) TestCreatePost_UnknownForum() {
	token := suite.createTestUser("21CS001", "CS", 2)

	w := suite.do(http.MethodPost, "/api/posts", map[string]string{
		"forum_id": primitive.NewObjectID().Hex(),
		"content":  "hello",
	}, token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreatePost_Unauthorized() {
	w := suite.do(http.MethodPost, "/api/posts", map[string]string{
		"forum_id": primitive.NewObjectID().Hex(),
		"content":  "hello",
	}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestListPosts_MissingOrMalformedForumID() {
	w := suite.do(http.MethodGet, "/api/posts", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "forum_id is required")

	w = suite.do(http.MethodGet, "/api/posts?forum_id=123", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "invalid forum_id")
}

func (suite *HandlerTestSuite) TestGetPost_InvalidAndMissing() {
	w := suite.do(http.MethodGet, "/api/posts/not-hex", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/posts/"+primitive.NewObjectID().Hex(), nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdatePost_NotAuthor() {
	owner := suite.createTestUser("21CS001", "CS", 2)
	other := suite.createTestUser("21CS002", "CS", 2)
	_, post := suite.createForumAndPost(owner)

	w := suite.do(http.MethodPatch, "/api/posts/"+post.ID, map[string]string{"content": "hijacked"}, other)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/posts/"+post.ID, nil, "")
	var stored dto.PostDTO
	suite.decode(w, &stored)
	suite.Equal("Tournament on Sunday", stored.Content)

	w = suite.do(http.MethodPatch, "/api/posts/"+post.ID, map[string]string{"content": "Moved to Monday"}, owner)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &stored)
	suite.Equal("Moved to Monday", stored.Content)
}

// Create a post as A, delete as B is forbidden, delete as A succeeds.
func (suite *HandlerTestSuite) TestDeletePost_Ownership() {
	owner := suite.createTestUser("21CS001", "CS", 2)
	other := suite.createTestUser("21CS002", "CS", 2)
	_, post := suite.createForumAndPost(owner)

	w := suite.do(http.MethodDelete, "/api/posts/"+post.ID, nil, other)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/posts/"+post.ID, nil, "").Code)

	w = suite.do(http.MethodDelete, "/api/posts/"+post.ID, nil, owner)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Post deleted successfully", response["message"])

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/posts/"+post.ID, nil, "").Code)
}

func (suite *HandlerTestSuite) TestDeletePost_MissingIsNotFound() {
	token := suite.createTestUser("21CS001", "CS", 2)

	w := suite.do(http.MethodDelete, "/api/posts/"+primitive.NewObjectID().Hex(), nil, token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestReplies_Ownership() {
	owner := suite.createTestUser("21CS001", "CS", 2)
	other := suite.createTestUser("21CS002", "CS", 2)
	_, post := suite.createForumAndPost(owner)

	w := suite.do(http.MethodPost, "/api/replies", map[string]string{
		"post_id": post.ID,
		"content": "I'm in",
	}, other)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var reply dto.ReplyDTO
	suite.decode(w, &reply)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/replies", nil, "").Code)

	w = suite.do(http.MethodGet, "/api/replies?post_id="+post.ID, nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListResponse[dto.ReplyDTO]
	suite.decode(w, &list)
	suite.Require().Len(list.Items, 1)

	suite.Equal(http.StatusForbidden, suite.do(http.MethodDelete, "/api/replies/"+reply.ID, nil, owner).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodDelete, "/api/replies/"+reply.ID, nil, other).Code)
}

func (suite *HandlerTestSuite) TestGlobalPost_Join() {
	author := suite.createTestUser("21CS001", "CS", 2)
	joiner := suite.createTestUser("21EE001", "EE", 1)

	w := suite.do(http.MethodPost, "/api/global-posts", map[string]string{"content": "Beach cleanup"}, author)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var post dto.GlobalPostDTO
	suite.decode(w, &post)
	suite.Empty(post.Participants)

	var response map[string]any
	w = suite.do(http.MethodPost, "/api/global-posts/"+post.ID+"/join", nil, joiner)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(false, response["already_joined"])

	w = suite.do(http.MethodPost, "/api/global-posts/"+post.ID+"/join", nil, joiner)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(true, response["already_joined"])
}
