package services

import (
	"github.com/kishoreadhith-v/clubs-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (suite *ServiceTestSuite) TestCreatePost_UnknownForum() {
	suite.createTestUser("21CS001", "CS", 2)

	_, err := suite.posts.CreatePost(suite.ctx, CreatePostInput{
		RollNo:  "21CS001",
		ForumID: primitive.NewObjectID(),
		Content: "hello",
	})
	suite.ErrorIs(err, ErrForumNotFound)
}

func (suite *ServiceTestSuite) TestCreatePost_UnknownUser() {
	suite.createTestUser("21CS001", "CS", 2)
	forum := suite.createTestForum("21CS001")

	_, err := suite.posts.CreatePost(suite.ctx, CreatePostInput{
		RollNo:  "ghost",
		ForumID: forum.ID,
		Content: "hello",
	})
	suite.ErrorIs(err, ErrUserNotFound)
}

func (suite *ServiceTestSuite) TestListPosts() {
	suite.createTestUser("21CS001", "CS", 2)
	post := suite.createTestPost("21CS001")

	_, err := suite.posts.CreatePost(suite.ctx, CreatePostInput{
		RollNo:  "21CS001",
		ForumID: post.ForumID,
		Content: "Second post",
	})
	suite.Require().NoError(err)

	posts, total, err := suite.posts.ListPosts(suite.ctx, post.ForumID, repository.Page{})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(posts, 2)
	suite.Equal(post.ID, posts[0].ID)

	posts, total, err = suite.posts.ListPosts(suite.ctx, post.ForumID, repository.Page{Skip: 1, Limit: 1})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(posts, 1)
	suite.Equal("Second post", posts[0].Content)

	_, _, err = suite.posts.ListPosts(suite.ctx, primitive.NilObjectID, repository.Page{})
	suite.ErrorIs(err, ErrMissingParameter)
}

func (suite *ServiceTestSuite) TestUpdatePost_Ownership() {
	suite.createTestUser("21CS001", "CS", 2)
	suite.createTestUser("21CS002", "CS", 2)
	post := suite.createTestPost("21CS001")

	_, err := suite.posts.UpdatePost(suite.ctx, "21CS002", post.ID, "hijacked")
	suite.ErrorIs(err, ErrNotAuthor)

	stored, err := suite.posts.GetPost(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.Equal("First meeting on Friday", stored.Content)

	updated, err := suite.posts.UpdatePost(suite.ctx, "21CS001", post.ID, "Moved to Saturday")
	suite.Require().NoError(err)
	suite.Equal("Moved to Saturday", updated.Content)

	stored, err = suite.posts.GetPost(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.Equal("Moved to Saturday", stored.Content)
}

// A user deletes another user's post, then their own.
func (suite *ServiceTestSuite) TestDeletePost_Ownership() {
	suite.createTestUser("21CS001", "CS", 2)
	suite.createTestUser("21CS002", "CS", 2)
	post := suite.createTestPost("21CS001")

	err := suite.posts.DeletePost(suite.ctx, "21CS002", post.ID)
	suite.ErrorIs(err, ErrNotAuthor)

	_, err = suite.posts.GetPost(suite.ctx, post.ID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.posts.DeletePost(suite.ctx, "21CS001", post.ID))

	_, err = suite.posts.GetPost(suite.ctx, post.ID)
	suite.ErrorIs(err, ErrPostNotFound)
}

func (suite *ServiceTestSuite) TestOwnership_Precedence() {
	suite.createTestUser("21CS001", "CS", 2)
	suite.createTestUser("21CS002", "CS", 2)
	missing := primitive.NewObjectID()

	// Not found wins over forbidden for a missing resource.
	err := suite.posts.DeletePost(suite.ctx, "21CS002", missing)
	suite.ErrorIs(err, ErrPostNotFound)

	// An unknown actor is reported before anything about the resource.
	post := suite.createTestPost("21CS001")
	err = suite.posts.DeletePost(suite.ctx, "ghost", post.ID)
	suite.ErrorIs(err, ErrUserNotFound)
}

// Blank content is only reported once the caller is allowed to edit.
func (suite *ServiceTestSuite) TestUpdate_BlankContentPrecedence() {
	suite.createTestUser("21CS001", "CS", 2)
	suite.createTestUser("21CS002", "CS", 2)
	post := suite.createTestPost("21CS001")
	globalPost, err := suite.globalPosts.CreatePost(suite.ctx, "21CS001", "Carpool to the fest")
	suite.Require().NoError(err)

	_, err = suite.posts.UpdatePost(suite.ctx, "21CS002", post.ID, "   ")
	suite.ErrorIs(err, ErrNotAuthor)

	_, err = suite.posts.UpdatePost(suite.ctx, "ghost", post.ID, "   ")
	suite.ErrorIs(err, ErrUserNotFound)

	_, err = suite.replies.UpdateReply(suite.ctx, "21CS002", primitive.NewObjectID(), "   ")
	suite.ErrorIs(err, ErrReplyNotFound)

	_, err = suite.globalPosts.UpdatePost(suite.ctx, "21CS002", globalPost.ID, "   ")
	suite.ErrorIs(err, ErrNotAuthor)

	_, err = suite.posts.UpdatePost(suite.ctx, "21CS001", post.ID, "   ")
	suite.ErrorIs(err, ErrContentRequired)

	stored, err := suite.posts.GetPost(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.Equal("First meeting on Friday", stored.Content)
}

func (suite *ServiceTestSuite) TestReplies_Ownership() {
	suite.createTestUser("21CS001", "CS", 2)
	suite.createTestUser("21CS002", "CS", 2)
	post := suite.createTestPost("21CS001")

	reply, err := suite.replies.CreateReply(suite.ctx, CreateReplyInput{
		RollNo:  "21CS002",
		PostID:  post.ID,
		Content: "Count me in",
	})
	suite.Require().NoError(err)

	replies, total, err := suite.replies.ListReplies(suite.ctx, post.ID, repository.Page{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(replies, 1)
	suite.Equal(reply.ID, replies[0].ID)

	_, err = suite.replies.UpdateReply(suite.ctx, "21CS001", reply.ID, "edited")
	suite.ErrorIs(err, ErrNotAuthor)
	suite.ErrorIs(suite.replies.DeleteReply(suite.ctx, "21CS001", reply.ID), ErrNotAuthor)

	updated, err := suite.replies.UpdateReply(suite.ctx, "21CS002", reply.ID, "Count me in twice")
	suite.Require().NoError(err)
	suite.Equal("Count me in twice", updated.Content)

	suite.Require().NoError(suite.replies.DeleteReply(suite.ctx, "21CS002", reply.ID))
	_, err = suite.replies.GetReply(suite.ctx, reply.ID)
	suite.ErrorIs(err, ErrReplyNotFound)
}

func (suite *ServiceTestSuite) TestCreateReply_UnknownPost() {
	suite.createTestUser("21CS001", "CS", 2)

	_, err := suite.replies.CreateReply(suite.ctx, CreateReplyInput{
		RollNo:  "21CS001",
		PostID:  primitive.NewObjectID(),
		Content: "hello",
	})
	suite.ErrorIs(err, ErrPostNotFound)
}

func (suite *ServiceTestSuite) TestGlobalPosts_JoinAndOwnership() {
	suite.createTestUser("21CS001", "CS", 2)
	suite.createTestUser("21CS002", "EE", 3)

	post, err := suite.globalPosts.CreatePost(suite.ctx, "21CS001", "Carpool to the fest")
	suite.Require().NoError(err)
	suite.Empty(post.Participants)

	joined, err := suite.globalPosts.JoinPost(suite.ctx, "21CS002", post.ID)
	suite.Require().NoError(err)
	suite.True(joined)

	joined, err = suite.globalPosts.JoinPost(suite.ctx, "21CS002", post.ID)
	suite.Require().NoError(err)
	suite.False(joined)

	stored, err := suite.globalPosts.GetPost(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"21CS002"}, stored.Participants)

	suite.ErrorIs(suite.globalPosts.DeletePost(suite.ctx, "21CS002", post.ID), ErrNotAuthor)
	suite.Require().NoError(suite.globalPosts.DeletePost(suite.ctx, "21CS001", post.ID))

	posts, total, err := suite.globalPosts.ListPosts(suite.ctx, repository.Page{})
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.Empty(posts)
}

func (suite *ServiceTestSuite) TestForums() {
	suite.createTestUser("21CS001", "CS", 2)

	_, err := suite.forums.CreateForum(suite.ctx, CreateForumInput{RollNo: "21CS001", Title: "  "})
	suite.ErrorIs(err, ErrTitleRequired)

	forum := suite.createTestForum("21CS001")
	user, err := suite.identity.Resolve(suite.ctx, "21CS001")
	suite.Require().NoError(err)
	suite.Equal(user.ID, forum.AuthorID)

	forums, total, err := suite.forums.ListForums(suite.ctx, repository.Page{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(forum.ID, forums[0].ID)

	_, err = suite.forums.GetForum(suite.ctx, primitive.NewObjectID())
	suite.ErrorIs(err, ErrForumNotFound)
}
