package constants

import "time"

const (
	// ContextKeyRollNo is the gin context key holding the authenticated roll number.
	ContextKeyRollNo = "rollno"
	// ContextKeyRequestID is the gin context key holding the request ID.
	ContextKeyRequestID = "request_id"
	// ContextKeyResourceID is the gin context key holding the parsed :id path parameter.
	ContextKeyResourceID = "resource_id"

	SessionCookieName = "clubs_session"
	SessionKeyToken   = "token"

	// TokenTTL is the fixed validity window of issued tokens.
	TokenTTL = 24 * time.Hour

	MinPasswordLength = 6

	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Document collections.
const (
	CollectionUsers       = "users"
	CollectionForums      = "forums"
	CollectionPosts       = "posts"
	CollectionGlobalPosts = "global_posts"
	CollectionReplies     = "replies"
	CollectionEvents      = "events"
)
