// Package server wires repositories, services and handlers into the HTTP API.
package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/kishoreadhith-v/clubs-api/internal/auth"
	"github.com/kishoreadhith-v/clubs-api/internal/config"
	"github.com/kishoreadhith-v/clubs-api/internal/constants"
	"github.com/kishoreadhith-v/clubs-api/internal/handlers"
	"github.com/kishoreadhith-v/clubs-api/internal/middleware"
	"github.com/kishoreadhith-v/clubs-api/internal/repository"
	"github.com/kishoreadhith-v/clubs-api/internal/services"
	"github.com/kishoreadhith-v/clubs-api/internal/store"
)

// Services groups the application services built on one document store.
type Services struct {
	Tokens      *auth.TokenService
	Auth        *services.AuthService
	Forums      *services.ForumService
	Posts       *services.PostService
	Replies     *services.ReplyService
	GlobalPosts *services.GlobalPostService
	Events      *services.EventService
}

// NewServices builds the repositories and services for st.
func NewServices(cfg *config.Config, st store.Store) *Services {
	userRepo := repository.NewUserRepository(st)
	forumRepo := repository.NewForumRepository(st)
	postRepo := repository.NewPostRepository(st)
	replyRepo := repository.NewReplyRepository(st)
	globalPostRepo := repository.NewGlobalPostRepository(st)
	eventRepo := repository.NewEventRepository(st)

	tokens := auth.NewTokenService(cfg.JWTSecret, constants.TokenTTL)
	identity := services.NewIdentityResolver(userRepo)

	return &Services{
		Tokens:      tokens,
		Auth:        services.NewAuthService(userRepo, tokens, identity),
		Forums:      services.NewForumService(forumRepo, identity),
		Posts:       services.NewPostService(postRepo, forumRepo, identity),
		Replies:     services.NewReplyService(replyRepo, postRepo, identity),
		GlobalPosts: services.NewGlobalPostService(globalPostRepo, identity),
		Events:      services.NewEventService(eventRepo, identity),
	}
}

// NewRouter builds the gin engine serving the API.
func NewRouter(cfg *config.Config, svc *Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(constants.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsRelease(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	authHandler := handlers.NewAuthHandler(svc.Auth)
	forumHandler := handlers.NewForumHandler(svc.Forums)
	postHandler := handlers.NewPostHandler(svc.Posts)
	replyHandler := handlers.NewReplyHandler(svc.Replies)
	globalPostHandler := handlers.NewGlobalPostHandler(svc.GlobalPosts)
	eventHandler := handlers.NewEventHandler(svc.Events)

	requireAuth := middleware.RequireAuth(svc.Tokens)
	requireID := middleware.RequireObjectID()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Clubs API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public except /me)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		forums := api.Group("/forums")
		{
			forums.GET("", forumHandler.ListForums)
			forums.GET("/:id", requireID, forumHandler.GetForum)
			forums.POST("", requireAuth, forumHandler.CreateForum)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.ListPosts)
			posts.GET("/:id", requireID, postHandler.GetPost)
			posts.POST("", requireAuth, postHandler.CreatePost)
			posts.PATCH("/:id", requireAuth, requireID, postHandler.UpdatePost)
			posts.DELETE("/:id", requireAuth, requireID, postHandler.DeletePost)
		}

		replies := api.Group("/replies")
		{
			replies.GET("", replyHandler.ListReplies)
			replies.GET("/:id", requireID, replyHandler.GetReply)
			replies.POST("", requireAuth, replyHandler.CreateReply)
			replies.PATCH("/:id", requireAuth, requireID, replyHandler.UpdateReply)
			replies.DELETE("/:id", requireAuth, requireID, replyHandler.DeleteReply)
		}

		globalPosts := api.Group("/global-posts")
		{
			globalPosts.GET("", globalPostHandler.ListPosts)
			globalPosts.GET("/:id", requireID, globalPostHandler.GetPost)
			globalPosts.POST("", requireAuth, globalPostHandler.CreatePost)
			globalPosts.PATCH("/:id", requireAuth, requireID, globalPostHandler.UpdatePost)
			globalPosts.DELETE("/:id", requireAuth, requireID, globalPostHandler.DeletePost)
			globalPosts.POST("/:id/join", requireAuth, requireID, globalPostHandler.JoinPost)
		}

		// Event routes (protected)
		events := api.Group("/events")
		events.Use(requireAuth)
		{
			events.POST("", eventHandler.CreateEvent)
			events.GET("", eventHandler.ListEvents)
			events.GET("/registered", eventHandler.ListRegisteredEvents)
			events.GET("/:id", requireID, eventHandler.GetEvent)
			events.POST("/:id/register", requireID, eventHandler.RegisterForEvent)
		}
	}

	return r
}
