// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"critique/internal/delivery/http/middleware"
	"critique/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ItemHandler    *handler.ItemHandler
	ReviewHandler  *handler.ReviewHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	itemHandler    *handler.ItemHandler
	reviewHandler  *handler.ReviewHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		itemHandler:    params.ItemHandler,
		reviewHandler:  params.ReviewHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads on the catalog and on reviews are public; every mutation and every
// "me" route sits behind the auth gate.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public catalog and review reads
	e.GET("/items", r.itemHandler.ListItems)
	e.GET("/items/:itemId", r.itemHandler.GetItem)
	e.GET("/items/:itemId/reviews", r.reviewHandler.ListReviewsByItem)
	e.GET("/items/:itemId/reviews/:reviewId", r.reviewHandler.GetReview)

	// Review routes that require authentication
	e.POST("/items/:itemId/reviews", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)

	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(r.authMiddleware.Authenticate)
	{
		reviewGroup.GET("/me", r.reviewHandler.ListMyReviews)
		reviewGroup.PUT("/:reviewId", r.reviewHandler.UpdateReview)
		reviewGroup.DELETE("/:reviewId", r.reviewHandler.DeleteReview)
		reviewGroup.POST("/:reviewId/comments", r.commentHandler.CreateComment)
	}

	// Comment routes that require authentication
	commentGroup := e.Group("/comments")
	commentGroup.Use(r.authMiddleware.Authenticate)
	{
		commentGroup.GET("/me", r.commentHandler.ListMyComments)
		commentGroup.PUT("/:commentId", r.commentHandler.UpdateComment)
		commentGroup.DELETE("/:commentId", r.commentHandler.DeleteComment)
	}
}
