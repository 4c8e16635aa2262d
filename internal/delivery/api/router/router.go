// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sip/config"
	"sip/internal/delivery/api/middleware"
	"sip/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CatalogHandler    *handler.CatalogHandler
	CollectionHandler *handler.CollectionHandler
	ProfileHandler    *handler.ProfileHandler
	ScoreHandler      *handler.ScoreHandler
	ChatHandler       *handler.ChatHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	collectionHandler *handler.CollectionHandler
	profileHandler    *handler.ProfileHandler
	scoreHandler      *handler.ScoreHandler
	chatHandler       *handler.ChatHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		catalogHandler:    params.CatalogHandler,
		collectionHandler: params.CollectionHandler,
		profileHandler:    params.ProfileHandler,
		scoreHandler:      params.ScoreHandler,
		chatHandler:       params.ChatHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The flat paths mirror the legacy client contract.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/signin", r.authHandler.SignIn)
	e.POST("/signup", r.authHandler.SignUp)
	e.GET("/getcategories", r.catalogHandler.GetCategories)
	e.GET("/getproduct/:id", r.catalogHandler.GetProduct)

	// Legacy email-keyed score submission predates authentication
	e.POST("/savescore", r.scoreHandler.SaveScoreLegacy)

	// Uploaded profile images are served statically
	if r.config.Upload != nil {
		e.Static("/uploads", r.config.Upload.Dir)
	}

	// Routes that require authentication
	authed := e.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/getdrinks", r.catalogHandler.GetDrinks)
		authed.GET("/getfavorites", r.catalogHandler.GetFavorites)
		authed.GET("/gethistories", r.catalogHandler.GetHistories)
		authed.GET("/getingredients", r.catalogHandler.GetIngredients)

		authed.GET("/getprofile", r.profileHandler.GetProfile)
		authed.POST("/update-profile", r.profileHandler.UpdateProfile)

		authed.POST("/addfavorite", r.collectionHandler.AddFavorite)
		authed.POST("/like", r.collectionHandler.Like)
		authed.POST("/dislike", r.collectionHandler.Dislike)
		authed.POST("/addhistory", r.collectionHandler.AddHistory)

		authed.GET("/score", r.scoreHandler.GetScores)
		authed.POST("/score", r.collectionHandler.SaveScores)
		authed.GET("/getscore", r.scoreHandler.GetScoreLegacy)

		authed.POST("/getresponse", r.chatHandler.GetResponse)
		authed.GET("/getsuggestions", r.chatHandler.GetSuggestions)
		authed.POST("/trainmodel", r.chatHandler.TrainModel)
	}
}
