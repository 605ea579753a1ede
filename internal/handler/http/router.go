package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openforum/likeservice/internal/domain/contract"
	"github.com/openforum/likeservice/internal/handler/http/middleware"
	appvalidator "github.com/openforum/likeservice/internal/infrastructure/validator"
	"github.com/openforum/likeservice/internal/usecase"
	usecasecontract "github.com/openforum/likeservice/internal/usecase/contract"
)

type Router struct {
	interactionHandler *InteractionHandler
	reactionsHandler   *ReactionsHandler
	profileLikeHandler *ProfileLikeHandler
	jwtService         usecase.JWTService
}

func NewRouter(likeUsecase usecasecontract.ILikeUseCase, notifier usecasecontract.INotificationDispatcher, gate usecasecontract.IPermissionGate, userRepo contract.IUserRepository, jwtService usecase.JWTService, config usecasecontract.IConfigProvider, validator *appvalidator.AppValidator, logger usecasecontract.IAppLogger) *Router {
	return &Router{
		interactionHandler: NewInteractionHandler(likeUsecase, notifier, gate, validator, logger),
		reactionsHandler:   NewReactionsHandler(likeUsecase, gate),
		profileLikeHandler: NewProfileLikeHandler(notifier, userRepo, config, logger),
		jwtService:         jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	// Non-POST calls to the toggle endpoints must answer 405, not 404.
	router.HandleMethodNotAllowed = true

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.Metrics())

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authed := router.Group("/")
	authed.Use(middleware.AuthMiddleWare(r.jwtService))
	{
		plugin := authed.Group("/plugin")
		{
			// Toggle endpoint (multi-type variant).
			plugin.POST("/rjlike/:postType/:postID", tollbooth_gin.LimitHandler(lmt), r.interactionHandler.ToggleLikeHandler)
			// Thread overview for page rendering.
			plugin.GET("/rjlike/discussion/:discussionID/buttons", r.reactionsHandler.ThreadButtonsHandler)

			// Legacy like-only profile endpoint.
			plugin.POST("/like/:userRef", tollbooth_gin.LimitHandler(lmt), r.profileLikeHandler.LikeProfileHandler)
			plugin.GET("/like/:userRef/button", r.profileLikeHandler.ShowLikeButtonHandler)
		}

		// API v1 alias of the toggle endpoint.
		authed.POST("/api/v1/posts/:postType/:postID/like", tollbooth_gin.LimitHandler(lmt), r.interactionHandler.ToggleLikeHandler)
	}
}
