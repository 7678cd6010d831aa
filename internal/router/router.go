package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/serviceflow/serviceflow-api/docs"
	"github.com/serviceflow/serviceflow-api/internal/config"
	"github.com/serviceflow/serviceflow-api/internal/middleware"
	"github.com/serviceflow/serviceflow-api/internal/modules/handler"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
	"github.com/serviceflow/serviceflow-api/internal/telemetry"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config            *config.Config
	Log               *zap.Logger
	Credentials       service.CredentialService
	Resolver          service.AccessResolver
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	ProjectHandler    *handler.ProjectHandler
	ServiceHandler    *handler.ServiceHandler
	BookingHandler    *handler.BookingHandler
	SubscriberHandler *handler.SubscriberHandler
	PublicHandler     *handler.PublicHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(d.Log))

	if cors := middleware.CORS(d.Config); cors != nil {
		r.Use(cors)
	}

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/login", d.AuthHandler.Login)

	manage := r.Group("/manage")
	{
		// the very first account is created anonymously, afterwards a superuser is required
		manage.POST("/users", middleware.OptionalJWTAuth(d.Credentials), d.UserHandler.CreateUser)

		authed := manage.Group("", middleware.JWTAuth(d.Credentials))

		users := authed.Group("/users")
		{
			users.GET("", d.UserHandler.ListUsers)
			users.GET("/me", d.UserHandler.GetMe)
			users.GET("/:user_id", d.UserHandler.GetUser)
			users.PUT("/:user_id", d.UserHandler.UpdateUser)
			users.DELETE("/:user_id", d.UserHandler.DeleteUser)
		}

		projects := authed.Group("/projects")
		{
			projects.POST("", d.ProjectHandler.CreateProject)
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.GET("/:project_id", d.ProjectHandler.GetProject)
			projects.PUT("/:project_id", d.ProjectHandler.UpdateProject)
			projects.DELETE("/:project_id", d.ProjectHandler.DeleteProject)

			services := projects.Group("/:project_id/services")
			{
				services.POST("", d.ServiceHandler.CreateService)
				services.GET("", d.ServiceHandler.ListServices)
				services.GET("/:service_id", d.ServiceHandler.GetService)
				services.PUT("/:service_id", d.ServiceHandler.UpdateService)
				services.DELETE("/:service_id", d.ServiceHandler.DeleteService)
			}

			bookings := projects.Group("/:project_id/bookings")
			{
				bookings.POST("", d.BookingHandler.CreateBooking)
				bookings.GET("", d.BookingHandler.ListBookings)
				bookings.GET("/:booking_id", d.BookingHandler.GetBooking)
				bookings.PUT("/:booking_id", d.BookingHandler.UpdateBooking)
				bookings.DELETE("/:booking_id", d.BookingHandler.DeleteBooking)
			}

			subscribers := projects.Group("/:project_id/subscribers")
			{
				subscribers.GET("", d.SubscriberHandler.ListSubscribers)
				subscribers.GET("/:subscriber_id", d.SubscriberHandler.GetSubscriber)
				subscribers.DELETE("/:subscriber_id", d.SubscriberHandler.DeleteSubscriber)
			}
		}
	}

	public := r.Group("/public/v1", middleware.APIKeyAuth(d.Config, d.Resolver))
	{
		public.GET("/services", d.PublicHandler.ListServices)
		public.POST("/bookings", d.PublicHandler.CreateBooking)
		public.POST("/subscribers", d.PublicHandler.CreateSubscriber)
	}

	return r
}
