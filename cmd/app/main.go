package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/account_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/blog_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/booking_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/content_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/db_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/mail_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/media_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/memcache_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/seo_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/settings_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/cmd/fx/trek_fx"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/api/controllers"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/logger"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, relying on environment")
	}
	logger.Setup()

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		trek_fx.Module,
		booking_fx.Module,
		blog_fx.Module,
		content_fx.Module,
		media_fx.Module,
		settings_fx.Module,
		account_fx.Module,
		seo_fx.Module,

		fx.Provide(
			controllers.NewTrekController,
			controllers.NewBookingController,
			controllers.NewBlogController,
			controllers.NewContactController,
			controllers.NewFAQController,
			controllers.NewTeamController,
			controllers.NewMediaController,
			controllers.NewSettingsController,
			controllers.NewAccountController,
			controllers.NewSeoController,
		),

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				logrus.Infof("starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					logrus.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	trekController *controllers.TrekController,
	bookingController *controllers.BookingController,
	blogController *controllers.BlogController,
	contactController *controllers.ContactController,
	faqController *controllers.FAQController,
	teamController *controllers.TeamController,
	mediaController *controllers.MediaController,
	settingsController *controllers.SettingsController,
	accountController *controllers.AccountController,
	seoController *controllers.SeoController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	registerPublicRoutes(r, trekController, bookingController, blogController,
		contactController, faqController, teamController, mediaController,
		settingsController, accountController, seoController)
	registerAdminRoutes(r, trekController, bookingController, blogController,
		contactController, faqController, teamController, mediaController,
		settingsController, accountController)

	return r
}

func registerPublicRoutes(r *gin.Engine,
	trekController *controllers.TrekController,
	bookingController *controllers.BookingController,
	blogController *controllers.BlogController,
	contactController *controllers.ContactController,
	faqController *controllers.FAQController,
	teamController *controllers.TeamController,
	mediaController *controllers.MediaController,
	settingsController *controllers.SettingsController,
	accountController *controllers.AccountController,
	seoController *controllers.SeoController) {

	r.GET("/treks", trekController.ListTreks)
	r.GET("/treks/:slug", trekController.GetTrekBySlug)

	r.GET("/blog", blogController.ListPosts)
	r.GET("/blog/:slug", blogController.GetPostBySlug)

	r.GET("/faqs", faqController.ListGrouped)
	r.GET("/team", teamController.ListActive)
	r.GET("/gallery", mediaController.ListMedia)
	r.GET("/settings", settingsController.GetSettings)

	r.POST("/contact", contactController.SubmitContact)
	r.POST("/bookings", bookingController.CreateBooking)

	r.POST("/auth/login", accountController.Login)

	r.POST("/api/seo-optimize", seoController.Optimize)
}

func registerAdminRoutes(r *gin.Engine,
	trekController *controllers.TrekController,
	bookingController *controllers.BookingController,
	blogController *controllers.BlogController,
	contactController *controllers.ContactController,
	faqController *controllers.FAQController,
	teamController *controllers.TeamController,
	mediaController *controllers.MediaController,
	settingsController *controllers.SettingsController,
	accountController *controllers.AccountController) {

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))

	admin.GET("/treks", trekController.ListAllTreks)
	admin.GET("/treks/:id", trekController.GetTrekByID)
	admin.POST("/treks", trekController.CreateTrek)
	admin.PUT("/treks/:id", trekController.UpdateTrek)
	admin.DELETE("/treks/:id", trekController.DeleteTrek)

	admin.GET("/bookings", bookingController.ListBookings)
	admin.GET("/bookings/:id", bookingController.GetBooking)
	admin.PUT("/bookings/:id/status", bookingController.UpdateBookingStatus)
	admin.DELETE("/bookings/:id", bookingController.DeleteBooking)

	admin.GET("/posts", blogController.ListAllPosts)
	admin.GET("/posts/:id", blogController.GetPostByID)
	admin.POST("/posts", blogController.CreatePost)
	admin.PUT("/posts/:id", blogController.UpdatePost)
	admin.DELETE("/posts/:id", blogController.DeletePost)

	admin.GET("/contacts", contactController.ListSubmissions)
	admin.PUT("/contacts/:id/read", contactController.MarkRead)
	admin.PUT("/contacts/:id/response", contactController.Respond)
	admin.DELETE("/contacts/:id", contactController.DeleteSubmission)

	admin.GET("/faqs", faqController.ListAll)
	admin.POST("/faqs", faqController.CreateFAQ)
	admin.PUT("/faqs/:id", faqController.UpdateFAQ)
	admin.DELETE("/faqs/:id", faqController.DeleteFAQ)

	admin.GET("/team", teamController.ListAll)
	admin.POST("/team", teamController.CreateMember)
	admin.PUT("/team/:id", teamController.UpdateMember)
	admin.DELETE("/team/:id", teamController.DeleteMember)

	admin.POST("/media", mediaController.Upload)
	admin.PUT("/media/:id", mediaController.UpdateMedia)
	admin.DELETE("/media/:id", mediaController.DeleteMedia)

	admin.PUT("/settings", settingsController.UpdateSettings)
	admin.POST("/accounts", accountController.CreateAccount)
}
