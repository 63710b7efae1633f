package handlers

import (
	"strings"
	"time"

	"shikkhabazar/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Auth          *AuthHandler
	Courses       *CourseHandler
	Coupons       *CouponHandler
	Payments      *PaymentHandler
	IPN           *IPNHandler
	Manual        *ManualPaymentHandler
	Dashboard     *DashboardHandler
	Certificates  *CertificateHandler
	Newsletter    *NewsletterHandler
	Announcements *AnnouncementHandler

	Limiter        *middleware.RateLimiter
	AccessChecker  middleware.AccessValidator
	EmailLookup    middleware.EmailLookup
	AllowedOrigins string
	AdminEmails    []string
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(d.AllowedOrigins, ",")
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	authRequired := middleware.AuthMiddleware(d.AccessChecker)
	adminOnly := middleware.SuperAdminMiddleware(d.AccessChecker, d.EmailLookup, d.AdminEmails)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.Limiter.Limit("register", 5, 1*time.Minute), d.Auth.Register)
			auth.POST("/login", d.Limiter.Limit("login", 5, 1*time.Minute), d.Auth.Login)
			auth.POST("/refresh", d.Auth.Refresh)
			auth.POST("/logout", d.Auth.Logout)
		}

		// Публичный каталог и витрина
		api.GET("/courses", d.Courses.List)
		api.GET("/courses/:id", d.Courses.GetOne)
		api.GET("/courses/:id/reviews", d.Courses.ListReviews)
		api.GET("/announcements", d.Announcements.ListPublished)
		api.GET("/certificates/verify/:serial", d.Certificates.Verify)

		api.POST("/newsletter/subscribe", d.Limiter.Limit("subscribe", 3, 5*time.Minute), d.Newsletter.Subscribe)
		api.POST("/newsletter/unsubscribe", d.Newsletter.Unsubscribe)

		// Коллбек шлюза, авторизации нет
		api.POST("/payments/ipn", d.IPN.Handle)

		user := api.Group("/user")
		user.Use(authRequired)
		{
			user.GET("/profile", d.Auth.GetProfile)
			user.PUT("/profile", d.Auth.UpdateProfile)
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(authRequired)
		{
			dashboard.GET("/courses", d.Dashboard.MyCourses)
			dashboard.POST("/progress", d.Dashboard.UpdateProgress)
			dashboard.POST("/reviews", d.Dashboard.CreateReview)
			dashboard.GET("/invoices", d.Payments.MyInvoices)
			dashboard.GET("/certificates/:courseId", d.Certificates.Generate)
		}

		payments := api.Group("/payments")
		payments.Use(authRequired)
		{
			payments.POST("/initiate", d.Payments.Initiate)
			payments.POST("/manual", d.Manual.Submit)
			payments.GET("/my", d.Payments.MyPayments)
			payments.POST("/coupons/validate", d.Coupons.Validate)
		}

		admin := api.Group("/admin")
		admin.Use(adminOnly)
		{
			admin.GET("/manual-payments", d.Manual.ListPending)
			admin.PUT("/manual-payments/:id/status", d.Manual.UpdateStatus)

			admin.GET("/coupons", d.Coupons.ListAll)
			admin.POST("/coupons", d.Coupons.Create)
			admin.PUT("/coupons/:id", d.Coupons.Update)
			admin.DELETE("/coupons/:id", d.Coupons.Delete)

			admin.POST("/courses", d.Courses.Create)
			admin.PUT("/courses/:id", d.Courses.Update)
			admin.DELETE("/courses/:id", d.Courses.Delete)
			admin.DELETE("/reviews/:id", d.Courses.DeleteReview)

			admin.GET("/announcements", d.Announcements.ListAll)
			admin.POST("/announcements", d.Announcements.Create)
			admin.PUT("/announcements/:id", d.Announcements.Update)
			admin.DELETE("/announcements/:id", d.Announcements.Delete)

			admin.GET("/payments", d.Payments.ListAll)
			admin.POST("/newsletter/send", d.Newsletter.Send)
		}
	}

	return r
}
