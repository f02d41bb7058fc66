package routes

import (
	"conference-management-api/controllers"
	"conference-management-api/middleware"
	"conference-management-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)
			public.POST("/register", controllers.Register)
			public.POST("/refresh", controllers.RefreshToken)

			// Public site content
			public.GET("/committee", controllers.GetCommittee)
			public.GET("/speakers", controllers.GetSpeakers)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Conference Management API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// File uploads (proofs, manuscripts, photos)
			protected.POST("/uploads", controllers.UploadFile)
			protected.GET("/uploads/:file_id", controllers.DownloadFile)

			// Author dashboard: papers
			papers := protected.Group("/papers")
			{
				papers.GET("", controllers.GetMyPapers)
				papers.GET("/:id", controllers.GetPaper)
				papers.POST("", controllers.CreatePaper)
				papers.POST("/:id/manuscript", controllers.AttachManuscript)
			}

			// Author dashboard: payments
			payments := protected.Group("/payments")
			{
				payments.GET("", controllers.GetMyPayments)
				payments.POST("", controllers.CreatePayment)
				payments.GET("/:id/receipt", controllers.DownloadReceipt)
			}

			// In-app notifications
			protected.GET("/notifications", controllers.GetMyNotifications)
			protected.PUT("/notifications/:id/read", controllers.MarkNotificationRead)

			// Admin back office
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleIDAdmin))
			{
				// Paper review
				admin.GET("/papers", controllers.GetPapersAdmin)
				admin.PATCH("/papers/:id", controllers.UpdatePaper)
				admin.DELETE("/papers/:id", controllers.DeletePaper)
				admin.PUT("/submissions/:id", controllers.DecideSubmission)

				// Payment verification
				admin.GET("/payments", controllers.GetPaymentsAdmin)
				admin.PUT("/payments/:id", controllers.DecidePayment)
				admin.PATCH("/payments/:id", controllers.UpdatePayment)

				// Committee management
				admin.GET("/committee", controllers.GetCommitteeAdmin)
				admin.POST("/committee", controllers.CreateCommitteeMember)
				admin.PUT("/committee/:id", controllers.UpdateCommitteeMember)
				admin.PUT("/committee/:id/photo", controllers.SetCommitteePhoto)
				admin.DELETE("/committee/:id", controllers.DeleteCommitteeMember)

				// Speaker management
				admin.GET("/speakers", controllers.GetSpeakersAdmin)
				admin.POST("/speakers", controllers.CreateSpeaker)
				admin.PUT("/speakers/:id", controllers.UpdateSpeaker)
				admin.PUT("/speakers/:id/photo", controllers.SetSpeakerPhoto)
				admin.DELETE("/speakers/:id", controllers.DeleteSpeaker)

				// User administration
				admin.GET("/users", controllers.GetUsersAdmin)
				admin.GET("/users/:id", controllers.GetUserAdmin)
				admin.PUT("/users/:id", controllers.UpdateUserAdmin)
				admin.DELETE("/users/:id", controllers.DeleteUserAdmin)

				// Email templates and delivery monitoring
				admin.GET("/email-templates", controllers.GetEmailTemplates)
				admin.PUT("/email-templates/:id", controllers.UpdateEmailTemplate)
				admin.POST("/email-templates/:event_key/preview", controllers.PreviewEmailTemplate)
				admin.GET("/outbox", controllers.GetOutbox)

				// Exports
				admin.GET("/export/papers.csv", controllers.ExportPapersCSV)
				admin.GET("/export/payments.csv", controllers.ExportPaymentsCSV)
				admin.GET("/export/registrations.xlsx", controllers.ExportRegistrationsXLSX)
			}
		}
	}
}
