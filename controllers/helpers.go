package controllers

import (
	"errors"
	"net/http"

	"conference-management-api/config"
	"conference-management-api/services"

	"github.com/gin-gonic/gin"
)

// currentActor resolves the caller identity set by the auth middleware into
// the explicit actor the workflow services require.
func currentActor(c *gin.Context) services.Actor {
	actor := services.Actor{}
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(int); ok {
			actor.UserID = id
		}
	}
	if v, ok := c.Get("roleID"); ok {
		if id, ok := v.(int); ok {
			actor.RoleID = id
		}
	}
	return actor
}

func currentUserID(c *gin.Context) int {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func newReviewService() *services.ReviewService {
	return services.NewReviewService(
		services.NewPaperStore(config.DB),
		services.NewPaymentStore(config.DB),
		services.NewEmailNotifier(config.DB),
	)
}

func newListingService() *services.ListingService {
	return services.NewListingService(
		services.NewPaperStore(config.DB),
		services.NewPaymentStore(config.DB),
	)
}
