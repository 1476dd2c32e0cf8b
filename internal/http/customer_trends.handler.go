package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/appcontext"
	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/ingest"
	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/utils"
)

func GetCustomerTrends(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get user ID from claims", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not logged in"})
			return
		}

		trends, err := ctx.Store.ListCustomerTrends(c.Request.Context(), userID)
		if err != nil {
			ctx.Logger.Error("Failed to fetch customer trends", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, trends)
	}
}

func UploadCustomerTrends(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		handleDatasetUpload(ctx, c, ingest.DatasetCustomerTrends)
	}
}
