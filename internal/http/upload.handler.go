package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/appcontext"
	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/ingest"
	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/utils"
)

// handleDatasetUpload is the shared glue behind the four upload endpoints:
// relay the multipart file, open it back as a byte stream, and hand the
// stream to the ingestion pipeline under the caller's tenant context.
func handleDatasetUpload(ctx *appcontext.Context, c *gin.Context, dataset ingest.Dataset) {
	userID, err := utils.GetUserIDFromClaims(c)
	if err != nil {
		ctx.Logger.Error("Failed to get user ID from claims", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not logged in"})
		return
	}

	businessName := c.PostForm("business_name")

	file, err := c.FormFile(string(dataset) + "_csv")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	handle, remote, err := ctx.Uploads.Save(c.Request.Context(), string(dataset), file)
	if err != nil {
		ctx.Logger.Error("Failed to save upload", zap.String("dataset", string(dataset)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	var source ingest.Source
	if remote {
		source = ingest.RemoteSource{URL: handle}
	} else {
		source = ingest.LocalSource{Path: handle}
	}

	stream, err := source.Open(c.Request.Context())
	if err != nil {
		ctx.Logger.Error("Upload source unavailable", zap.String("dataset", string(dataset)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	defer stream.Close()

	reader, err := ingest.NewRecordReader(file.Filename, stream)
	if err != nil {
		ctx.Logger.Error("Failed to read upload", zap.String("dataset", string(dataset)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	transformer, err := ingest.NewTransformer(dataset, userID, businessName, ingest.Policy{})
	if err != nil {
		ctx.Logger.Error("Failed to build transformer", zap.String("dataset", string(dataset)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	job := ingest.Job{
		OwnerID:      userID,
		BusinessName: businessName,
		Dataset:      dataset,
	}

	result, err := ingest.Run(c.Request.Context(), job, reader, transformer, ctx.Store, ctx.Logger)
	if err != nil {
		ctx.Logger.Error("Import failed",
			zap.String("dataset", string(dataset)),
			zap.Int("accepted", result.Accepted),
			zap.Int("rejected", result.Rejected),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	ctx.Logger.Info("Import finished",
		zap.String("dataset", string(dataset)),
		zap.Int("accepted", result.Accepted),
		zap.Int("rejected", result.Rejected),
		zap.Int("store_failures", result.StoreFailures))

	if result.Accepted == 0 && result.StoreFailures > 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error inserting data into the database"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File processed and data inserted"})
}
