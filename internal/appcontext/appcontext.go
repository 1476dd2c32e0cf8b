package appcontext

import (
	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"

	istore "github.com/Diptesh821/Data-Visualization-Dashboard/internal/store"
	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/uploads"
)

type Context struct {
	DB     *gorm.DB
	Logger *zap.Logger

	Store   *istore.Store
	Uploads uploads.Service

	GCSClient     *storage.Client
	GCSBucketName string

	Environment string
}
