package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/appcontext"
	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/http/middleware"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware())

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	h.setupUserRoutes()
	h.setupDatasetRoutes()
}

func (h *APIService) setupUserRoutes() {
	user := h.engine.Group("/user")

	user.POST("/signup", Signup(h.context))
	user.POST("/login", Login(h.context))
	user.POST("/logout", Logout(h.context))
	user.GET("/me", middleware.JWTAuthMiddleware(), GetUserInfo(h.context))
}

func (h *APIService) setupDatasetRoutes() {
	api := h.engine.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())

	api.GET("/products", GetProducts(h.context))
	api.GET("/sales", GetSales(h.context))
	api.GET("/financial_reports", GetFinancialReports(h.context))
	api.GET("/customer_trends", GetCustomerTrends(h.context))

	post := h.engine.Group("/post")
	post.Use(middleware.JWTAuthMiddleware())

	post.POST("/products", UploadProducts(h.context))
	post.POST("/sales", UploadSales(h.context))
	post.POST("/financial_reports", UploadFinancialReports(h.context))
	post.POST("/customer_trends", UploadCustomerTrends(h.context))
}
