package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-taskhub/internal/repo"
	"go-taskhub/internal/service"
	"go-taskhub/internal/transport/http/handler"
	mdw "go-taskhub/internal/transport/http/middleware"
)

// NewEngine assembles the middleware chain and mounts the resource
// handlers at the root.
func NewEngine(l *zap.Logger, db *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("")
	handler.NewUserHandler(service.NewUserService(repo.NewUserRepo(db))).Mount(api)
	handler.NewCategoryHandler(service.NewCategoryService(repo.NewCategoryRepo(db))).Mount(api)
	handler.NewTaskHandler(service.NewTaskService(repo.NewTaskRepo(db))).Mount(api)

	return r
}
