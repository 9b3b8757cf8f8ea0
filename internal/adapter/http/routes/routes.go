package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "settlement_console/docs" // registers the swagger docs
	"settlement_console/internal/adapter/http/handlers"
	"settlement_console/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the engine with every console route mounted under /v1.
func NewRouter(a *app.App) *gin.Engine {
	if a.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, a.Logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(a.Metrics.Handler()))

	entryHandler := handlers.NewEntryHandler(a.Entry)
	importHandler := handlers.NewImportHandler(a.Import)
	reportHandler := handlers.NewReportHandler(a.Report)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConsoleRoutes(v1, entryHandler, importHandler, reportHandler)
	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, a *app.App) error {
	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           NewRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("[http][server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http][server] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("[http][request]",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}
