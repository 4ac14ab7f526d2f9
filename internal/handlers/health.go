package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/db"
	"github.com/sirupsen/logrus"
)

func HealthCheck(c *gin.Context) {
	status, code := "ok", http.StatusOK

	if err := pingDatabase(); err != nil {
		logrus.WithError(err).Warn("Health check: database unreachable")
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"message":   "OH card workbench is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func pingDatabase() error {
	sqlDB, err := db.DB.DB()

	if err != nil {
		return err
	}

	return sqlDB.Ping()
}
