package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthController struct {
	client *mongo.Client
}

func NewHealthController(client *mongo.Client) *HealthController {
	return &HealthController{client: client}
}

func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbState := "connected"
	if err := hc.client.Ping(ctx, nil); err != nil {
		dbState = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "db": dbState})
}
