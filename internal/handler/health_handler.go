package handler

import (
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db    *dynamodb.Client
	table string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *dynamodb.Client, table string) *HealthHandler {
	return &HealthHandler{db: db, table: table}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	_, err := h.db.DescribeTable(c.Request.Context(), &dynamodb.DescribeTableInput{
		TableName: aws.String(h.table),
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "case table not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
