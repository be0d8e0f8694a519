package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shamshad-ansari/fitpro-backend/utils"
)

// devMode switches the terminal error handler to verbose messages. Set
// once from the router; production keeps 500 bodies generic.
var devMode bool

func SetDevMode(enabled bool) { devMode = enabled }

func respondOK(c *gin.Context, status int, data any, message string) {
	body := gin.H{"success": true}
	if data != nil {
		body["data"] = data
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// respondError maps an *APIError to its status and everything else to a
// logged 500.
func respondError(c *gin.Context, err error) {
	var apiErr *utils.APIError
	if errors.As(err, &apiErr) {
		body := gin.H{"success": false, "message": apiErr.Message}
		if apiErr.Details != nil {
			body["errors"] = apiErr.Details
		}
		c.JSON(apiErr.Status, body)
		return
	}

	logrus.WithError(err).
		WithField("path", c.FullPath()).
		Error("unhandled error")

	message := "Internal Server Error"
	if devMode {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
}

// respondBindError turns gin binding failures into the 400 envelope with a
// field-level error array.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, gin.H{
				"field":   fe.Field(),
				"message": "failed on " + fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false, "message": "Validation failed", "errors": fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false, "message": "Validation failed", "errors": []gin.H{{"message": err.Error()}},
	})
}

// parseDateQuery reads an optional YYYY-MM-DD (or RFC3339) query value.
// The zero time means "unbounded".
func parseDateQuery(c *gin.Context, key string) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, utils.NewValidationError("Invalid "+key+" date", nil)
	}
	return t, nil
}
