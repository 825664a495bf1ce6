package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds and validates the request body. On failure it writes a 400
// with per-field errors and returns false.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	err := ctx.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields[strings.ToLower(fieldError.Field())] = validationMessage(fieldError)
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
		return false
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	return false
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fieldError.Param()
	case "max":
		return "must be at most " + fieldError.Param()
	case "oneof":
		return "must be one of: " + fieldError.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
