package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chathuka55/coffee-me-pos/pkg/apperr"
)

// Envelope matches what the POS front end consumes: {success, data, message}.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func OKMessage(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "message": msg})
}

func Created(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data, "message": msg})
}

func Deleted(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
}

// Error maps tagged business errors to status codes: not-found 404,
// validation/conflict 400, anything else 500.
func Error(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case apperr.KindValidation, apperr.KindConflict:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	}
}
