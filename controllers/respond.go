package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/washease/laundry-app/services"
	"github.com/washease/laundry-app/utils"
)

// respondServiceError maps a workflow-engine failure onto the HTTP surface.
// Anything untyped is a 500; nothing on a request path is ever fatal.
func respondServiceError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		utils.RespondError(c, svcErr.Code, svcErr)
		return
	}
	utils.ErrorLogger.Printf("Unhandled service error: %v", err)
	utils.RespondError(c, http.StatusInternalServerError, err)
}
