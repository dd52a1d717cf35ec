package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Kariqs/storefront-api/authz"
	"github.com/Kariqs/storefront-api/gateway"
	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Collaborators wired by main. Tests swap them for fakes.
var (
	PaymentGateway gateway.Gateway = gateway.OfflineGateway{}
	Images         utils.ImageStore
	Mailer         utils.Mailer
)

const msgForbidden = "You are not allowed to access this resource"

func database(ctx *gin.Context) *gorm.DB {
	return initializers.DB.WithContext(ctx.Request.Context())
}

// respondWithServiceError maps a services error class onto its HTTP status.
// Unclassified errors are logged and hidden behind a generic 500.
func respondWithServiceError(ctx *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondWithError(ctx, http.StatusNotFound, message, err)
	case errors.Is(err, services.ErrInvalidInput):
		respondWithError(ctx, http.StatusBadRequest, message, err)
	case errors.Is(err, services.ErrConflict):
		respondWithError(ctx, http.StatusConflict, message, err)
	default:
		log.Printf("[%s] %s: %v", middlewares.RequestID(ctx), message, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 0)
	if err != nil || id == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Invalid "+name, err)
		return 0, false
	}
	return uint(id), true
}

func currentPrincipal(ctx *gin.Context) authz.Principal {
	principal, _ := middlewares.CurrentPrincipal(ctx)
	return principal
}

// authorizeCustomer answers 403 unless the caller is an admin, the owning
// customer, or holds one of staffRoles.
func authorizeCustomer(ctx *gin.Context, customerID uint, staffRoles ...string) bool {
	if authz.CanActOnCustomerOrStaff(currentPrincipal(ctx), customerID, staffRoles...) {
		return true
	}
	sendErrorResponse(ctx, http.StatusForbidden, msgForbidden)
	return false
}
