package handlers

import (
	"net/http"

	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderOrganizationID carries the tenant of every /v1 request.
const HeaderOrganizationID = "X-Organization-ID"

const tenantContextKey = "tenant"

var errMissingOrganization = pkg.NewDomainErrorSimple("MISSING_ORGANIZATION", "X-Organization-ID header is required", http.StatusBadRequest)

// RequireTenant resolves the tenant from HeaderOrganizationID and aborts the
// request when it is missing.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, err := entities.NewTenant(c.GetHeader(HeaderOrganizationID))
		if err != nil {
			c.AbortWithStatusJSON(errMissingOrganization.HTTPStatus, errMissingOrganization.ToHTTPError())
			return
		}
		c.Set(tenantContextKey, tenant)
		c.Next()
	}
}

// tenantOf returns the tenant set by RequireTenant. A handler mounted without
// the middleware gets a zero Tenant, which the use cases reject.
func tenantOf(c *gin.Context) entities.Tenant {
	if v, ok := c.Get(tenantContextKey); ok {
		if t, ok := v.(entities.Tenant); ok {
			return t
		}
	}
	return entities.Tenant{}
}
