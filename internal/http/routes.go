package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a set of routes that can be registered on the router.
type RouteGroup interface {
	// RegisterRoutes registers routes on the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PublicRouteGroup defines routes that do not require authentication,
// such as price calculation and catalog reads.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes on the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes gated behind JWT auth and permissions,
// such as catalog writes and user management.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes on the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
