package api

import (
	"net/http"

	"recarma/internal/handler/middleware"
	"recarma/internal/infra"
	"recarma/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// currentActor assembles the role-scoped caller identity from the auth
// middleware context.
func currentActor(c *gin.Context) (queries.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return queries.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return queries.Actor{}, false
	}
	return queries.Actor{ID: userID, Role: role}, true
}

// writeUnhandled reports errors no switch arm claimed. An unreachable
// data store is distinguishable from a plain server fault.
func writeUnhandled(c *gin.Context, err error) {
	if infra.IsKind(err, infra.KindDBFailure) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Could not reach the data store. Please try again later.",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
