package middleware

import (
	"github.com/gin-gonic/gin"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
)

// NoStore marks every response as uncacheable. Game state and feedback are
// per-user and must never be served stale.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		cachecontrol.New(cachecontrol.Config{
			NoStore:        true,
			NoCache:        true,
			MustRevalidate: true,
		})(c)
	}
}
