package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// CORS allows the web front at origin to call the API. Preflight requests
// stop here with 204.
func CORS(origin string) gin.HandlerFunc {
	handler := cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:     []string{"Accept", "Content-Type"},
		AllowCredentials:   true,
		MaxAge:             300,
		OptionsPassthrough: true,
	})

	return func(c *gin.Context) {
		handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			if isPreflight(r) {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
