package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
)

// The cart line can be created or updated through either verb, so both must
// reach the upsert handler.
func TestCartRoutesRegisterAllVerbs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupUserRoutes(r, nil)

	want := map[string]bool{
		"GET /user/cart/":               false,
		"POST /user/cart/":              false,
		"PUT /user/cart/":               false,
		"DELETE /user/cart/":            false,
		"DELETE /user/cart/:product_id": false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("route not registered: %s", key)
		}
	}
}
