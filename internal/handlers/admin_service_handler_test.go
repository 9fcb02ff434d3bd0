package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/domain/role"
)

// Requests rejected before reaching a use case need none wired.
func adminServiceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminServiceHandler(nil, nil, nil, nil, nil, nil, zerolog.Nop())
	staff := &identity.AuthenticatedUser{ID: "ad-1", Email: "staff@petshop.it", Role: role.Admin, IsActive: true}

	as := func(fn func(*gin.Context, *identity.AuthenticatedUser)) gin.HandlerFunc {
		return func(c *gin.Context) { fn(c, staff) }
	}

	r := gin.New()
	r.POST("/services", as(h.Create))
	r.PUT("/services/:id", as(h.Update))
	r.DELETE("/services/:id", as(h.Delete))
	return r
}

func TestAdminServices_RejectsBadInput(t *testing.T) {
	r := adminServiceRouter()

	cases := []struct {
		method string
		path   string
		body   string
		code   string
	}{
		{http.MethodPost, "/services", `{"name":"Bagno","description":"x","price":0,"duration":30}`, "VALIDATION_ERROR"},
		{http.MethodPost, "/services", `{"name":"Bagno","description":"x","price":10,"duration":-1}`, "VALIDATION_ERROR"},
		{http.MethodPost, "/services", `{"description":"x","price":10,"duration":30}`, "VALIDATION_ERROR"},
		{http.MethodPut, "/services/abc", `{"price":10}`, "INVALID_ID"},
		{http.MethodDelete, "/services/0", ``, "INVALID_ID"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body envelope
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusBadRequest || body.Code != tc.code {
			t.Fatalf("%s %s %s: got %d %+v", tc.method, tc.path, tc.body, w.Code, body)
		}
	}
}
