package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/handlers"
)

func TestProtectedRoutePathsMatchWithoutRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.RedirectTrailingSlash = false
	setupRoutes(r,
		&handlers.AssessmentHandler{},
		&handlers.IntentHandler{},
		&handlers.QuestionHandler{},
		&handlers.ProfileHandler{},
		&handlers.ResultHandler{},
		nil,
	)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/protected/assessment/profile"},
		{http.MethodPost, "/protected/assessment/result"},
		{http.MethodPost, "/protected/assessment/question/intent-based"},
		{http.MethodPost, "/protected/assessment/question/bulk"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		r.ServeHTTP(w, req)
		// Requests without X-User-ID stop at the auth middleware, so the
		// exact path must answer 401 itself rather than redirect or 404.
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s returned %d, want %d", tc.method, tc.path, w.Code, http.StatusUnauthorized)
		}
	}
}
