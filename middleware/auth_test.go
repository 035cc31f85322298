package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"vehicle-rental-api/models"
)

func newAuthTestRouter(m *AuthManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", m.AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"role":    GetRole(c),
		})
	})
	r.GET("/admin", m.AuthRequired(), RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredRejectsMissingOrBadToken(t *testing.T) {
	m := NewAuthManager([]byte("test-secret"))
	r := newAuthTestRouter(m)

	if w := get(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if w := get(r, "/me", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}

	// token signed with a different secret
	other := NewAuthManager([]byte("other-secret"))
	token, err := other.GenerateToken(&models.User{ID: 1, Email: "a@b.c", Role: models.RoleCustomer})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if w := get(r, "/me", token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong-secret token, got %d", w.Code)
	}
}

func TestAuthRequiredInjectsClaims(t *testing.T) {
	m := NewAuthManager([]byte("test-secret"))
	r := newAuthTestRouter(m)

	token, err := m.GenerateToken(&models.User{ID: 7, Email: "c@d.e", Role: models.RoleCustomer})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	w := get(r, "/me", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestRoleRequiredEnforcesAllowList(t *testing.T) {
	m := NewAuthManager([]byte("test-secret"))
	r := newAuthTestRouter(m)

	customerToken, err := m.GenerateToken(&models.User{ID: 1, Email: "c@d.e", Role: models.RoleCustomer})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if w := get(r, "/admin", customerToken); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer on admin route, got %d", w.Code)
	}

	adminToken, err := m.GenerateToken(&models.User{ID: 2, Email: "a@d.e", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if w := get(r, "/admin", adminToken); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}
