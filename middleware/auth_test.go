package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"business-service/models"

	"github.com/gin-gonic/gin"
)

var testSecret = []byte("test-secret")

func adminRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(AdminOnly(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/admin", handlers...)
	return r
}

func doGet(r http.Handler, token string) int {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAdminOnlyDisabledWithoutSecret(t *testing.T) {
	if code := doGet(adminRouter(nil), ""); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
}

func TestAdminOnlyMissingToken(t *testing.T) {
	if code := doGet(adminRouter(testSecret), ""); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestAdminOnlyBadToken(t *testing.T) {
	token, _ := GenerateToken([]byte("other"), 1, models.RoleAdmin, time.Hour)
	if code := doGet(adminRouter(testSecret), token); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestAdminOnlyExpiredToken(t *testing.T) {
	token, _ := GenerateToken(testSecret, 1, models.RoleAdmin, -time.Minute)
	if code := doGet(adminRouter(testSecret), token); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestAdminOnlyWrongRole(t *testing.T) {
	token, _ := GenerateToken(testSecret, 1, models.RoleRestaurant, time.Hour)
	if code := doGet(adminRouter(testSecret), token); code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", code)
	}
}

func TestAdminOnlyAdmin(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, models.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if code := doGet(adminRouter(testSecret), token); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
}
