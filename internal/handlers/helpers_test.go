package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"peluqueria/internal/auth"
	"peluqueria/internal/config"
	"peluqueria/internal/db"
	"peluqueria/internal/models"
	"peluqueria/internal/server"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Secret:   "test-secret-key",
			TokenTTL: time.Hour,
		},
	}
}

// setupTestServer builds the full router over a uniquely named in-memory
// sqlite database, migrated and seeded the same way production is.
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(testDB))

	cfg := testConfig()
	return server.New(testDB, cfg), testDB, cfg
}

func tokenFor(t *testing.T, cfg *config.Config, userID uint, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(cfg.Auth.Secret, cfg.Auth.TokenTTL, userID, role)
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func seedRole(t *testing.T, testDB *gorm.DB, name string) models.Role {
	t.Helper()
	role := models.Role{Name: name}
	require.NoError(t, testDB.Where("name = ?", name).FirstOrCreate(&role).Error)
	return role
}

func seedUser(t *testing.T, testDB *gorm.DB, email, roleName string) models.User {
	t.Helper()
	role := seedRole(t, testDB, roleName)
	user := models.User{
		RoleID:     role.ID,
		FirstName:  "Ana",
		LastName:   "Garcia",
		NationalID: email,
		Email:      email,
		Password:   "irrelevant",
	}
	require.NoError(t, testDB.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, testDB *gorm.DB, name, price string) models.Product {
	t.Helper()
	category := models.Category{Name: "Styling"}
	require.NoError(t, testDB.Where("name = ?", category.Name).FirstOrCreate(&category).Error)
	product := models.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Stock:      5,
		CategoryID: category.ID,
	}
	require.NoError(t, testDB.Create(&product).Error)
	return product
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}
