package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peluqueria/internal/models"
)

func TestUserAdminEndpoints(t *testing.T) {
	router, testDB, cfg := setupTestServer(t)
	adminToken := tokenFor(t, cfg, 1, models.RoleAdmin)
	clientToken := tokenFor(t, cfg, 2, models.RoleClient)

	user := seedUser(t, testDB, "cliente@example.com", models.RoleClient)

	// User administration is admin-only.
	recorder := doRequest(router, http.MethodGet, "/api/users", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = doRequest(router, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var users []models.User
	decodeBody(t, recorder, &users)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleClient, users[0].Role.Name)
	assert.NotContains(t, recorder.Body.String(), "password")

	// Promote the user to admin.
	adminRole := seedRole(t, testDB, models.RoleAdmin)
	recorder = doRequest(router, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID), adminToken, gin.H{
		"roleId":  adminRole.ID,
		"address": "Calle Nueva 4",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var updated models.User
	decodeBody(t, recorder, &updated)
	assert.Equal(t, models.RoleAdmin, updated.Role.Name)
	assert.Equal(t, "Calle Nueva 4", updated.Address)

	recorder = doRequest(router, http.MethodGet, "/api/roles", adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var roles []models.Role
	decodeBody(t, recorder, &roles)
	assert.Len(t, roles, 2)

	recorder = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCompanyEndpoints(t *testing.T) {
	router, _, cfg := setupTestServer(t)
	adminToken := tokenFor(t, cfg, 1, models.RoleAdmin)
	clientToken := tokenFor(t, cfg, 2, models.RoleClient)

	// Not configured yet.
	recorder := doRequest(router, http.MethodGet, "/api/company", clientToken, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(router, http.MethodPut, "/api/company", adminToken, gin.H{
		"name":    "Peluqueria Estrella",
		"address": "Av. Central 12",
		"phone":   "0991234567",
		"email":   "contacto@estrella.ec",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = doRequest(router, http.MethodGet, "/api/company", clientToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var company models.Company
	decodeBody(t, recorder, &company)
	assert.Equal(t, "Peluqueria Estrella", company.Name)

	// Updating again keeps a single profile row.
	recorder = doRequest(router, http.MethodPut, "/api/company", adminToken, gin.H{
		"name": "Peluqueria Estrella Spa",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var renamed models.Company
	decodeBody(t, recorder, &renamed)
	assert.Equal(t, company.ID, renamed.ID)
	assert.Equal(t, "Peluqueria Estrella Spa", renamed.Name)

	recorder = doRequest(router, http.MethodPut, "/api/company", clientToken, gin.H{"name": "Nope"})
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
