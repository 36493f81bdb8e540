package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peluqueria/internal/models"
)

func TestCreateProductEndpoint(t *testing.T) {
	router, testDB, cfg := setupTestServer(t)
	adminToken := tokenFor(t, cfg, 1, models.RoleAdmin)
	clientToken := tokenFor(t, cfg, 2, models.RoleClient)

	category := models.Category{Name: "Hair care"}
	require.NoError(t, testDB.Create(&category).Error)

	body := gin.H{
		"name":        "Argan Oil",
		"price":       "18.50",
		"description": "100ml bottle",
		"stock":       12,
		"categoryId":  category.ID,
	}

	// Catalog writes are admin-only.
	recorder := doRequest(router, http.MethodPost, "/api/products", clientToken, body)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = doRequest(router, http.MethodPost, "/api/products", adminToken, body)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	var product models.Product
	decodeBody(t, recorder, &product)
	assert.Equal(t, "Argan Oil", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("18.50")))
	require.NotNil(t, product.Description)
	assert.Equal(t, "100ml bottle", *product.Description)
	assert.Equal(t, category.ID, product.CategoryID)

	// Unknown category.
	recorder = doRequest(router, http.MethodPost, "/api/products", adminToken, gin.H{
		"name": "Ghost", "price": "1.0", "categoryId": 9999,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// Negative price.
	recorder = doRequest(router, http.MethodPost, "/api/products", adminToken, gin.H{
		"name": "Freebie", "price": "-1.0", "categoryId": category.ID,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestProductReadAndUpdateEndpoints(t *testing.T) {
	router, testDB, cfg := setupTestServer(t)
	adminToken := tokenFor(t, cfg, 1, models.RoleAdmin)
	clientToken := tokenFor(t, cfg, 2, models.RoleClient)

	product := seedProduct(t, testDB, "Shampoo", "5.0")

	// Any authenticated user can browse the catalog.
	recorder := doRequest(router, http.MethodGet, "/api/products", clientToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var products []models.Product
	decodeBody(t, recorder, &products)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)

	recorder = doRequest(router, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), clientToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, http.MethodGet, "/api/products/9999", clientToken, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// Partial update.
	recorder = doRequest(router, http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID), adminToken, gin.H{
		"price": "6.25",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var updated models.Product
	decodeBody(t, recorder, &updated)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("6.25")))
	assert.Equal(t, "Shampoo", updated.Name)

	recorder = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), clientToken, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
