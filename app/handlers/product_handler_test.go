package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rakhulsr/ecommerce-back-end/app/models"
	"github.com/Rakhulsr/ecommerce-back-end/app/repositories"
	"github.com/Rakhulsr/ecommerce-back-end/app/utils/renderer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func uintPtr(v uint) *uint { return &v }

func TestProductHandler_GetAll(t *testing.T) {
	white := "white"
	repo := &MockProductRepo{Products: []models.Product{
		{
			ID:          1,
			ProductName: "Plain T-Shirt",
			Price:       decimal.RequireFromString("14.99"),
			Stock:       14,
			CategoryID:  uintPtr(1),
			Category:    &models.Category{ID: 1, CategoryName: "Shirts"},
			Tags:        []models.Tag{{ID: 6, TagName: &white}},
		},
		{
			ID:          2,
			ProductName: "Orphan",
			Price:       decimal.RequireFromString("5"),
			Stock:       10,
			Tags:        []models.Tag{},
		},
	}}
	handler := NewProductHandler(repo, renderer.New(), zap.NewNop())
	rec := httptest.NewRecorder()

	handler.GetAll(rec, newRequest(http.MethodGet, "/api/products", "", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []repositories.Association{repositories.WithCategory, repositories.WithTags}, repo.LastWith)
	assert.JSONEq(t, `[
		{"id":1,"product_name":"Plain T-Shirt","price":14.99,"stock":14,"category_id":1,
		 "Category":{"id":1,"category_name":"Shirts"},
		 "product_tags":[{"id":6,"tag_name":"white"}]},
		{"id":2,"product_name":"Orphan","price":5,"stock":10,"category_id":null,
		 "Category":null,"product_tags":[]}
	]`, rec.Body.String())
}

func TestProductHandler_GetByID(t *testing.T) {
	testCases := []struct {
		name               string
		id                 string
		repo               *MockProductRepo
		expectedStatusCode int
		expectedMessage    string
	}{
		{
			name:               "Found",
			id:                 "1",
			repo:               &MockProductRepo{Product: &models.Product{ID: 1, ProductName: "Plain T-Shirt", Tags: []models.Tag{}}},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Product not found",
			id:                 "999999999",
			repo:               &MockProductRepo{},
			expectedStatusCode: http.StatusNotFound,
			expectedMessage:    "No product found with this id.",
		},
		{
			name:               "Repository internal error",
			id:                 "1",
			repo:               &MockProductRepo{Err: errors.New("db connection lost")},
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "db connection lost",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewProductHandler(tc.repo, renderer.New(), zap.NewNop())
			rec := httptest.NewRecorder()

			handler.GetByID(rec, newRequest(http.MethodGet, "/api/products/"+tc.id, "", tc.id))

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, tc.id, tc.repo.LastID)
			assert.Equal(t, []repositories.Association{repositories.WithCategory, repositories.WithTags}, tc.repo.LastWith)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, decodeError(t, rec).Message)
				return
			}
			var resp map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Nil(t, resp["Category"])
			assert.Equal(t, []interface{}{}, resp["product_tags"])
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		repo               *MockProductRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCall      func(t *testing.T, repo *MockProductRepo)
	}{
		{
			name:        "Success",
			requestBody: `{"product_name":"Basketball","price":200.00,"stock":3,"category_id":"5"}`,
			repo: &MockProductRepo{Product: &models.Product{
				ID: 6, ProductName: "Basketball", Price: decimal.RequireFromString("200"), Stock: 3, CategoryID: uintPtr(5),
			}},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"id":6,"product_name":"Basketball","price":200,"stock":3,"category_id":5,"Category":null}`, rec.Body.String())
			},
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				require.NotNil(t, repo.LastSaved)
				assert.Equal(t, "Basketball", *repo.LastSaved.ProductName)
				assert.Equal(t, "200.00", repo.LastSaved.Price.String())
				assert.Equal(t, "3", repo.LastSaved.Stock.String())
				assert.Equal(t, "5", repo.LastSaved.CategoryID.String())
			},
		},
		{
			name:               "Malformed JSON",
			requestBody:        `{"product_name":`,
			repo:               &MockProductRepo{},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				assert.Nil(t, repo.LastSaved)
			},
		},
		{
			name:        "Missing required fields",
			requestBody: `{}`,
			repo: &MockProductRepo{Err: &repositories.ValidationError{
				Message: "validation failed",
				Fields: map[string]string{
					"product_name": "product_name is required.",
					"price":        "price is required.",
				},
			}},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeError(t, rec)
				assert.Len(t, resp.Errors, 2)
			},
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				require.NotNil(t, repo.LastSaved)
				assert.Nil(t, repo.LastSaved.ProductName)
				assert.Nil(t, repo.LastSaved.Price)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewProductHandler(tc.repo, renderer.New(), zap.NewNop())
			rec := httptest.NewRecorder()

			handler.Create(rec, newRequest(http.MethodPost, "/api/products", tc.requestBody, ""))

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, tc.repo)
			}
		})
	}
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	t.Run("Update passes only supplied fields", func(t *testing.T) {
		repo := &MockProductRepo{Affected: 1}
		rec := httptest.NewRecorder()

		NewProductHandler(repo, renderer.New(), zap.NewNop()).
			Update(rec, newRequest(http.MethodPut, "/api/products/2", `{"stock":0}`, "2"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"affected":1}`, rec.Body.String())
		require.NotNil(t, repo.LastSaved)
		assert.Nil(t, repo.LastSaved.ProductName)
		assert.Equal(t, "0", repo.LastSaved.Stock.String())
	})

	t.Run("Update storage failure is a bad request", func(t *testing.T) {
		repo := &MockProductRepo{Err: &repositories.StorageError{Op: "update product", Err: errors.New("deadlock")}}
		rec := httptest.NewRecorder()

		NewProductHandler(repo, renderer.New(), zap.NewNop()).
			Update(rec, newRequest(http.MethodPut, "/api/products/2", `{"stock":1}`, "2"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "update product: deadlock", decodeError(t, rec).Message)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := &MockProductRepo{Affected: 1}
		rec := httptest.NewRecorder()

		NewProductHandler(repo, renderer.New(), zap.NewNop()).
			Delete(rec, newRequest(http.MethodDelete, "/api/products/3", "", "3"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"affected":1}`, rec.Body.String())
		assert.Equal(t, "3", repo.LastID)
	})
}
