package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jb131997/gymdesk/internal/service"
	"github.com/jb131997/gymdesk/internal/stripe"
	"github.com/jb131997/gymdesk/internal/validators"
	"github.com/jb131997/gymdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductHandler_Success(t *testing.T) {
	svcs := testServices()
	svcs.ProductService = &mockProductService{
		createProductFn: func(_ context.Context, gymID string, input models.ProductInput) (models.Product, error) {
			assert.Equal(t, "gym-1", gymID)
			assert.Equal(t, "Day Pass", input.Name)
			return models.Product{
				ID:             "p1",
				GymID:          gymID,
				Name:           input.Name,
				Price:          input.Price,
				PaymentLinkURL: "https://buy.example/x",
				Active:         true,
			}, nil
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodPost, "/api/products/",
		`{"name":"Day Pass","price":15,"type":"product","currency":"usd"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CreateProductResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "p1", resp.Product.ID)
	assert.Equal(t, "https://buy.example/x", resp.Product.PaymentLinkURL)
}

func TestCreateProductHandler_ValidationError(t *testing.T) {
	svcs := testServices()
	svcs.ProductService = &mockProductService{
		createProductFn: func(_ context.Context, _ string, _ models.ProductInput) (models.Product, error) {
			return models.Product{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidPrice)
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodPost, "/api/products/",
		`{"name":"Free Pass","price":0,"type":"product","currency":"usd"}`, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp.Error, validators.ErrInvalidPrice.Error())
}

func TestCreateProductHandler_NoConnectedAccount(t *testing.T) {
	svcs := testServices()
	svcs.ProductService = &mockProductService{
		createProductFn: func(_ context.Context, _ string, _ models.ProductInput) (models.Product, error) {
			return models.Product{}, stripe.ErrAccountNotFound
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodPost, "/api/products/",
		`{"name":"Day Pass","price":15,"type":"product","currency":"usd"}`, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, stripe.ErrAccountNotFound.Error(), resp.Error)
}

func TestListProductsHandler(t *testing.T) {
	svcs := testServices()
	svcs.ProductService = &mockProductService{
		listProductsFn: func(_ context.Context, gymID string) ([]models.Product, error) {
			return []models.Product{{ID: "p1"}, {ID: "p2"}}, nil
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/products/", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeBody(t, rec, &products)
	assert.Len(t, products, 2)
}

func TestUpdateProductHandler_TogglesActive(t *testing.T) {
	svcs := testServices()
	svcs.ProductService = &mockProductService{
		setActiveFn: func(_ context.Context, id, gymID string, active bool) error {
			assert.Equal(t, "p1", id)
			assert.Equal(t, "gym-1", gymID)
			assert.False(t, active)
			return nil
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodPatch, "/api/products/p1", `{"active":false}`, true)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateProductHandler_MissingActiveField(t *testing.T) {
	h := newTestHandler(t, testServices())

	rec := doRequest(t, h, http.MethodPatch, "/api/products/p1", `{}`, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
