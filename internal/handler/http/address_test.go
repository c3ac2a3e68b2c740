package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
)

func TestCreateAddress_ContactIDFromPath(t *testing.T) {
	addresses := &mockAddressService{
		createFn: func(_ context.Context, _ models.User, req models.CreateAddressRequest) (models.AddressResponse, error) {
			assert.Equal(t, int64(42), req.ContactID)
			return models.AddressResponse{ID: 3, Country: req.Country, PostalCode: req.PostalCode}, nil
		},
	}
	router := newTestHandler(t, authedUsers(), nil, addresses).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/contacts/42/addresses", `{"country":"Indonesia","postal_code":"40111"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.String())
	var got models.AddressResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &got))
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "Indonesia", got.Country)
}

func TestGetAddress(t *testing.T) {
	addresses := &mockAddressService{
		getFn: func(_ context.Context, _ models.User, contactID, addressID int64) (models.AddressResponse, error) {
			assert.Equal(t, int64(42), contactID)
			assert.Equal(t, int64(3), addressID)
			return models.AddressResponse{ID: addressID, Country: "Indonesia", PostalCode: "40111"}, nil
		},
	}
	router := newTestHandler(t, authedUsers(), nil, addresses).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/contacts/42/addresses/3", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Indonesia")
}

func TestGetAddress_NotFound(t *testing.T) {
	addresses := &mockAddressService{
		getFn: func(_ context.Context, _ models.User, _, _ int64) (models.AddressResponse, error) {
			return models.AddressResponse{}, store.ErrAddressNotFound
		},
	}
	router := newTestHandler(t, authedUsers(), nil, addresses).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/contacts/42/addresses/3", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), store.ErrAddressNotFound.Error())
}

func TestGetAddress_ParentContactMissing(t *testing.T) {
	addresses := &mockAddressService{
		getFn: func(_ context.Context, _ models.User, _, _ int64) (models.AddressResponse, error) {
			return models.AddressResponse{}, store.ErrContactNotFound
		},
	}
	router := newTestHandler(t, authedUsers(), nil, addresses).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/contacts/42/addresses/3", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), store.ErrContactNotFound.Error())
}

func TestUpdateAddress_IDsFromPath(t *testing.T) {
	addresses := &mockAddressService{
		updateFn: func(_ context.Context, _ models.User, req models.UpdateAddressRequest) (models.AddressResponse, error) {
			assert.Equal(t, int64(3), req.ID)
			assert.Equal(t, int64(42), req.ContactID)
			return models.AddressResponse{ID: req.ID, Country: req.Country, PostalCode: req.PostalCode}, nil
		},
	}
	router := newTestHandler(t, authedUsers(), nil, addresses).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/contacts/42/addresses/3", `{"country":"Malaysia","postal_code":"50000"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Malaysia")
}

func TestDeleteAddress(t *testing.T) {
	addresses := &mockAddressService{
		removeFn: func(_ context.Context, _ models.User, contactID, addressID int64) (bool, error) {
			assert.Equal(t, int64(42), contactID)
			assert.Equal(t, int64(3), addressID)
			return true, nil
		},
	}
	router := newTestHandler(t, authedUsers(), nil, addresses).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/contacts/42/addresses/3", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":true}`, rec.Body.String())
}

func TestListAddresses(t *testing.T) {
	addresses := &mockAddressService{
		listFn: func(_ context.Context, _ models.User, contactID int64) ([]models.AddressResponse, error) {
			assert.Equal(t, int64(42), contactID)
			return []models.AddressResponse{
				{ID: 1, Country: "Indonesia", PostalCode: "40111"},
				{ID: 2, Country: "Malaysia", PostalCode: "50000"},
			}, nil
		},
	}
	router := newTestHandler(t, authedUsers(), nil, addresses).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/contacts/42/addresses", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.String())
	var got []models.AddressResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestAddressRoutes_BadIDs(t *testing.T) {
	router := newTestHandler(t, authedUsers(), nil, &mockAddressService{}).Init()

	targets := []string{
		"/api/contacts/abc/addresses/3",
		"/api/contacts/42/addresses/xyz",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodGet, target, ""))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
