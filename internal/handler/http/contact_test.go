package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
)

// authedUsers is a UserService mock that accepts the "live-token" header
// value and resolves it to a fixed account.
func authedUsers() *mockUserService {
	return &mockUserService{
		findByTokenFn: func(_ context.Context, token string) (models.User, error) {
			if token != "live-token" {
				return models.User{}, store.ErrNoUserWasFound
			}
			return models.User{Username: "jamal", Name: "Jamal"}, nil
		},
	}
}

func authedRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "live-token")
	return req
}

func TestCreateContact(t *testing.T) {
	contacts := &mockContactService{
		createFn: func(_ context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error) {
			assert.Equal(t, "jamal", user.Username)
			return models.ContactResponse{ID: 7, FirstName: req.FirstName, LastName: req.LastName}, nil
		},
	}
	router := newTestHandler(t, authedUsers(), contacts, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/contacts", `{"first_name":"Eko","last_name":"Khannedy"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body.String())
	var got models.ContactResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Eko", got.FirstName)
}

func TestGetContact_NotFound(t *testing.T) {
	contacts := &mockContactService{
		getFn: func(_ context.Context, _ models.User, _ int64) (models.ContactResponse, error) {
			return models.ContactResponse{}, store.ErrContactNotFound
		},
	}
	router := newTestHandler(t, authedUsers(), contacts, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/contacts/42", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), store.ErrContactNotFound.Error())
}

func TestGetContact_BadID(t *testing.T) {
	router := newTestHandler(t, authedUsers(), &mockContactService{}, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/contacts/not-a-number", ""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateContact_IDFromPath(t *testing.T) {
	contacts := &mockContactService{
		updateFn: func(_ context.Context, _ models.User, req models.UpdateContactRequest) (models.ContactResponse, error) {
			// the id comes from the path, never from the body
			assert.Equal(t, int64(42), req.ID)
			return models.ContactResponse{ID: req.ID, FirstName: req.FirstName}, nil
		},
	}
	router := newTestHandler(t, authedUsers(), contacts, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/contacts/42", `{"id":999,"first_name":"Eko"}`))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteContact(t *testing.T) {
	contacts := &mockContactService{
		removeFn: func(_ context.Context, _ models.User, contactID int64) (bool, error) {
			assert.Equal(t, int64(42), contactID)
			return true, nil
		},
	}
	router := newTestHandler(t, authedUsers(), contacts, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/contacts/42", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":true}`, rec.Body.String())
}

func TestSearchContacts_QueryParams(t *testing.T) {
	var captured models.SearchContactRequest
	contacts := &mockContactService{
		searchFn: func(_ context.Context, _ models.User, req models.SearchContactRequest) (models.ContactPageResponse, error) {
			captured = req
			return models.ContactPageResponse{
				Data:   []models.ContactResponse{},
				Paging: models.NewPaging(req.Page, req.Size, 0),
			}, nil
		},
	}
	router := newTestHandler(t, authedUsers(), contacts, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/contacts?name=eko&email=test&phone=62&page=3&size=5", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SearchContactRequest{Name: "eko", Email: "test", Phone: "62", Page: 3, Size: 5}, captured)
}

func TestSearchContacts_Defaults(t *testing.T) {
	contacts := &mockContactService{
		searchFn: func(_ context.Context, _ models.User, req models.SearchContactRequest) (models.ContactPageResponse, error) {
			assert.Equal(t, defaultSearchPage, req.Page)
			assert.Equal(t, defaultSearchSize, req.Size)
			return models.ContactPageResponse{
				Data: []models.ContactResponse{
					{ID: 1, FirstName: "Eko"},
				},
				Paging: models.NewPaging(req.Page, req.Size, 1),
			}, nil
		},
	}
	router := newTestHandler(t, authedUsers(), contacts, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/contacts", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	// top-level shape carries data and paging side by side
	var page models.ContactPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, models.Paging{CurrentPage: 1, Size: 10, TotalPage: 1}, page.Paging)
}

func TestContactRoutes_RequireAuth(t *testing.T) {
	router := newTestHandler(t, &mockUserService{}, &mockContactService{}, nil).Init()

	targets := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/contacts"},
		{http.MethodGet, "/api/contacts"},
		{http.MethodGet, "/api/contacts/1"},
		{http.MethodPut, "/api/contacts/1"},
		{http.MethodDelete, "/api/contacts/1"},
		{http.MethodGet, "/api/contacts/1/addresses"},
		{http.MethodPost, "/api/contacts/1/addresses"},
		{http.MethodGet, "/api/contacts/1/addresses/2"},
	}

	for _, tt := range targets {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
