package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/user-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"user-1","full_name":"Maria Flores","email":"maria@example.com"}}`))
	}))
	defer srv.Close()

	user := New(srv.URL).GetUserByID(context.Background(), "user-1")
	require.NotNil(t, user)
	assert.Equal(t, "Maria Flores", user.FullName)
}

func TestGetOrganizationByIDResolvesThroughAdmins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/organizations/org-1/admins", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"a1","full_name":"No Org"},
			{"id":"a2","full_name":"With Org","organization":{"organization_id":"org-1","organization_name":"JASS Central"}}
		]}`))
	}))
	defer srv.Close()

	org := New(srv.URL).GetOrganizationByID(context.Background(), "org-1")
	require.NotNil(t, org)
	assert.Equal(t, "JASS Central", org.OrganizationName)
}

func TestEnrichmentDegradesToNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	assert.Nil(t, c.GetUserByID(context.Background(), "user-1"))
	assert.Nil(t, c.GetOrganizationByID(context.Background(), "org-1"))
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	assert.Nil(t, c.GetUserByID(context.Background(), "user-1"))
	assert.Nil(t, c.GetOrganizationByID(context.Background(), "org-1"))
}
