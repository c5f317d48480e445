package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tabsense/internal/common"
)

func TestRegister_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		json.NewEncoder(w).Encode(AuthResult{
			Token: "tok-1",
			User:  User{ID: "u1", Username: "alice"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, "tok-1", c.Token(), "session token is attached for later calls")
	assert.Equal(t, "alice", res.User.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Invalid Credentials"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid Credentials", apiErr.Error())
	assert.Empty(t, c.Token())
}

func TestListTabs_SendsTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "tok-2", r.Header.Get(common.AuthTokenHeaderName))
		json.NewEncoder(w).Encode([]Tab{{ID: "t1", Title: "Song A"}, {ID: "t2", Title: "Song B"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-2")

	tabs, err := c.ListTabs(context.Background())
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, "Song A", tabs[0].Title)
}

func TestDeleteTab_NotOwner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/tabs/t1", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Not authorized"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.DeleteTab(context.Background(), "t1")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Not authorized", apiErr.Msg)
}

func TestError_NoBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Me(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), "502")
}
