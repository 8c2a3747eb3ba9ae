package keydestroy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "custodian/pkg/domain"
)

func TestDestroyKeysPostsToKeyService(t *testing.T) {
	userID := id.NewUserID()
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/keys/"+userID.String()+"/destroy", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL)

	require.NoError(t, c.DestroyKeys(context.Background(), userID))
	// Destroying already-destroyed keys is success on the service side.
	require.NoError(t, c.DestroyKeys(context.Background(), userID))
	assert.Equal(t, int64(2), calls.Load())
}

func TestDestroyKeysSurfacesServiceErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL)
	err := c.DestroyKeys(context.Background(), id.NewUserID())

	assert.Error(t, err)
}

func TestDestroyKeysSurfacesTransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New(server.URL)
	err := c.DestroyKeys(context.Background(), id.NewUserID())

	assert.Error(t, err)
}
