package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linen-tracker/core/fetch/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("E1,x,Gown\n"))
	}))
	defer srv.Close()

	src := NewHTTPSource(Config{TimeoutSeconds: 5})
	body, err := src.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "E1,x,Gown\n", body)
}

func TestHTTPSource_FetchErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		src := NewHTTPSource(Config{TimeoutSeconds: 5})
		_, err := src.Fetch(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "unexpected status 404")
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		src := NewHTTPSource(Config{TimeoutSeconds: 1})
		_, err := src.Fetch(context.Background(), "http://127.0.0.1:1")
		assert.Error(t, err)
	})
}

func TestBucketSource_Fetch(t *testing.T) {
	mockClient := new(mocks.ObjectClient)
	mockClient.On("GetObject", mock.Anything, "exports", "guemes/ont_cab_nro1.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("c,u,E1\n")), nil)

	src := NewBucketSourceWithClient(mockClient, "exports", 5*time.Second)
	body, err := src.Fetch(context.Background(), "guemes/ont_cab_nro1.csv")
	require.NoError(t, err)
	assert.Equal(t, "c,u,E1\n", body)
	mockClient.AssertExpectations(t)
}

func TestRouter_Dispatch(t *testing.T) {
	t.Run("object key without a configured bucket", func(t *testing.T) {
		r, err := NewRouter(Config{TimeoutSeconds: 5})
		require.NoError(t, err)

		_, err = r.Fetch(context.Background(), "guemes/ont_cab_nro1.csv")
		assert.ErrorContains(t, err, "no bucket configured")
	})

	t.Run("http reference goes over HTTP", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		r, err := NewRouter(Config{TimeoutSeconds: 5})
		require.NoError(t, err)

		body, err := r.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "ok", body)
	})
}
