package bamboohr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithHTTPClient(Credentials{Subdomain: "acme", APIKey: "key123"}, srv.Client(), srv.URL)
}

func TestClient_GetJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key123", user)
		assert.Equal(t, "x", pass)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "/employees/directory", r.URL.Path)
		assert.Equal(t, "id,firstName", r.URL.Query().Get("fields"))

		w.Write([]byte(`{"employees": [{"id": "7"}]}`))
	})

	body, err := client.GetJSON(context.Background(), "employees/directory", map[string]string{
		"fields": "id,firstName",
	})
	require.NoError(t, err)

	parsed, ok := body.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, parsed, "employees")
}

func TestClient_GetXML(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/xml", r.Header.Get("Accept"))
		w.Write([]byte(`<files><category id="1"/></files>`))
	})

	body, err := client.GetXML(context.Background(), "files/view", nil)
	require.NoError(t, err)
	assert.Equal(t, `<files><category id="1"/></files>`, body)
}

func TestClient_RequestError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStatus int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantStatus: 401},
		{name: "forbidden", status: http.StatusForbidden, wantStatus: 403},
		{name: "server_error", status: http.StatusInternalServerError, wantStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.GetJSON(context.Background(), "employees/directory", nil)
			require.Error(t, err)

			reqErr, ok := AsRequestError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, reqErr.StatusCode)
			assert.Equal(t, "employees/directory", reqErr.Endpoint)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	// Point at a server that is already closed
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewWithHTTPClient(Credentials{Subdomain: "acme", APIKey: "key123"}, http.DefaultClient, url)

	_, err := client.GetRaw(context.Background(), "files/1/download")
	require.Error(t, err)

	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, 0, reqErr.StatusCode)
}

func TestClient_AppURL(t *testing.T) {
	client := New(Credentials{Subdomain: "acme", APIKey: "key123"})
	assert.Equal(t, "https://acme.bamboohr.com/files", client.AppURL("/files"))
	assert.Equal(t, "acme", client.Company())
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Run("missing_subdomain", func(t *testing.T) {
		t.Setenv("BAMBOOHR_SUBDOMAIN", "")
		t.Setenv("BAMBOOHR_API_KEY", "key")
		_, err := CredentialsFromEnv()
		require.Error(t, err)
	})

	t.Run("missing_key", func(t *testing.T) {
		t.Setenv("BAMBOOHR_SUBDOMAIN", "acme")
		t.Setenv("BAMBOOHR_API_KEY", "")
		_, err := CredentialsFromEnv()
		require.Error(t, err)
	})

	t.Run("complete", func(t *testing.T) {
		t.Setenv("BAMBOOHR_SUBDOMAIN", "acme")
		t.Setenv("BAMBOOHR_API_KEY", "key")
		creds, err := CredentialsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Credentials{Subdomain: "acme", APIKey: "key"}, creds)
	})
}
