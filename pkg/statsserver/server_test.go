package statsserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/norasector/xclink/pkg/xclink"
)

type fixedProvider []xclink.Stats

func (f fixedProvider) Stats() []xclink.Stats {
	return f
}

func TestServer(t *testing.T) {
	provider := fixedProvider{
		{Name: "vi", State: xclink.StateRunning, BytesReceived: 120, CorruptedMessages: 1},
		{Name: "trace", State: xclink.StateStopped, BytesReceived: 7},
	}
	srv := httptest.NewServer(NewServer(0, provider).Handler())
	defer srv.Close()

	client := srv.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	t.Run("root redirects", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, "/stats", resp.Header.Get("Location"))
	})

	t.Run("all sources", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/stats")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got, 2)
		require.Equal(t, "vi", got[0]["name"])
		require.Equal(t, "running", got[0]["state"])
		require.Equal(t, float64(120), got[0]["bytes_received"])
		require.Equal(t, float64(1), got[0]["corrupted_messages"])
		require.Equal(t, "stopped", got[1]["state"])
	})

	t.Run("one source", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/stats/trace")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Equal(t, "trace", got["name"])
		require.Equal(t, float64(7), got["bytes_received"])
	})

	t.Run("unknown source", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/stats/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
