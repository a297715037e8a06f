package imagen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"exolens/internal/providers/image"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(Options{
		BaseURL:     srv.URL,
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token", TokenType: "Bearer"}),
		HTTPClient:  srv.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestGenerateCallsPredictEndpoint(t *testing.T) {
	png := []byte("\x89PNG fake")
	var gotPath, gotAuth string
	var gotBody predictRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]string{{"bytesBase64Encoded": base64.StdEncoding.EncodeToString(png), "mimeType": "image/png"}},
		})
	})

	assets, err := client.Generate(context.Background(), image.GenerateRequest{Prompt: "ice giant", Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, "/v1/projects/exolens/locations/us-central1/publishers/google/models/imagen-3.0-generate-002:predict", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	require.Len(t, gotBody.Instances, 1)
	assert.Equal(t, "ice giant", gotBody.Instances[0].Prompt)
	assert.Equal(t, 1, gotBody.Parameters.SampleCount)
	assert.Equal(t, "1:1", gotBody.Parameters.AspectRatio)

	require.Len(t, assets, 1)
	assert.Equal(t, png, assets[0].Data)
	assert.True(t, strings.HasPrefix(assets[0].URL, "data:image/png;base64,"))
	assert.Equal(t, Name, client.Name())
}

func TestGenerateSurfacesAPIErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"permission denied","status":"PERMISSION_DENIED"}}`))
	})

	_, err := client.Generate(context.Background(), image.GenerateRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Equal(t, "imagen status 403: permission denied", err.Error())
}

func TestGenerateRejectsEmptyPredictions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions":[{}]}`))
	})

	_, err := client.Generate(context.Background(), image.GenerateRequest{Prompt: "x"})
	assert.Error(t, err)
}

func TestNewClientRequiresTokenSource(t *testing.T) {
	_, err := NewClient(Options{})
	assert.Error(t, err)
}
