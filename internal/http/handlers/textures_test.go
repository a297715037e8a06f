package handlers

import (
	stdzip "archive/zip"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"exolens/internal/domain"
	"exolens/internal/providers/image"
	"exolens/internal/storage"
	"exolens/internal/texture"
)

const earthPayload = `{"radius":1,"temperature":5778,"mass":1,"starType":"sun-like","planetType":"Terrestrial","distance":1}`

func TestGenerateTextureWithoutProvider(t *testing.T) {
	app := newTestApp(t, nil, false)
	rec := postJSON(t, app.GenerateTexture, earthPayload)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	res := decode[texture.Result](t, rec)
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Message != texture.MessageNotConfigured {
		t.Fatalf("message = %q", res.Message)
	}
	if !strings.HasPrefix(res.TextureURL, "/placeholder.svg?height=1024&width=1024&query=") {
		t.Fatalf("texture url = %q", res.TextureURL)
	}
	if res.ID != "" {
		t.Fatalf("id = %q, want empty without history", res.ID)
	}
	if !strings.Contains(res.Prompt, "288K") {
		t.Fatalf("prompt missing surface temperature: %q", res.Prompt)
	}
}

func TestGenerateTextureProviderFailureFallsBack(t *testing.T) {
	app := newTestApp(t, &stubGenerator{err: errors.New("quota exceeded")}, false)
	rec := postJSON(t, app.GenerateTexture, earthPayload)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if res := decode[texture.Result](t, rec); res.Message != texture.MessageFailed {
		t.Fatalf("message = %q", res.Message)
	}
}

func TestGenerateTextureValidation(t *testing.T) {
	app := newTestApp(t, nil, false)
	cases := map[string]string{
		"not json":         `{"radius":`,
		"empty":            ``,
		"missing distance": `{"radius":1,"temperature":5778,"mass":1}`,
		"zero radius":      `{"radius":0,"temperature":5778,"mass":1,"distance":1}`,
		"negative mass":    `{"radius":1,"temperature":5778,"mass":-2,"distance":1}`,
		"missing temp":     `{"radius":1,"mass":1,"distance":1}`,
		"string radius":    `{"radius":"big","temperature":5778,"mass":1,"distance":1}`,
	}
	for name, body := range cases {
		rec := postJSON(t, app.GenerateTexture, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}

func TestGenerateTextureZeroDistanceAccepted(t *testing.T) {
	app := newTestApp(t, nil, false)
	rec := postJSON(t, app.GenerateTexture, `{"radius":1,"temperature":5778,"mass":1,"distance":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if res := decode[texture.Result](t, rec); !strings.Contains(res.Prompt, "10000K") {
		t.Fatalf("prompt = %q", res.Prompt)
	}
}

func TestTextureHistoryDisabled(t *testing.T) {
	app := newTestApp(t, nil, false)

	rec := httptest.NewRecorder()
	app.ListTextures(rec, httptest.NewRequest(http.MethodGet, "/api/textures", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("list status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	app.GetTexture(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "x"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("get status = %d", rec.Code)
	}
}

func TestTextureHistoryRoundTrip(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	gen := &stubGenerator{assets: []image.Asset{{URL: "data:image/png;base64,AAAA", Format: "image/png", Data: png}}}
	app := newTestApp(t, gen, true)

	res := decode[texture.Result](t, postJSON(t, app.GenerateTexture, earthPayload))
	if res.ID == "" {
		t.Fatal("expected recorded texture id")
	}
	if res.Message != texture.MessageGenerated || res.Provider != "stub" {
		t.Fatalf("unexpected result %+v", res)
	}

	rec := httptest.NewRecorder()
	app.ListTextures(rec, httptest.NewRequest(http.MethodGet, "/api/textures?limit=5", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	list := decode[struct {
		Items []domain.Texture `json:"items"`
		Count int              `json:"count"`
	}](t, rec)
	if list.Count != 1 || list.Items[0].ID != res.ID {
		t.Fatalf("list = %+v", list)
	}
	if list.Items[0].Status != domain.TextureStatusGenerated {
		t.Fatalf("status = %q", list.Items[0].Status)
	}

	rec = httptest.NewRecorder()
	app.GetTexture(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", res.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	app.TextureImage(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", res.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("image status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	if rec.Body.String() != string(png) {
		t.Fatal("image bytes differ")
	}
}

func TestTextureNotFound(t *testing.T) {
	app := newTestApp(t, nil, true)
	rec := httptest.NewRecorder()
	app.GetTexture(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "missing"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestTextureImageForPlaceholderIsNotFound(t *testing.T) {
	app := newTestApp(t, nil, true)
	res := decode[texture.Result](t, postJSON(t, app.GenerateTexture, earthPayload))

	rec := httptest.NewRecorder()
	app.TextureImage(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", res.ID))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListTexturesRejectsBadLimit(t *testing.T) {
	app := newTestApp(t, nil, true)
	for _, q := range []string{"0", "101", "abc"} {
		rec := httptest.NewRecorder()
		app.ListTextures(rec, httptest.NewRequest(http.MethodGet, "/api/textures?limit="+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d", q, rec.Code)
		}
	}
}

func TestExportTextures(t *testing.T) {
	gen := &stubGenerator{assets: []image.Asset{{URL: "data:image/png;base64,AAAA", Format: "image/png", Data: []byte("png")}}}
	app := newTestApp(t, gen, true)
	res := decode[texture.Result](t, postJSON(t, app.GenerateTexture, earthPayload))

	rec := httptest.NewRecorder()
	app.ExportTextures(rec, httptest.NewRequest(http.MethodGet, "/api/textures/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	zr, err := stdzip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	if err != nil {
		t.Fatalf("read zip: %v", err)
	}
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	want := []string{"manifest.json", "textures/" + res.ID + ".png"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("entries = %v, want %v", names, want)
	}
}

func TestExportTexturesReadsImagesWithoutReloadingRecords(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	repo := newMemoryRepo()
	gen := &stubGenerator{assets: []image.Asset{{URL: "data:image/png;base64,AAAA", Format: "image/png", Data: []byte("png")}}}
	app := &App{Textures: texture.NewService(texture.Options{Generator: gen, Repository: repo, Store: store})}

	for i := 0; i < 3; i++ {
		if rec := postJSON(t, app.GenerateTexture, earthPayload); rec.Code != http.StatusOK {
			t.Fatalf("generate status = %d", rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	app.ExportTextures(rec, httptest.NewRequest(http.MethodGet, "/api/textures/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	zr, err := stdzip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	if err != nil {
		t.Fatalf("read zip: %v", err)
	}
	if len(zr.File) != 4 {
		t.Fatalf("entries = %d, want manifest plus 3 images", len(zr.File))
	}
	if repo.gets != 0 {
		t.Fatalf("export loaded records one by one: %d GetByID calls", repo.gets)
	}
}
