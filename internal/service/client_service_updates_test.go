package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/models"
)

func newTestUpdates(t *testing.T, manifestURL, version string) (UpdateService, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.ClientUpdates{ManifestURL: manifestURL}
	return NewUpdateService(cfg, version, dir, logger.Nop()), dir
}

func TestVersionNewer(t *testing.T) {
	assert.True(t, versionNewer("1.2.1", "1.2.0"))
	assert.True(t, versionNewer("v2.0.0", "1.9.9"))
	assert.True(t, versionNewer("1.10.0", "1.9.0"))
	assert.False(t, versionNewer("1.2.0", "1.2.0"))
	assert.False(t, versionNewer("1.1.9", "1.2.0"))
	assert.False(t, versionNewer("", "1.0.0"))
}

func TestCheckForUpdates_NewerAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ReleaseManifest{
			Version: "1.3.0",
			Notes:   "bug fixes",
			URL:     "https://example.com/carbon-1.3.0.tar.gz",
		})
	}))
	defer srv.Close()

	updates, _ := newTestUpdates(t, srv.URL, "1.2.0")
	info, err := updates.CheckForUpdates(context.Background())

	require.NoError(t, err)
	assert.True(t, info.Available)
	require.NotNil(t, info.Version)
	assert.Equal(t, "1.3.0", *info.Version)
	require.NotNil(t, info.Body)
	assert.Equal(t, "bug fixes", *info.Body)
}

func TestCheckForUpdates_AlreadyCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ReleaseManifest{Version: "1.2.0"})
	}))
	defer srv.Close()

	updates, _ := newTestUpdates(t, srv.URL, "1.2.0")
	info, err := updates.CheckForUpdates(context.Background())

	require.NoError(t, err)
	assert.False(t, info.Available)
}

func TestCheckForUpdates_NoManifestConfigured(t *testing.T) {
	updates, _ := newTestUpdates(t, "", "1.2.0")
	info, err := updates.CheckForUpdates(context.Background())

	require.NoError(t, err)
	assert.False(t, info.Available)
}

func TestCheckForUpdates_ManifestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	updates, _ := newTestUpdates(t, srv.URL, "1.2.0")
	_, err := updates.CheckForUpdates(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrManifestFetch)
}

func TestInstallUpdate_DownloadsAsset(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manifest.json":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.ReleaseManifest{
				Version: "1.3.0",
				URL:     srv.URL + "/carbon-1.3.0.bin",
			})
		case "/carbon-1.3.0.bin":
			_, _ = w.Write([]byte("binary payload"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	updates, dir := newTestUpdates(t, srv.URL+"/manifest.json", "1.2.0")
	resp := updates.InstallUpdate(context.Background())

	require.Nil(t, resp.Error)
	assert.True(t, resp.Installed)
	require.NotNil(t, resp.Path)
	assert.Equal(t, filepath.Join(dir, "carbon-1.3.0.bin"), *resp.Path)

	raw, err := os.ReadFile(*resp.Path)
	require.NoError(t, err)
	assert.Equal(t, "binary payload", string(raw))
}

func TestInstallUpdate_AlreadyUpToDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ReleaseManifest{Version: "1.2.0"})
	}))
	defer srv.Close()

	updates, _ := newTestUpdates(t, srv.URL, "1.2.0")
	resp := updates.InstallUpdate(context.Background())

	assert.False(t, resp.Installed)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "already up to date", *resp.Error)
}
