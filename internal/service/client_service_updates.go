package service

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/utils"
	"github.com/MKhiriev/carbon/models"
)

type updateService struct {
	client      *utils.HTTPClient
	manifestURL string
	version     string
	dataDir     string

	logger *logger.Logger
}

// NewUpdateService constructs the release [UpdateService]. version is the
// semantic version of the running build; dataDir is where downloaded assets
// are placed for the platform installer.
func NewUpdateService(cfg config.ClientUpdates, version string, dataDir string, log *logger.Logger) UpdateService {
	return &updateService{
		client:      utils.NewHTTPClient(),
		manifestURL: cfg.ManifestURL,
		version:     version,
		dataDir:     dataDir,
		logger:      log,
	}
}

func (u *updateService) CheckForUpdates(ctx context.Context) (models.UpdateInfo, error) {
	if u.manifestURL == "" {
		return models.UpdateInfo{}, nil
	}

	var manifest models.ReleaseManifest
	resp, err := u.client.R().
		SetContext(ctx).
		SetResult(&manifest).
		Get(u.manifestURL)
	if err != nil {
		return models.UpdateInfo{}, fmt.Errorf("%w: %s", ErrManifestFetch, err)
	}
	if resp.IsError() {
		return models.UpdateInfo{}, fmt.Errorf("%w: http %d", ErrManifestFetch, resp.StatusCode())
	}

	if !versionNewer(manifest.Version, u.version) {
		return models.UpdateInfo{}, nil
	}

	return models.UpdateInfo{
		Available: true,
		Version:   &manifest.Version,
		Body:      &manifest.Notes,
	}, nil
}

func (u *updateService) InstallUpdate(ctx context.Context) models.InstallUpdateResponse {
	if u.manifestURL == "" {
		msg := "no update manifest configured"
		return models.InstallUpdateResponse{Error: &msg}
	}

	var manifest models.ReleaseManifest
	resp, err := u.client.R().
		SetContext(ctx).
		SetResult(&manifest).
		Get(u.manifestURL)
	if err != nil || resp.IsError() {
		msg := ErrManifestFetch.Error()
		if err != nil {
			msg = fmt.Sprintf("%s: %s", ErrManifestFetch, err)
		}
		return models.InstallUpdateResponse{Error: &msg}
	}

	if !versionNewer(manifest.Version, u.version) {
		msg := "already up to date"
		return models.InstallUpdateResponse{Error: &msg}
	}
	if manifest.URL == "" {
		msg := "release manifest has no asset url"
		return models.InstallUpdateResponse{Error: &msg}
	}

	target := filepath.Join(u.dataDir, assetFileName(manifest))
	dlResp, err := u.client.R().
		SetContext(ctx).
		SetOutput(target).
		Get(manifest.URL)
	if err != nil || dlResp.IsError() {
		msg := ErrAssetDownload.Error()
		if err != nil {
			msg = fmt.Sprintf("%s: %s", ErrAssetDownload, err)
		}
		u.logger.Error().Str("func", "updateService.InstallUpdate").Str("url", manifest.URL).Msg(msg)
		return models.InstallUpdateResponse{Error: &msg}
	}

	u.logger.Info().
		Str("func", "updateService.InstallUpdate").
		Str("version", manifest.Version).
		Str("path", target).
		Msg("release asset downloaded")

	return models.InstallUpdateResponse{Installed: true, Path: &target}
}

func assetFileName(manifest models.ReleaseManifest) string {
	name := path.Base(manifest.URL)
	if name == "." || name == "/" || name == "" {
		name = fmt.Sprintf("carbon-%s", manifest.Version)
	}
	return name
}

// versionNewer reports whether candidate is strictly newer than current,
// comparing dotted numeric components. Non-numeric components compare as
// strings, which is good enough for the published manifests.
func versionNewer(candidate, current string) bool {
	candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "v")
	current = strings.TrimPrefix(strings.TrimSpace(current), "v")
	if candidate == "" || candidate == current {
		return false
	}

	cp := strings.Split(candidate, ".")
	up := strings.Split(current, ".")
	for i := 0; i < len(cp) || i < len(up); i++ {
		c, u := part(cp, i), part(up, i)
		ci, cerr := strconv.Atoi(c)
		ui, uerr := strconv.Atoi(u)
		if cerr == nil && uerr == nil {
			if ci != ui {
				return ci > ui
			}
			continue
		}
		if c != u {
			return c > u
		}
	}
	return false
}

func part(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return "0"
}
