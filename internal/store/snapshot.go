package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/models"
)

const snapshotFileName = "boards.json"

type snapshotFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewSnapshotStorage constructs the file-backed [SnapshotStorage] rooted at
// dataDir. The workspace document lives in a single "boards.json" file with
// stable wire field names.
func NewSnapshotStorage(dataDir string, logger *logger.Logger) SnapshotStorage {
	return &snapshotFileStorage{
		path:   filepath.Join(dataDir, snapshotFileName),
		logger: logger,
	}
}

// Load implements [SnapshotStorage]. The read path never surfaces a hard
// failure: the UI shell must always have something to render, so a missing
// file seeds and persists the default workspace, and read or parse failures
// fall back to the default workspace without touching the file on disk.
func (s *snapshotFileStorage) Load(ctx context.Context) models.AppData {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		defaults := models.DefaultAppData()
		// Best effort: a failed first write is retried on the next save.
		if saveErr := s.Save(ctx, defaults); saveErr != nil {
			s.logger.Err(saveErr).Str("path", s.path).Msg("failed to persist seeded workspace")
		}
		return defaults
	}
	if err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("failed to read workspace document, using defaults")
		return models.DefaultAppData()
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("failed to parse workspace document, using defaults")
		return models.DefaultAppData()
	}

	applyDocumentDefaults(&data)
	return data
}

// Save implements [SnapshotStorage]. The document is written to a temporary
// file in the same directory and renamed over the target, so a crashed write
// never leaves a truncated document behind.
func (s *snapshotFileStorage) Save(ctx context.Context, data models.AppData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSnapshotSerialize, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), snapshotFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSnapshotWrite, err)
	}

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s", ErrSnapshotWrite, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s", ErrSnapshotWrite, err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s", ErrSnapshotWrite, err)
	}

	return nil
}

// Path implements [SnapshotStorage].
func (s *snapshotFileStorage) Path() string {
	return s.path
}

// applyDocumentDefaults fills optional fields that older documents may lack,
// mirroring the default-filled deserialization of the wire format.
func applyDocumentDefaults(data *models.AppData) {
	if data.Theme == "" {
		data.Theme = models.DefaultTheme
	}
	if data.ActiveView == "" {
		data.ActiveView = models.DefaultView
	}
	if data.Collections == nil {
		data.Collections = models.DefaultCollections()
	}
	if data.CustomTags == nil {
		data.CustomTags = map[string]models.CustomTag{}
	}
	if data.Bookmarks == nil {
		data.Bookmarks = []models.Bookmark{}
	}
	if data.Notes == nil {
		data.Notes = []models.Note{}
	}
}
