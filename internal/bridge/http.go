package bridge

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/utils"
	"github.com/MKhiriev/carbon/models"
)

// Wire types of the replica protocol. The replica stores the serialized
// projection opaque, keyed by a single well-known record.
type replicaRecord struct {
	Payload      string `json:"payload"`
	LastModified string `json:"lastModified"`
}

type fullSyncResponse struct {
	Payload           string `json:"payload"`
	LastModified      string `json:"lastModified"`
	ShouldUpdateLocal bool   `json:"shouldUpdateLocal"`
}

type accountResponse struct {
	Available bool    `json:"available"`
	Status    int32   `json:"status"`
	Error     *string `json:"error,omitempty"`
}

type statusResponse struct {
	Status int32   `json:"status"`
	Error  *string `json:"error,omitempty"`
}

type httpBridge struct {
	client   *utils.HTTPClient
	deviceID string

	logger *logger.Logger
}

// NewHTTPBridge constructs an HTTP/REST implementation of [Bridge]. It
// normalises and validates the base URL from cfg.Endpoint, configures the
// underlying HTTP client with the resolved base URL and request timeout, and
// assigns a fresh device identifier sent with every request.
//
// Returns an error if cfg.Endpoint is empty or cannot be parsed as a valid
// URL.
func NewHTTPBridge(cfg config.ClientBridge, logger *logger.Logger) (Bridge, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid bridge endpoint: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpBridge{
		client:   client,
		deviceID: utils.NewUUIDGenerator().Generate(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Init implements [Bridge]. It POSTs to POST /api/init so the replica can
// prepare whatever storage it needs. The call is idempotent on the replica
// side; a repeated Init answers 200 as well.
func (h *httpBridge) Init(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/api/init")
	if err != nil {
		return fmt.Errorf("init request: %w", err)
	}
	return mapHTTPError(resp)
}

// CheckAccount implements [Bridge]. It reports true only when the replica
// answers the account endpoint positively; any transport failure reads as
// "no usable account right now".
func (h *httpBridge) CheckAccount(ctx context.Context) bool {
	return h.AccountStatus(ctx).Available
}

// AccountStatus implements [Bridge]. It GETs /api/account and maps the wire
// code to [models.AccountAvailability]. Transport failures are reported as
// could-not-determine with the error message attached.
func (h *httpBridge) AccountStatus(ctx context.Context) models.AccountStatusResult {
	var account accountResponse

	resp, err := h.request(ctx).
		SetResult(&account).
		Get("/api/account")
	if err != nil {
		msg := err.Error()
		return models.AccountStatusResult{
			Status: models.AccountCouldNotDetermine,
			Error:  &msg,
		}
	}
	if err = mapHTTPError(resp); err != nil {
		msg := err.Error()
		return models.AccountStatusResult{
			Status: models.AccountCouldNotDetermine,
			Error:  &msg,
		}
	}

	return models.AccountStatusResult{
		Available: account.Available,
		Status:    models.AccountAvailabilityFromCode(account.Status),
		Error:     account.Error,
	}
}

// Push implements [Bridge]. It PUTs the serialized projection to
// PUT /api/replica with the local watermark in If-Match. The replica answers
// 409 when it holds newer data, which maps to [ErrConflict].
func (h *httpBridge) Push(ctx context.Context, payload string, lastModified string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("If-Match", lastModified).
		SetBody(replicaRecord{Payload: payload, LastModified: lastModified}).
		Put("/api/replica")
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	return mapHTTPError(resp)
}

// Pull implements [Bridge]. It GETs /api/replica unconditionally. A 404 maps
// to [ErrNoRemoteData]; the record is returned verbatim otherwise.
func (h *httpBridge) Pull(ctx context.Context) (models.RemoteRecord, error) {
	var record replicaRecord

	resp, err := h.request(ctx).
		SetResult(&record).
		Get("/api/replica")
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRecord{}, err
	}

	return models.RemoteRecord{
		Payload:      record.Payload,
		LastModified: record.LastModified,
	}, nil
}

// FullSync implements [Bridge]. It POSTs the serialized projection to
// POST /api/replica/sync; the replica compares watermarks and answers with
// its verdict. ShouldUpdateLocal is passed through untouched.
func (h *httpBridge) FullSync(ctx context.Context, payload string, lastModified string) (models.RemoteRecord, error) {
	var result fullSyncResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(replicaRecord{Payload: payload, LastModified: lastModified}).
		SetResult(&result).
		Post("/api/replica/sync")
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("full sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRecord{}, err
	}

	return models.RemoteRecord{
		Payload:           result.Payload,
		LastModified:      result.LastModified,
		ShouldUpdateLocal: result.ShouldUpdateLocal,
	}, nil
}

// Status implements [Bridge]. It GETs /api/status; transport failures read
// as offline with the error message attached.
func (h *httpBridge) Status(ctx context.Context) models.SyncStatusResult {
	var status statusResponse

	resp, err := h.request(ctx).
		SetResult(&status).
		Get("/api/status")
	if err != nil {
		msg := err.Error()
		return models.SyncStatusResult{Status: models.SyncOffline, Error: &msg}
	}
	if err = mapHTTPError(resp); err != nil {
		msg := err.Error()
		return models.SyncStatusResult{Status: models.SyncOffline, Error: &msg}
	}

	return models.SyncStatusResult{
		Status: models.SyncStatusFromCode(status.Status),
		Error:  status.Error,
	}
}

// SetupSubscriptions implements [Bridge]. It POSTs to /api/subscriptions and
// reports whether the replica accepted the registration. Best-effort only.
func (h *httpBridge) SetupSubscriptions(ctx context.Context) bool {
	resp, err := h.request(ctx).Post("/api/subscriptions")
	if err != nil {
		h.logger.Err(err).Str("func", "httpBridge.SetupSubscriptions").Msg("subscriptions request failed")
		return false
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpBridge.SetupSubscriptions").Msg("subscriptions rejected")
		return false
	}
	return true
}

// DeleteData implements [Bridge]. It DELETEs /api/replica. A replica that
// holds nothing answers 404, which still counts as deleted.
func (h *httpBridge) DeleteData(ctx context.Context) bool {
	resp, err := h.request(ctx).Delete("/api/replica")
	if err != nil {
		h.logger.Err(err).Str("func", "httpBridge.DeleteData").Msg("delete request failed")
		return false
	}
	if err = mapHTTPError(resp); err != nil && !errors.Is(err, ErrNoRemoteData) {
		h.logger.Err(err).Str("func", "httpBridge.DeleteData").Msg("delete rejected")
		return false
	}
	return true
}

func (h *httpBridge) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Device-ID", h.deviceID)
}
