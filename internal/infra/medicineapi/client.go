package medicineapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-medicine-reminder/internal/observability/tracing"
)

const (
	addMedicinePath   = "/medicines/add"
	userMedicinesPath = "/medicines/user"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
}

func NewClient(baseURL string, loc *time.Location) *Client {
	if loc == nil {
		loc = time.Local
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: newHTTPClient(baseURL),
		loc:        loc,
	}
}

var _ MedicineRepository = (*Client)(nil)

func (c *Client) ListUserMedicines(ctx context.Context, bearerToken string) ([]*domain.Medicine, error) {
	body, err := c.do(ctx, http.MethodGet, userMedicinesPath, bearerToken, nil)
	if err != nil {
		return nil, err
	}

	var payloads []MedicinePayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		slog.ErrorContext(ctx, "failed to decode medicines from medicine api",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	medicines := make([]*domain.Medicine, 0, len(payloads))
	for i := range payloads {
		m, err := payloads[i].ToDomain(c.loc)
		if err != nil {
			slog.WarnContext(ctx, "skipping medicine with unreadable dates",
				slog.String("medicine_id", payloads[i].MedicineID()),
				slog.String("error", err.Error()),
			)
			continue
		}
		medicines = append(medicines, m)
	}

	slog.DebugContext(ctx, "fetched user medicines",
		slog.Int("count", len(medicines)),
	)

	return medicines, nil
}

func (c *Client) AddMedicine(ctx context.Context, bearerToken string, medicine *domain.Medicine) (*domain.Medicine, error) {
	reqBody, err := json.Marshal(NewMedicinePayload(medicine))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal medicine: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, addMedicinePath, bearerToken, reqBody)
	if err != nil {
		return nil, err
	}

	created, err := decodeCreated(body)
	if err != nil {
		return nil, err
	}

	m, err := created.ToDomain(c.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	// the remote answer may omit fields it echoed back unchanged
	if m.Name == "" {
		m.Name = medicine.Name
	}
	if m.Dosage == "" {
		m.Dosage = medicine.Dosage
	}
	if m.StartDate.IsZero() {
		m.StartDate = medicine.StartDate
	}
	if m.EndDate.IsZero() {
		m.EndDate = medicine.EndDate
	}
	if len(m.ReminderTimes) == 0 {
		m.ReminderTimes = append([]string(nil), medicine.ReminderTimes...)
	}
	if m.ScheduleType == "" {
		m.ScheduleType = medicine.ScheduleType
	}

	slog.InfoContext(ctx, "medicine added to medicine api",
		slog.String("medicine_id", m.ID),
	)

	return m, nil
}

// decodeCreated accepts either the bare medicine or {"medicine": {...}}.
func decodeCreated(body []byte) (*MedicinePayload, error) {
	var envelope addMedicineEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Medicine != nil {
		return envelope.Medicine, nil
	}

	var payload MedicinePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path, bearerToken string, reqBody []byte) ([]byte, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(path)

	var reader io.Reader
	if reqBody != nil {
		reader = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to medicine api",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)

		slog.ErrorContext(ctx, "unexpected status code from medicine api",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	return body, nil
}
