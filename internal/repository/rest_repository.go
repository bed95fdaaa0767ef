package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coopebred/registro-socios/internal/models"
)

// APIError is an error reported by the PostgREST endpoint
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("store responded with status %d", e.StatusCode)
}

// RESTStore implements MemberStore against the Supabase REST API (PostgREST)
type RESTStore struct {
	// baseURL is the project URL, e.g. https://<ref>.supabase.co
	baseURL string
	// apiKey is sent both as apikey and as bearer token
	apiKey string
	// HTTPClient is used to make requests to the store
	HTTPClient *http.Client
}

// NewRESTStore creates a new REST-backed store
func NewRESTStore(baseURL, apiKey string, timeout time.Duration) *RESTStore {
	return &RESTStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (s *RESTStore) tableURL(table string, query url.Values) string {
	u := fmt.Sprintf("%s/rest/v1/%s", s.baseURL, table)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (s *RESTStore) setAuthHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
}

// FindIndividualsByCedula selects SocioIndividual rows with cedula=eq.<cedula>.
// Only the cedula column is requested; callers only need the row count.
func (s *RESTStore) FindIndividualsByCedula(ctx context.Context, cedula string) ([]models.IndividualMember, error) {
	query := url.Values{}
	query.Set("select", "cedula")
	query.Set("cedula", "eq."+cedula)

	body, err := s.do(ctx, http.MethodGet, s.tableURL(models.TableIndividualMember, query), nil)
	if err != nil {
		return nil, err
	}

	var members []models.IndividualMember
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, fmt.Errorf("failed to parse store response: %w", err)
	}
	if members == nil {
		members = []models.IndividualMember{}
	}
	return members, nil
}

// InsertIndividual inserts one row into SocioIndividual
func (s *RESTStore) InsertIndividual(ctx context.Context, member *models.IndividualMember) (int64, error) {
	return s.insert(ctx, models.TableIndividualMember, member)
}

// InsertCorporate inserts one row into SocioEmpresa
func (s *RESTStore) InsertCorporate(ctx context.Context, member *models.CorporateMember) (int64, error) {
	return s.insert(ctx, models.TableCorporateMember, member)
}

// Ping issues a minimal read against SocioIndividual
func (s *RESTStore) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("select", "cedula")
	query.Set("limit", "1")
	_, err := s.do(ctx, http.MethodGet, s.tableURL(models.TableIndividualMember, query), nil)
	return err
}

func (s *RESTStore) insert(ctx context.Context, table string, record any) (int64, error) {
	payload, err := json.Marshal([]any{record})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := s.do(ctx, http.MethodPost, s.tableURL(table, nil), payload); err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *RESTStore) do(ctx context.Context, method, target string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	s.setAuthHeaders(req)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		slog.Error("Failed to send request to store", "method", method, "url", target, "error", err)
		return nil, transportError(err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			slog.Error("failed to close response body", "error", err)
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("Store returned error", "method", method, "status", resp.StatusCode, "body", string(body))
		return nil, parseAPIError(resp.StatusCode, body)
	}
	return body, nil
}

// transportError strips the request URL, which carries filter values such as
// the cedula, from client transport errors.
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
