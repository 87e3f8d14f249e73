package fact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/valpere/randomly/internal/logging"
)

const (
	DefaultBaseURL = "https://uselessfacts.jsph.pl"
	DefaultTimeout = 30 * time.Second

	maxBodySize = 1 << 20
)

// FetcherConfig configures a Fetcher. Zero values select the defaults.
type FetcherConfig struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
	Logger  logging.Logger
}

// Fetcher retrieves random facts from the fact service.
type Fetcher struct {
	baseURL string
	client  *http.Client
	log     logging.Logger
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &Fetcher{
		baseURL: baseURL,
		client:  client,
		log:     logging.OrNoOp(cfg.Logger),
	}
}

// Fetch requests one random fact and returns it as a canonical JSON string.
//
// A json body is normalized as a document; any other format is returned as
// a JSON-encoded string. Invalid arguments fail before any request is made.
func (f *Fetcher) Fetch(ctx context.Context, format, language string) (string, error) {
	req := Request{Format: Format(format), Language: Language(language)}
	if err := req.Validate(); err != nil {
		return "", invalidArgument(err)
	}

	body, err := f.get(ctx, req)
	if err != nil {
		return "", err
	}

	if req.Format == FormatJSON {
		return Normalize(string(body))
	}
	return EncodeText(string(body)), nil
}

// FetchPayload fetches a json-format fact and decodes it.
func (f *Fetcher) FetchPayload(ctx context.Context, language string) (*Payload, error) {
	out, err := f.Fetch(ctx, string(FormatJSON), language)
	if err != nil {
		return nil, err
	}
	return ParsePayload(out)
}

func (f *Fetcher) get(ctx context.Context, req Request) ([]byte, error) {
	reqID := uuid.New().String()
	start := time.Now()

	endpoint := fmt.Sprintf("%s/random.%s?%s", f.baseURL, req.Format,
		url.Values{"language": {string(req.Language)}}.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	f.log.Debug("fact request", "request_id", reqID, "url", endpoint)

	resp, err := f.client.Do(httpReq)
	if err != nil {
		f.log.Warn("fact request failed", "request_id", reqID, "error", err)
		return nil, &TransportError{Op: "fetch fact", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.Warn("fact service error", "request_id", reqID, "status", resp.StatusCode)
		return nil, &RemoteServiceError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &TransportError{Op: "read fact body", Err: err}
	}
	if len(body) > maxBodySize {
		f.log.Warn("fact response too large", "request_id", reqID, "limit", maxBodySize)
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedPayload, maxBodySize)
	}

	f.log.Debug("fact response", "request_id", reqID, "bytes", len(body), "latency", time.Since(start))
	return body, nil
}
