package navsource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// ErrSourceUnavailable wraps every transport or decode failure of the remote
// navigation endpoint. Callers substitute the static fallback tree; the
// error is never surfaced to the user.
var ErrSourceUnavailable = errors.New("navigation source unavailable")

type HTTPSourceOption func(*HTTPSource)

func WithHTTPClient(client *http.Client) HTTPSourceOption {
	return func(s *HTTPSource) {
		s.client = client
	}
}

// HTTPSource fetches the navigation tree from a remote endpoint returning
// the JSON tree document.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(rawURL string, timeout time.Duration, opts ...HTTPSourceOption) *HTTPSource {
	s := &HTTPSource{
		url:    rawURL,
		client: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSource) Fetch(ctx context.Context, bypassCache bool) (*Tree, error) {
	reqURL := s.url
	if bypassCache {
		u, err := url.Parse(s.url)
		if err != nil {
			return nil, errors.Wrap(ErrSourceUnavailable, err.Error())
		}
		q := u.Query()
		q.Set("refresh", "1")
		u.RawQuery = q.Encode()
		reqURL = u.String()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(ErrSourceUnavailable, err.Error())
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrSourceUnavailable, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrSourceUnavailable, "unexpected status %d", resp.StatusCode)
	}

	var dto treeDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, errors.Wrap(ErrSourceUnavailable, err.Error())
	}

	return &Tree{
		Version: dto.Version,
		Items:   decodeEntries("", dto.Items),
	}, nil
}
