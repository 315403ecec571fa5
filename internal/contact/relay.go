package contact

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DefaultRelayURL = "https://api.web3forms.com/submit"

// ErrRelayRejected is returned when the relay answers without success.
var ErrRelayRejected = errors.New("form relay rejected submission")

// RelayError carries the relay's own explanation, if it gave one.
type RelayError struct {
	Message string
}

func (e *RelayError) Error() string {
	if e.Message == "" {
		return ErrRelayRejected.Error()
	}
	return ErrRelayRejected.Error() + ": " + e.Message
}

func (e *RelayError) Unwrap() error { return ErrRelayRejected }

type relayResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// RelaySender posts submissions to a hosted form relay. The access key is
// held server-side and never reaches the browser.
type RelaySender struct {
	endpoint  string
	accessKey string
	client    *http.Client
}

func NewRelaySender(endpoint, accessKey string) *RelaySender {
	if endpoint == "" {
		endpoint = DefaultRelayURL
	}
	return &RelaySender{
		endpoint:  endpoint,
		accessKey: accessKey,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *RelaySender) Name() string { return "relay" }

// Deliver sends one submission. It does not retry.
func (r *RelaySender) Deliver(ctx context.Context, s Submission) (err error) {
	if r.accessKey == "" {
		err = errors.Wrap(ErrNotConfigured, "form relay access key missing")
		return err
	}

	form := url.Values{}
	form.Set("access_key", r.accessKey)
	form.Set("name", s.Name)
	form.Set("email", s.Email)
	form.Set("company", s.Company)
	form.Set("subject", s.Subject)
	form.Set("message", s.Message)

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		err = errors.Wrap(err, "failed to create relay request")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var resp *http.Response
	resp, err = r.client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "failed to reach form relay")
		return err
	}
	defer resp.Body.Close()

	var body []byte
	body, err = io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		err = errors.Wrap(err, "failed to read relay response")
		return err
	}

	var decoded relayResponse
	if jsonErr := json.Unmarshal(body, &decoded); jsonErr != nil || decoded.Success == nil {
		err = &RelayError{}
		return err
	}
	if !*decoded.Success {
		err = &RelayError{Message: decoded.Message}
		return err
	}

	return err
}
