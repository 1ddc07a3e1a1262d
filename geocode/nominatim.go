// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jcodagnone/pincode/utils/httputils"
)

// DefaultEndpoint is the public Nominatim reverse geocoding endpoint.
const DefaultEndpoint = "https://nominatim.openstreetmap.org/reverse"

// NominatimOptions configures a Nominatim client.
type NominatimOptions struct {
	// Endpoint overrides DefaultEndpoint
	Endpoint string

	// UserAgent identifies the application, required by the Nominatim usage policy
	UserAgent string

	// Trace receives a dump of every request and response when not nil
	Trace io.Writer

	// TraceBody includes bodies in the trace
	TraceBody bool

	// Transport is the base transport, http.DefaultTransport if nil
	Transport http.RoundTripper
}

// Nominatim uses the OpenStreetMap Nominatim reverse API.
type Nominatim struct {
	endpoint   string
	httpClient *http.Client
}

// NewNominatim creates a new Nominatim client. No client timeout is set: a
// lookup blocks until the service answers or the context is done.
func NewNominatim(options *NominatimOptions) *Nominatim {
	if options == nil {
		options = &NominatimOptions{}
	}

	endpoint := DefaultEndpoint
	if options.Endpoint != "" {
		endpoint = options.Endpoint
	}

	userAgent := "pincode/unknown"
	if options.UserAgent != "" {
		userAgent = options.UserAgent
	}

	loggingTransport := &httputils.LoggingRoundTripper{
		Transport: options.Transport,
		Writer:    options.Trace,
		DumpBody:  options.TraceBody,
	}

	headerTransport := &httputils.AppendRequestHeadersRoundTripper{
		Headers: map[string]string{
			"User-Agent": userAgent,
			"Accept":     "application/json",
		},
		Transport: loggingTransport,
	}

	return &Nominatim{
		endpoint:   endpoint,
		httpClient: &http.Client{Transport: headerTransport},
	}
}

// reverseResponse holds the only part of the answer we care about. Both
// levels are optional: {"error": "Unable to geocode"} decodes to NotFound.
type reverseResponse struct {
	Address *struct {
		Postcode *string `json:"postcode"`
	} `json:"address"`
}

func (r *reverseResponse) postcode() string {
	if r.Address == nil || r.Address.Postcode == nil {
		return NotFound
	}

	return *r.Address.Postcode
}

func (g *Nominatim) reverseURL(lat, lon string) (string, error) {
	u, err := url.Parse(g.endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint %q: %w", g.endpoint, err)
	}

	params := u.Query()
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("format", "json")
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// ReversePostcode implements Geocoder.
func (g *Nominatim) ReversePostcode(ctx context.Context, lat, lon string) (string, error) {
	fail := func(t ErrorType, status int, err error) (string, error) {
		return "", &LookupError{Type: t, Lat: lat, Lon: lon, StatusCode: status, Err: err}
	}

	reqURL, err := g.reverseURL(lat, lon)
	if err != nil {
		return fail(ErrorTypeInvalidRequest, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fail(ErrorTypeInvalidRequest, 0, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fail(classifyTransportError(err), 0, err)
	}

	defer resp.Body.Close()

	// The status alone is not a failure. Whatever the service sends must
	// decode into the expected shape.
	var rr reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty response body")
		}

		return fail(ClassifyHTTPStatus(resp.StatusCode), statusIfNotOK(resp.StatusCode), fmt.Errorf("decoding response: %w", err))
	}

	return rr.postcode(), nil
}

func statusIfNotOK(status int) int {
	if status == http.StatusOK {
		return 0
	}

	return status
}
