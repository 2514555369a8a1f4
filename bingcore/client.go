/*
 * Copyright 2026 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bingcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"
)

// BingClient queries the composite endpoint. It holds no mutable state and
// may be shared between goroutines.
type BingClient struct {
	client  *http.Client
	baseURL string
	appID   string
	headers map[string]string
}

type Config struct {
	// AppID is the account key. It is sent as both user name and password
	// of the basic authentication.
	AppID string `json:"app_id"`

	// BaseURL overrides the composite endpoint.
	// Default: "https://api.datamarket.azure.com/Data.ashx/Bing/Search/Composite"
	BaseURL string `json:"base_url"`

	Headers map[string]string `json:"headers"`

	// Timeout of a single request. Zero leaves the transport default in place.
	Timeout time.Duration `json:"timeout"`

	// ProxyURL supports http, https and socks5 proxies.
	ProxyURL string `json:"proxy_url"`

	// HTTPClient replaces the client built from Timeout and ProxyURL.
	HTTPClient *http.Client `json:"-"`
}

func New(config *Config) (*BingClient, error) {
	if config == nil {
		return nil, errors.New("bing client config is required")
	}

	if config.AppID == "" {
		return nil, errors.New("bing client config is missing app id")
	}

	c := &BingClient{
		client:  config.HTTPClient,
		baseURL: config.BaseURL,
		appID:   config.AppID,
		headers: config.Headers,
	}

	if c.baseURL == "" {
		c.baseURL = searchURL
	}

	if c.client != nil {
		return c, nil
	}

	c.client = &http.Client{Timeout: config.Timeout}

	if config.ProxyURL != "" {
		proxyURL, err := url.Parse(config.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		switch proxyURL.Scheme {
		case "http", "https", "socks5":
			c.client.Transport = &http.Transport{
				Proxy: http.ProxyURL(proxyURL),
			}
		default:
			return nil, fmt.Errorf("unsupported proxy scheme: %s", proxyURL.Scheme)
		}
	}

	return c, nil
}

// Search validates params, queries the composite endpoint and returns the
// results of the requested facet. The body is read and parsed before Search
// returns; each record is normalized when it is received from the stream.
func (b *BingClient) Search(ctx context.Context, params *SearchParams) (*schema.StreamReader[Record], error) {
	if params == nil {
		return nil, fmt.Errorf("%w: search params cannot be nil", ErrInvalidParameter)
	}

	if err := params.validate(); err != nil {
		return nil, err
	}

	queryURL := fmt.Sprintf("%s?%s", b.baseURL, params.encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range b.headers {
		req.Header.Set(k, v)
	}
	req.SetBasicAuth(b.appID, b.appID)

	body, err := b.sendRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	entries, err := parseSearchResponse(body, params.source())
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("sources", string(params.source())).
		Int("results", len(entries)).
		Msg("bing composite search succeeded")

	return schema.StreamReaderWithConvert(schema.StreamReaderFromArray(entries), normalizeEntry), nil
}

// sendRequest issues the request once and maps the response status to an error kind.
func (b *BingClient) sendRequest(ctx context.Context, req *http.Request) ([]byte, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("url", req.URL.Redacted()).Msg("sending bing composite search request")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	logger.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("received bing composite search response")

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized:
		return nil, ErrAuthenticationFailure
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrRuntimeInvalidParameter, string(body))
	default:
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}
