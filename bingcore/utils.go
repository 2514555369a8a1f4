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
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
)

var (
	firstCapRe = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	allCapRe   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// bookkeeping fields added by the service to every entity.
const (
	idField       = "ID"
	metadataField = "__metadata"
)

// snakeCase rewrites keys like "WebFileType" into "web_file_type".
func snakeCase(key string) string {
	s := firstCapRe.ReplaceAllString(key, "${1}_${2}")
	return strings.ToLower(allCapRe.ReplaceAllString(s, "${1}_${2}"))
}

// Normalize returns a copy of record with snake_case keys and without the
// service bookkeeping fields. Nested objects are normalized as well.
func Normalize(record map[string]any) Record {
	out := make(Record, len(record))
	for k, v := range record {
		if k == idField || k == metadataField {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			v = map[string]any(Normalize(nested))
		}
		out[snakeCase(k)] = v
	}
	return out
}

// facetKey is the envelope key of a facet, e.g. "Web".
func facetKey(s Source) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + strings.ToLower(string(s[1:]))
}

// parseSearchResponse extracts the raw result entries of the requested facet.
// For SourceAll the facets are concatenated in facetOrder.
func parseSearchResponse(body []byte, source Source) ([]any, error) {
	var answer compositeAnswer
	if err := sonic.Unmarshal(body, &answer); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal response: %w", ErrMalformedResponse, err)
	}

	if answer.D == nil {
		return nil, fmt.Errorf("%w: missing \"d\" envelope", ErrMalformedResponse)
	}
	if len(answer.D.Results) == 0 {
		return nil, fmt.Errorf("%w: empty \"results\"", ErrMalformedResponse)
	}
	result := answer.D.Results[0]

	if source != SourceAll {
		return facetEntries(result, facetKey(source), true)
	}

	var entries []any
	for _, s := range facetOrder {
		e, err := facetEntries(result, facetKey(s), false)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e...)
	}
	return entries, nil
}

func facetEntries(result map[string]any, key string, required bool) ([]any, error) {
	raw, ok := result[key]
	if !ok || raw == nil {
		if required {
			return nil, fmt.Errorf("%w: missing facet %q", ErrMalformedResponse, key)
		}
		return nil, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: facet %q is not an array", ErrMalformedResponse, key)
	}
	return entries, nil
}

// normalizeEntry is applied lazily on every Recv of the result stream.
func normalizeEntry(entry any) (Record, error) {
	m, ok := entry.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: result entry is %T, not an object", ErrMalformedResponse, entry)
	}
	return Normalize(m), nil
}

// Collect drains the stream into a slice and closes it.
func Collect(sr *schema.StreamReader[Record]) ([]Record, error) {
	defer sr.Close()

	var records []Record
	for {
		r, err := sr.Recv()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, r)
	}
}
