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
	"net/url"
	"strconv"
	"strings"
)

// searchURL is the Bing Search API composite endpoint on the Azure Data Market.
const (
	searchURL = "https://api.datamarket.azure.com/Data.ashx/Bing/Search/Composite"
)

// controlPrefix marks protocol parameters which are sent unquoted.
const controlPrefix = "$"

// Source is one of the searchable facets of the composite endpoint.
type Source string

const (
	SourceWeb   Source = "web"
	SourceImage Source = "image"
	SourceVideo Source = "video"
	SourceNews  Source = "news"
	SourceSpell Source = "spell"
	// SourceAll queries every facet in a single request.
	SourceAll Source = "all"
)

// compositeSources is what SourceAll is rewritten to on the wire.
const compositeSources = "web+image+video+news+spell"

// facetOrder is the order in which SourceAll results are yielded.
var facetOrder = []Source{SourceWeb, SourceImage, SourceVideo, SourceNews, SourceSpell}

// Market restricts results to a language-region, e.g. "en-US".
type Market string

// Adult is the adult content filter.
type Adult string

const (
	AdultOff      Adult = "Off"
	AdultModerate Adult = "Moderate"
	AdultStrict   Adult = "Strict"
)

// FileType restricts web results to a document type.
type FileType string

const (
	FileTypeDOC  FileType = "DOC"
	FileTypeDWF  FileType = "DWF"
	FileTypeFEED FileType = "FEED"
	FileTypeHTM  FileType = "HTM"
	FileTypeHTML FileType = "HTML"
	FileTypePDF  FileType = "PDF"
	FileTypePPT  FileType = "PPT"
	FileTypeRTF  FileType = "RTF"
	FileTypeTEXT FileType = "TEXT"
	FileTypeTXT  FileType = "TXT"
	FileTypeXLS  FileType = "XLS"
)

var (
	validSources = newSet(SourceWeb, SourceImage, SourceVideo, SourceNews, SourceSpell, SourceAll)

	validMarkets = newSet[Market](
		"ar-XA", "bg-BG", "cs-CZ", "da-DK", "de-AT", "de-CH", "de-DE", "el-GR",
		"en-AU", "en-CA", "en-GB", "en-ID", "en-IE", "en-IN", "en-MY", "en-NZ",
		"en-PH", "en-SG", "en-US", "en-XA", "en-ZA", "es-AR", "es-CL", "es-ES",
		"es-MX", "es-US", "es-XL", "et-EE", "fi-FI", "fr-BE", "fr-CA", "fr-CH",
		"fr-FR", "he-IL", "hr-HR", "hu-HU", "it-IT", "ja-JP", "ko-KR", "lt-LT",
		"lv-LV", "nb-NO", "nl-BE", "nl-NL", "pl-PL", "pt-BR", "pt-PT", "ro-RO",
		"ru-RU", "sk-SK", "sl-SL", "sv-SE", "th-TH", "tr-TR", "uk-UA", "zh-CN",
		"zh-HK", "zh-TW",
	)

	validAdult = newSet(AdultOff, AdultModerate, AdultStrict)

	validFileTypes = newSet(
		FileTypeDOC, FileTypeDWF, FileTypeFEED, FileTypeHTM, FileTypeHTML, FileTypePDF,
		FileTypePPT, FileTypeRTF, FileTypeTEXT, FileTypeTXT, FileTypeXLS,
	)
)

func newSet[T ~string](values ...T) map[T]struct{} {
	s := make(map[T]struct{}, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Sources returns every accepted facet value.
func Sources() []Source {
	return append(append([]Source{}, facetOrder...), SourceAll)
}

// IsValidMarket reports whether m is an accepted market code. The empty market is valid.
func IsValidMarket(m Market) bool {
	return m == "" || contains(validMarkets, m)
}

func contains[T ~string](set map[T]struct{}, v T) bool {
	_, ok := set[v]
	return ok
}

// SearchParams represents the parameters of a composite search request.
// Empty strings and nil pointers mean "unspecified" and are not sent.
// Please refer to the Bing Search API Quick Start and Code Samples for the Azure Data Market.
type SearchParams struct {
	Query string `json:"query"`

	// Sources defaults to SourceWeb.
	Sources Source `json:"sources"`

	Market Market `json:"market"`

	Adult Adult `json:"adult"`

	// FileType only applies to the web facet.
	FileType FileType `json:"file_type"`

	ImageFilters string `json:"image_filters"`

	VideoFilters string `json:"video_filters"`

	Top *int `json:"top"`

	Skip *int `json:"skip"`
}

// NextPage returns a copy of the params positioned on the following page.
func (s *SearchParams) NextPage() *SearchParams {
	next := *s
	if s.Top == nil {
		return &next
	}
	skip := *s.Top
	if s.Skip != nil {
		skip += *s.Skip
	}
	next.Skip = &skip
	return &next
}

// source returns the requested facet, defaulting to web.
func (s *SearchParams) source() Source {
	if s.Sources == "" {
		return SourceWeb
	}
	return s.Sources
}

// validate checks the enumerated parameters against their allow-lists.
func (s *SearchParams) validate() error {
	if s.Query == "" {
		return &InvalidParameterError{Param: "query", Value: s.Query}
	}
	if !contains(validSources, s.source()) {
		return &InvalidParameterError{Param: "sources", Value: string(s.Sources)}
	}
	if !IsValidMarket(s.Market) {
		return &InvalidParameterError{Param: "market", Value: string(s.Market)}
	}
	if s.Adult != "" && !contains(validAdult, s.Adult) {
		return &InvalidParameterError{Param: "adult", Value: string(s.Adult)}
	}
	if s.FileType != "" && !contains(validFileTypes, s.FileType) {
		return &InvalidParameterError{Param: "file_type", Value: string(s.FileType)}
	}
	return nil
}

// build assembles the raw request parameters. Absent values are left out.
func (s *SearchParams) build() map[string]string {
	sources := string(s.source())
	if s.source() == SourceAll {
		sources = compositeSources
	}

	params := map[string]string{
		"Query":        s.Query,
		"Sources":      sources,
		"Market":       string(s.Market),
		"Adult":        string(s.Adult),
		"WebFileType":  string(s.FileType),
		"ImageFilters": s.ImageFilters,
		"VideoFilters": s.VideoFilters,
		"$format":      "Json",
	}
	if s.Top != nil {
		params["$top"] = strconv.Itoa(*s.Top)
	}
	if s.Skip != nil {
		params["$skip"] = strconv.Itoa(*s.Skip)
	}

	return quoteParams(params)
}

// quoteParams drops empty values and wraps every non-control value in single
// quotes, as the service expects string literals. Embedded quotes are doubled.
func quoteParams(params map[string]string) map[string]string {
	q := make(map[string]string, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		if !strings.HasPrefix(k, controlPrefix) {
			v = "'" + strings.ReplaceAll(v, "'", "''") + "'"
		}
		q[k] = v
	}
	return q
}

// encode renders the request parameters as a query string.
func (s *SearchParams) encode() string {
	values := url.Values{}
	for k, v := range s.build() {
		values.Set(k, v)
	}
	return values.Encode()
}

// Record is a single search result with normalized keys.
type Record map[string]any

// compositeAnswer is the envelope returned by the composite endpoint:
// {"d": {"results": [{"Web": [...], "Image": [...]}]}}
type compositeAnswer struct {
	D *struct {
		Results []map[string]any `json:"results"`
	} `json:"d"`
}
