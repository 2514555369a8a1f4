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
	"net/url"
	"testing"

	"github.com/bytedance/mockey"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func TestSearchParams_validate(t *testing.T) {
	tests := []struct {
		name      string
		params    *SearchParams
		wantParam string
	}{
		{
			name:   "minimal",
			params: &SearchParams{Query: "eino"},
		},
		{
			name: "all fields",
			params: &SearchParams{
				Query:    "eino",
				Sources:  SourceAll,
				Market:   "en-US",
				Adult:    AdultStrict,
				FileType: FileTypePDF,
			},
		},
		{
			name:      "empty query",
			params:    &SearchParams{},
			wantParam: "query",
		},
		{
			name:      "unknown source",
			params:    &SearchParams{Query: "eino", Sources: "books"},
			wantParam: "sources",
		},
		{
			name:      "source is case sensitive",
			params:    &SearchParams{Query: "eino", Sources: "Web"},
			wantParam: "sources",
		},
		{
			name:      "composite string is not a source",
			params:    &SearchParams{Query: "eino", Sources: compositeSources},
			wantParam: "sources",
		},
		{
			name:      "unknown market",
			params:    &SearchParams{Query: "eino", Market: "en-us"},
			wantParam: "market",
		},
		{
			name:      "unknown adult filter",
			params:    &SearchParams{Query: "eino", Adult: "off"},
			wantParam: "adult",
		},
		{
			name:      "unknown file type",
			params:    &SearchParams{Query: "eino", FileType: "EXE"},
			wantParam: "file_type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.validate()
			if tt.wantParam == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidParameter))
			var ipe *InvalidParameterError
			if assert.True(t, errors.As(err, &ipe)) {
				assert.Equal(t, tt.wantParam, ipe.Param)
			}
		})
	}
}

func TestSearchParams_build(t *testing.T) {
	mockey.PatchConvey("Test SearchParams build", t, func() {
		mockey.PatchConvey("defaults to web and omits absent values", func() {
			got := (&SearchParams{Query: "eino"}).build()
			assert.Equal(t, map[string]string{
				"Query":   "'eino'",
				"Sources": "'web'",
				"$format": "Json",
			}, got)
		})

		mockey.PatchConvey("all is expanded to every facet", func() {
			got := (&SearchParams{Query: "eino", Sources: SourceAll}).build()
			assert.Equal(t, "'"+compositeSources+"'", got["Sources"])
			assert.Equal(t, "web+image+video+news+spell", compositeSources)
		})

		mockey.PatchConvey("control parameters are not quoted", func() {
			got := (&SearchParams{
				Query:        "eino",
				Sources:      SourceImage,
				Market:       "zh-CN",
				Adult:        AdultModerate,
				FileType:     FileTypeDOC,
				ImageFilters: "Size:Small",
				VideoFilters: "Duration:Short",
				Top:          intPtr(10),
				Skip:         intPtr(20),
			}).build()
			assert.Equal(t, map[string]string{
				"Query":        "'eino'",
				"Sources":      "'image'",
				"Market":       "'zh-CN'",
				"Adult":        "'Moderate'",
				"WebFileType":  "'DOC'",
				"ImageFilters": "'Size:Small'",
				"VideoFilters": "'Duration:Short'",
				"$format":      "Json",
				"$top":         "10",
				"$skip":        "20",
			}, got)
		})

		mockey.PatchConvey("zero top is still sent", func() {
			got := (&SearchParams{Query: "eino", Top: intPtr(0)}).build()
			assert.Equal(t, "0", got["$top"])
		})

		mockey.PatchConvey("embedded quotes are doubled", func() {
			got := (&SearchParams{Query: "o'reilly"}).build()
			assert.Equal(t, "'o''reilly'", got["Query"])
		})
	})
}

func TestQuoteParams(t *testing.T) {
	got := quoteParams(map[string]string{
		"Query":   "go",
		"Market":  "",
		"$top":    "5",
		"$format": "Json",
	})
	assert.Equal(t, map[string]string{
		"Query":   "'go'",
		"$top":    "5",
		"$format": "Json",
	}, got)
}

func TestSearchParams_encode(t *testing.T) {
	values, err := url.ParseQuery((&SearchParams{Query: "cloud wego", Top: intPtr(3)}).encode())
	assert.NoError(t, err)
	assert.Equal(t, "'cloud wego'", values.Get("Query"))
	assert.Equal(t, "3", values.Get("$top"))
	assert.Equal(t, "Json", values.Get("$format"))
}

func TestSearchParams_NextPage(t *testing.T) {
	p := &SearchParams{Query: "eino", Top: intPtr(10)}

	next := p.NextPage()
	assert.Equal(t, 10, *next.Skip)
	assert.Nil(t, p.Skip)

	next = next.NextPage()
	assert.Equal(t, 20, *next.Skip)
	assert.Equal(t, "eino", next.Query)

	noTop := (&SearchParams{Query: "eino"}).NextPage()
	assert.Nil(t, noTop.Skip)
}

func TestSources(t *testing.T) {
	assert.Equal(t, []Source{SourceWeb, SourceImage, SourceVideo, SourceNews, SourceSpell, SourceAll}, Sources())
	assert.True(t, IsValidMarket(""))
	assert.True(t, IsValidMarket("sl-SL"))
	assert.False(t, IsValidMarket("xx-XX"))
}
