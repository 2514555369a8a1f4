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

package bingcomposite

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/cloudwego/eino-ext/components/tool/bingcomposite/bingcore"
)

const (
	defaultToolName   = "bing_composite_search"
	defaultToolDesc   = "search web, images, videos, news or spelling suggestions by bing"
	defaultMaxResults = 10
)

// Config represents the Bing composite search tool configuration.
type Config struct {
	ToolName string `json:"tool_name"` // default: bing_composite_search
	ToolDesc string `json:"tool_desc"` // default: "search web, images, videos, news or spelling suggestions by bing"

	AppID      string            `json:"app_id"`      // required
	Market     bingcore.Market   `json:"market"`      // default: "" (decided by the service)
	Adult      bingcore.Adult    `json:"adult"`       // default: "" (decided by the service)
	FileType   bingcore.FileType `json:"file_type"`   // default: ""
	MaxResults int               `json:"max_results"` // default: 10

	BingConfig *bingcore.Config `json:"bing_config"`
}

// NewTool creates a new Bing composite search tool instance.
func NewTool(ctx context.Context, config *Config) (tool.InvokableTool, error) {
	bing, err := newBingComposite(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create bing composite search tool: %w", err)
	}

	searchTool, err := utils.InferTool(bing.config.ToolName, bing.config.ToolDesc, bing.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to infer tool: %w", err)
	}

	return searchTool, nil
}

// NewStreamTool creates a tool which streams normalized records one by one.
func NewStreamTool(ctx context.Context, config *Config) (tool.StreamableTool, error) {
	bing, err := newBingComposite(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create bing composite search tool: %w", err)
	}

	return utils.NewStreamTool(getSearchSchema(bing.config.ToolName, bing.config.ToolDesc), bing.SearchStream), nil
}

// validate validates the tool configuration and sets default values.
func (c *Config) validate() error {
	if c.ToolName == "" {
		c.ToolName = defaultToolName
	}

	if c.ToolDesc == "" {
		c.ToolDesc = defaultToolDesc
	}

	if c.AppID == "" {
		return errors.New("bing composite search tool config is missing app id")
	}

	if c.MaxResults <= 0 {
		c.MaxResults = defaultMaxResults
	}

	if c.BingConfig == nil {
		c.BingConfig = &bingcore.Config{}
	}

	c.BingConfig.AppID = c.AppID

	return nil
}

type bingComposite struct {
	config *Config
	client *bingcore.BingClient
}

func newBingComposite(config *Config) (*bingComposite, error) {
	if config == nil {
		return nil, errors.New("bing composite search tool config is required")
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	client, err := bingcore.New(config.BingConfig)
	if err != nil {
		return nil, err
	}

	return &bingComposite{
		config: config,
		client: client,
	}, nil
}

type SearchRequest struct {
	Query  string          `json:"query" jsonschema_description:"The query to search for"`
	Source bingcore.Source `json:"source,omitempty" jsonschema_description:"One of web, image, video, news, spell or all, default: web"`
	Page   int             `json:"page,omitempty" jsonschema_description:"The page number to search for, default: 1"`
}

type SearchResponse struct {
	Results []map[string]any `json:"results" jsonschema_description:"The results of the search, keys in snake_case"`
}

func (s *bingComposite) params(request *SearchRequest) *bingcore.SearchParams {
	top := s.config.MaxResults
	params := &bingcore.SearchParams{
		Query:    request.Query,
		Sources:  request.Source,
		Market:   s.config.Market,
		Adult:    s.config.Adult,
		FileType: s.config.FileType,
		Top:      &top,
	}
	if request.Page > 1 {
		skip := (request.Page - 1) * top
		params.Skip = &skip
	}
	return params
}

// SearchStream returns the results of the requested facet as a stream.
func (s *bingComposite) SearchStream(ctx context.Context, request *SearchRequest) (*schema.StreamReader[bingcore.Record], error) {
	if request == nil {
		return nil, errors.New("search request is required")
	}

	return s.client.Search(ctx, s.params(request))
}

// Search collects all results of the requested facet.
func (s *bingComposite) Search(ctx context.Context, request *SearchRequest) (*SearchResponse, error) {
	sr, err := s.SearchStream(ctx, request)
	if err != nil {
		return nil, err
	}

	records, err := bingcore.Collect(sr)
	if err != nil {
		return nil, err
	}

	results := make([]map[string]any, 0, len(records))
	for _, r := range records {
		results = append(results, r)
	}

	return &SearchResponse{
		Results: results,
	}, nil
}
