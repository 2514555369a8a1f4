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
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/cloudwego/eino/schema"

	"github.com/cloudwego/eino-ext/components/tool/bingcomposite/bingcore"
)

func getSearchSchema(toolName, toolDesc string) *schema.ToolInfo {
	sources := make([]any, 0, len(bingcore.Sources()))
	for _, s := range bingcore.Sources() {
		sources = append(sources, string(s))
	}

	sc := &openapi3.Schema{
		Type:     openapi3.TypeObject,
		Required: []string{"query"},
		Properties: map[string]*openapi3.SchemaRef{
			"query": {
				Value: &openapi3.Schema{
					Type:        openapi3.TypeString,
					Description: "The query to search for",
				},
			},
			"source": {
				Value: &openapi3.Schema{
					Type:        openapi3.TypeString,
					Description: "The kind of results to search for, all searches every kind at once",
					Enum:        sources,
					Default:     string(bingcore.SourceWeb),
				},
			},
			"page": {
				Value: &openapi3.Schema{
					Type:        openapi3.TypeInteger,
					Description: "The page number of the search results. Default is 1",
					Default:     1,
				},
			},
		},
	}

	return &schema.ToolInfo{
		Name:        toolName,
		Desc:        toolDesc,
		ParamsOneOf: schema.NewParamsOneOfByOpenAPIV3(sc),
	}
}
