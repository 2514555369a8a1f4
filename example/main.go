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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/cloudwego/eino-ext/components/tool/bingcomposite"
	"github.com/cloudwego/eino-ext/components/tool/bingcomposite/bingcore"
)

func main() {
	appID := os.Getenv("BING_APP_ID")
	if appID == "" {
		log.Fatal("BING_APP_ID environment variable is not set")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	// Use the client directly, records are normalized as they are received.
	client, err := bingcore.New(&bingcore.Config{AppID: appID})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	top := 5
	sr, err := client.Search(ctx, &bingcore.SearchParams{
		Query:   "Eino",
		Sources: bingcore.SourceNews,
		Market:  "en-US",
		Top:     &top,
	})
	switch {
	case errors.Is(err, bingcore.ErrAuthenticationFailure):
		log.Fatal("Bing rejected the app id")
	case err != nil:
		log.Fatalf("Search failed: %v", err)
	}
	defer sr.Close()

	fmt.Println("News:")
	for {
		record, err := sr.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read result: %v", err)
		}
		fmt.Printf("- %v (%v)\n", record["title"], record["url"])
	}

	// Or use it as an eino tool.
	searchTool, err := bingcomposite.NewTool(ctx, &bingcomposite.Config{
		AppID:      appID,
		MaxResults: 3,
	})
	if err != nil {
		log.Fatalf("Failed to create tool: %v", err)
	}

	request := &bingcomposite.SearchRequest{
		Query:  "Eino",
		Source: bingcore.SourceWeb,
		Page:   1,
	}

	jsonReq, err := sonic.MarshalString(request)
	if err != nil {
		log.Fatalf("Failed to marshal request: %v", err)
	}

	resp, err := searchTool.InvokableRun(ctx, jsonReq)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	var searchResp bingcomposite.SearchResponse
	if err := sonic.UnmarshalString(resp, &searchResp); err != nil {
		log.Fatalf("Failed to unmarshal search response: %v", err)
	}

	fmt.Println("Web:")
	for i, result := range searchResp.Results {
		fmt.Printf("Title %d.     %v\n", i+1, result["title"])
		fmt.Printf("Link:          %v\n", result["url"])
		fmt.Printf("Description:   %v\n", result["description"])
	}
}
