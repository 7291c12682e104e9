// Copyright 2025 Major Mentor
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/majormentor/unigo"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	catalog, err := unigo.NewCatalog("./catalog_db")
	if err != nil {
		panic(err)
	}
	defer catalog.Close()

	query := "컴퓨터공학과"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	ctx := context.Background()
	records, err := catalog.Resolver().Resolve(ctx, query, 5)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d programs\n", len(records))
	for i, record := range records {
		fmt.Printf("%d: '%s' (%s)\n", i, record.Name, record.ProgramID)
	}
}
