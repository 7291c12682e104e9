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
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/majormentor/unigo"
	"github.com/majormentor/unigo/ai"
	"github.com/majormentor/unigo/match"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "unigo",
		Usage: "Korean academic program and department query resolver",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "./catalog_db",
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
				Value: "embeddinggemma",
			},
			&cli.StringFlag{
				Name:  "taxonomy",
				Usage: "Path to the category taxonomy JSON file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load the program catalog and institution directory into the database",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "programs",
						Usage:    "Path to the program catalog JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "institutions",
						Usage: "Path to the institution directory JSON file",
					},
				},
			},
			{
				Name:      "list",
				Usage:     "List departments matching a query (or the whole catalog)",
				ArgsUsage: "[query]",
				Action:    listCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of departments to show",
						Value: 10,
					},
				},
			},
			{
				Name:      "career",
				Usage:     "Show career information for a program",
				ArgsUsage: "<program name>",
				Action:    careerCommand,
			},
			{
				Name:      "universities",
				Usage:     "List institutions offering a department",
				ArgsUsage: "<department name>",
				Action:    universitiesCommand,
			},
			{
				Name:      "admission",
				Usage:     "Show an institution's admission info link, verifying a department",
				ArgsUsage: "<institution> [department]",
				Action:    admissionCommand,
			},
			{
				Name:   "guide",
				Usage:  "Print the search guide",
				Action: guideCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openCatalog(c *cli.Context) (*unigo.Catalog, error) {
	opts := []unigo.CatalogOption{
		unigo.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
	}
	if path := c.String("taxonomy"); path != "" {
		opts = append(opts, unigo.WithTaxonomyPath(path))
	}

	catalog, err := unigo.NewCatalog(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return catalog, nil
}

func seedCommand(c *cli.Context) error {
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	if err := catalog.Seed(context.Background(), c.String("programs"), c.String("institutions")); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	fmt.Fprintln(os.Stderr, "catalog seeded")
	return nil
}

func listCommand(c *cli.Context) error {
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	query := strings.Join(c.Args().Slice(), " ")
	out, err := catalog.ListDepartments(context.Background(), query, c.Int("top-k"))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func careerCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("program name is required")
	}
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	info, err := catalog.CareerInfo(context.Background(), strings.Join(c.Args().Slice(), " "))
	if errors.Is(err, unigo.ErrNoResults) {
		fmt.Println("해당 전공의 진로 정보를 찾을 수 없습니다.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("전공: %s\n", info.Major)
	if len(info.Jobs) > 0 {
		fmt.Printf("진출 직업: %s\n", strings.Join(info.Jobs, ", "))
	}
	for _, field := range info.CareerFields {
		fmt.Printf("진출 분야: %s - %s\n", field.Category, field.Description)
	}
	if info.Qualifications != "" {
		fmt.Printf("관련 자격증: %s\n", info.Qualifications)
	}
	for _, subject := range info.Subjects {
		fmt.Printf("주요 과목: %s\n", subject.Name)
	}
	if info.AnnualSalary > 0 {
		fmt.Printf("평균 연봉: %.0f만원\n", info.AnnualSalary)
	}
	if info.EmploymentRate > 0 {
		fmt.Printf("취업률: %.1f%%\n", info.EmploymentRate)
	}
	if info.GenderRatio != "" {
		fmt.Printf("성비: %s\n", info.GenderRatio)
	}
	if info.Satisfaction != "" {
		fmt.Printf("만족도: %s\n", info.Satisfaction)
	}
	fmt.Println()
	fmt.Println(info.Notice)
	return nil
}

func universitiesCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("department name is required")
	}
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	offerings, err := catalog.UniversitiesByDepartment(context.Background(), strings.Join(c.Args().Slice(), " "))
	if errors.Is(err, unigo.ErrNoResults) {
		fmt.Println("해당 학과를 개설한 대학 정보를 찾을 수 없습니다.")
		return nil
	}
	if err != nil {
		return err
	}

	for _, offering := range offerings {
		line := offering.Institution + " / " + offering.Department
		if offering.Campus != "" {
			line += " (" + offering.Campus + ")"
		}
		fmt.Println(line)
	}
	return nil
}

func admissionCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("institution name is required")
	}
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	ctx := context.Background()
	institution := c.Args().Get(0)
	department := strings.Join(c.Args().Slice()[1:], " ")

	info, err := catalog.AdmissionInfo(ctx, institution, department)
	if errors.Is(err, match.ErrInstitutionNotFound) {
		fmt.Printf("'%s' 대학의 입시 정보를 찾을 수 없습니다.\n", institution)
		candidates, searchErr := catalog.SearchInstitutions(ctx, institution)
		if searchErr == nil && len(candidates) > 0 {
			names := make([]string, 0, len(candidates))
			for _, candidate := range candidates {
				names = append(names, candidate.Name)
			}
			if len(names) > 5 {
				names = names[:5]
			}
			fmt.Printf("다음 대학명 중 하나를 선택해주세요: %s\n", strings.Join(names, ", "))
		}
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(info.Message)
	fmt.Println()
	fmt.Println(info.Guide)
	return nil
}

func guideCommand(c *cli.Context) error {
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	fmt.Println(catalog.SearchHelp())
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
