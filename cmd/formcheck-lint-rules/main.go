package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-formcheck"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	var (
		schemaFile  = flag.String("schema", "", "OpenAPI document describing the target form")
		operationID = flag.String("operation", "", "operationId whose request body describes the form")
	)
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] rules.yaml...\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint rule tables against the signup form or an OpenAPI-derived form.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	form := model.SignupForm()
	if *schemaFile != "" {
		derived, err := formcheck.FormFromOpenAPIFile(ctx, *schemaFile, *operationID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load form %s: %v\n", *schemaFile, err)
			os.Exit(1)
		}
		form = derived
	}

	violations, err := lint(form, paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if report(os.Stderr, violations) > 0 {
		os.Exit(1)
	}
}

func lint(form model.FormModel, paths []string) ([]violation, error) {
	var violations []violation
	for _, path := range paths {
		table, err := rules.LoadTableFile(path)
		if err != nil {
			return nil, fmt.Errorf("lint %s: %w", path, err)
		}
		for _, problem := range table.Verify(form) {
			violations = append(violations, violation{
				file:     path,
				location: "fields." + problem.Field,
				message:  problem.Message,
			})
		}
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
	return violations, nil
}

func report(w io.Writer, violations []violation) int {
	for _, v := range violations {
		fmt.Fprintf(w, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
	return len(violations)
}
