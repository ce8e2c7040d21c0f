package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/threecommas/tools/dashgen/dashboards"
	"github.com/donaldgifford/threecommas/tools/dashgen/rules"
	"github.com/donaldgifford/threecommas/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool, out io.Writer) error {
	artifacts, err := generate(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		_, err := fmt.Fprintln(out, "validation passed")
		return err
	}

	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if _, err := fmt.Fprintf(out, "dashgen: wrote %s\n", path); err != nil {
			return err
		}
	}
	return nil
}

// generate builds and validates every enabled artifact.
func generate(cfg Config) ([]artifact, error) {
	var (
		artifacts []artifact
		problems  []error
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, fmt.Errorf("building overview dashboard: %w", err)
		}
		problems = append(problems, resultErr("threecommas-overview.json", validate.Dashboard(dash, KnownMetrics)))

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling dashboard: %w", err)
		}
		artifacts = append(artifacts, artifact{
			path: filepath.Join("grafana", "data", "threecommas-overview.json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules()} {
			problems = append(problems, resultErr(cr.Metadata.Name, validate.Rules(cr, KnownMetrics)))

			crYAML, err := marshalYAML(cr)
			if err != nil {
				return nil, err
			}
			fileYAML, err := marshalYAML(cr.File())
			if err != nil {
				return nil, err
			}
			artifacts = append(artifacts,
				artifact{path: filepath.Join("prometheus", cr.Metadata.Name+".yaml"), data: crYAML},
				artifact{path: filepath.Join("prometheus", "rules", cr.Metadata.Name+".rules.yaml"), data: fileYAML},
			)
		}
	}

	if err := errors.Join(problems...); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return artifacts, nil
}

func marshalYAML(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling rules: %w", err)
	}
	return append([]byte(generatedHeader), data...), nil
}

func resultErr(name string, res validate.Result) error {
	if res.Ok() {
		return nil
	}
	errs := make([]error, 0, len(res.Errors))
	for _, e := range res.Errors {
		errs = append(errs, fmt.Errorf("%s: %s", name, e))
	}
	return errors.Join(errs...)
}
