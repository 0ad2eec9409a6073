// Package config resolves the markupconv command line configuration from flags, environment
// variables and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sensorable/markupconv"
)

// Environment variables read when the corresponding flag is not set.
const (
	EnvInputFolder  = "input_folder"
	EnvOutputFolder = "output_folder"
	EnvInputFormat  = "input_format"
	EnvOutputFormat = "output_format"
	EnvMapLabels    = "map_labels"
)

const defaultEnvFile = ".env"

// ErrMissingValue is returned by Validate for a required value that is not set.
var ErrMissingValue = errors.New("missing configuration value")

// Config holds the conversion settings.
type Config struct {
	InputFolder   string
	OutputFolder  string
	InputFormat   string
	OutputFormat  string
	LabelMappings []string // old=new label (sub-)string replacements.
}

// Load parses args, loads the .env file and fills unset values from the environment. Variables
// that are already set in the environment take precedence over the .env file.
//
// A missing default .env file is not an error; a missing file given with -env-file is.
func Load(args []string) (*Config, error) {
	return load(args, os.Stderr)
}

func load(args []string, output io.Writer) (*Config, error) {
	flags := flag.NewFlagSet("markupconv", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(output, "Usage of markupconv:")
		_, _ = fmt.Fprintf(output, "  formats:\t\t%s\n", strings.Join(markupconv.FormatNames(), ", "))
		for _, c := range markupconv.Conversions() {
			_, _ = fmt.Fprintf(output, "  conversion:\t\t%v\n", c)
		}
		_, _ = fmt.Fprintln(output)
		flags.PrintDefaults()
	}

	cfg := &Config{}
	flags.StringVar(&cfg.InputFolder, "input-folder", "",
		"The `path` to the input dataset (env "+EnvInputFolder+")")
	flags.StringVar(&cfg.OutputFolder, "output-folder", "",
		"The `path` to the output dataset (env "+EnvOutputFolder+")")
	flags.StringVar(&cfg.InputFormat, "input-format", "",
		"The source `format` (env "+EnvInputFormat+")")
	flags.StringVar(&cfg.OutputFormat, "output-format", "",
		"The target `format` (env "+EnvOutputFormat+")")
	mapLabels := flags.String("map-labels", "",
		"Comma-separated list of old=new label (sub-)string replacements (env "+EnvMapLabels+")")
	envFile := flags.String("env-file", defaultEnvFile, "The `path` to a .env file")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	envFileSet := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "env-file" {
			envFileSet = true
		}
	})
	if err := godotenv.Load(*envFile); err != nil {
		if envFileSet || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("cannot load env file %q: %w", *envFile, err)
		}
	}

	fromEnv(&cfg.InputFolder, EnvInputFolder)
	fromEnv(&cfg.OutputFolder, EnvOutputFolder)
	fromEnv(&cfg.InputFormat, EnvInputFormat)
	fromEnv(&cfg.OutputFormat, EnvOutputFormat)
	fromEnv(mapLabels, EnvMapLabels)
	if *mapLabels != "" {
		cfg.LabelMappings = strings.Split(*mapLabels, ",")
	}

	return cfg, nil
}

// fromEnv sets *v from the environment variable key if *v is empty.
func fromEnv(v *string, key string) {
	if *v == "" {
		*v = os.Getenv(key)
	}
}

// Validate checks that all required values are set.
func (c *Config) Validate() error {
	required := []struct{ value, name string }{
		{c.InputFormat, "input format"},
		{c.InputFolder, "input folder"},
		{c.OutputFolder, "output folder"},
		{c.OutputFormat, "output format"},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is not specified", ErrMissingValue, r.name)
		}
	}
	for _, m := range c.LabelMappings {
		if len(strings.Split(m, "=")) != 2 {
			return fmt.Errorf("invalid label mapping %q, expected old=new", m)
		}
	}
	return nil
}

// Conversion validates c and returns the requested conversion.
//
// An unknown input format is reported with markupconv.ErrUnknownFormat. An unknown output format or
// a pair without a direct conversion is reported with markupconv.ErrUnsupportedConversion.
func (c *Config) Conversion() (markupconv.Conversion, error) {
	if err := c.Validate(); err != nil {
		return markupconv.Conversion{}, err
	}

	from, err := markupconv.ParseFormat(c.InputFormat)
	if err != nil {
		return markupconv.Conversion{}, fmt.Errorf("the input format is not supported: %w", err)
	}
	to, err := markupconv.ParseFormat(c.OutputFormat)
	if err != nil {
		return markupconv.Conversion{}, fmt.Errorf("%w: %s to %q", markupconv.ErrUnsupportedConversion,
			from, c.OutputFormat)
	}

	conv := markupconv.Conversion{From: from, To: to}
	if !markupconv.Supported(from, to) {
		return conv, fmt.Errorf("%w: %v", markupconv.ErrUnsupportedConversion, conv)
	}
	return conv, nil
}
