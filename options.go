package satismeter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Options are the integration settings. Token is the deprecated name of
// APIKey and is only used when APIKey is empty.
type Options struct {
	APIKey string `yaml:"apiKey"`
	Token  string `yaml:"token"`
}

// WriteKey returns the credential forwarded on structured calls.
func (o Options) WriteKey() string {
	if o.APIKey != "" {
		return o.APIKey
	}
	return o.Token
}

// ParseOptions decodes YAML settings. Unknown keys are rejected.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("failed to parse options: %w", err)
	}
	return opts, nil
}

// LoadOptions reads YAML settings from path.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file %s: %w", path, err)
	}
	return ParseOptions(data)
}
