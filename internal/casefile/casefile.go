package casefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

// Case is one patient's inputs. Either section may be omitted.
type Case struct {
	Patient string             `yaml:"patient"`
	HomaIR  *model.HomaIrInput `yaml:"homa_ir"`
	Ascvd   *AscvdCase         `yaml:"ascvd"`
}

// AscvdCase is the ascvd section of a case file. Methods lists the
// methods to run; when empty the configured default is used.
type AscvdCase struct {
	model.AscvdData `yaml:",inline"`

	Methods []string `yaml:"methods"`
}

// Load reads and decodes a case file.
func Load(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses a case from r. Unknown keys are rejected so a typo
// cannot silently leave a risk factor unset.
func Decode(r io.Reader) (*Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	c := &Case{}
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("case file is empty")
		}
		return nil, fmt.Errorf("parse case file: %w", err)
	}
	if c.HomaIR == nil && c.Ascvd == nil {
		return nil, errors.New("case file has neither a homa_ir nor an ascvd section")
	}
	return c, nil
}
