package dataset

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/errors"
)

// Format identifies a dataset encoding.
type Format string

// Supported dataset encodings.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists every supported encoding.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

// file is the on-disk shape shared by all encodings.
type file struct {
	Criteria     []string    `toml:"criteria,omitempty" yaml:"criteria,omitempty" json:"criteria,omitempty"`
	Alternatives [][]float64 `toml:"alternatives" yaml:"alternatives" json:"alternatives"`
}

// ParseFormat converts a format name to a [Format]. "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown dataset format %q (must be toml, yaml or json)", s)
	}
}

// FormatFromPath derives the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "%s: missing file extension (.toml, .yaml or .json)", path)
	}
	return ParseFormat(ext)
}

// Read decodes a dataset from r and validates it into a set.
//
// Read returns an error if:
//   - the input cannot be decoded in the given format
//   - the alternatives list is missing or empty
//   - rows have differing or zero lengths
//   - a criterion label is blank or the label count does not match
//
// Read does not close r.
func Read(r io.Reader, format Format) (*dominance.Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "read")
	}

	var f file
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown dataset format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode %s", format)
	}
	return f.toSet()
}

// Load reads the dataset file at path, picking the decoder by extension.
func Load(path string) (*dominance.Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "open %s", path)
	}
	defer fh.Close()

	set, err := Read(fh, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return set, nil
}

func (f file) toSet() (*dominance.Set, error) {
	if len(f.Alternatives) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "dataset has no alternatives")
	}

	var opts []dominance.SetOption
	if len(f.Criteria) > 0 {
		for _, label := range f.Criteria {
			if err := errors.ValidateCriterionLabel(label); err != nil {
				return nil, err
			}
		}
		opts = append(opts, dominance.WithCriteria(f.Criteria...))
	}

	set, err := dominance.NewSet(f.Alternatives, opts...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "invalid alternatives")
	}
	for _, alt := range set.Alternatives() {
		for k, v := range alt.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.New(errors.ErrCodeInvalidDataset,
					"%s: %s is %v, values must be finite", alt.Label(), set.Criterion(k), v)
			}
		}
	}
	return set, nil
}
