package dataset

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/errors"
)

// Write encodes set in the given format and writes it to w.
// The output can be re-read with [Read] and yields an identical set.
func Write(w io.Writer, set *dominance.Set, format Format) error {
	out := file{
		Criteria:     set.Criteria(),
		Alternatives: set.Rows(),
	}

	var err error
	switch format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(out); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(out)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown dataset format %q", format)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return nil
}

// Export writes set to path, picking the encoder by extension. A failure to
// flush the file on close is reported like a failed write.
func Export(set *dominance.Set, path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInvalidPath, cerr, "close %s", path)
		}
	}()
	return Write(f, set, format)
}
