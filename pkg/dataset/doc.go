// Package dataset loads and saves alternative sets.
//
// # Overview
//
// A dataset is an ordered table of alternatives with an optional list of
// criterion labels. The same shape is accepted in three encodings, chosen by
// file extension:
//
//   - .toml (BurntSushi/toml)
//   - .yaml, .yml (gopkg.in/yaml.v3)
//   - .json (encoding/json)
//
// # File Format
//
//	criteria = ["Q1", "Q2"]
//	alternatives = [
//	  [5, 2],  # A1
//	  [2, 1],  # A2
//	  [9, 3],  # A3
//	]
//
// Row i becomes alternative A(i+1). The criteria key is optional; without it
// criteria are labeled Q1, Q2, ... Every row must have the same number of
// values.
//
// # Import
//
// Use [Load] to read a file, or [Read] to decode from any io.Reader:
//
//	set, err := dataset.Load("alternatives.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Validation failures are reported as [errors.ErrCodeInvalidDataset] and
// still wrap the underlying [dominance] sentinel, so both
// errors.Is(err, dominance.ErrInconsistentCriteria) and
// errors.Is(err, errors.ErrCodeInvalidDataset) hold. Values must be finite:
// TOML and YAML can spell out nan and inf, but such rows are rejected.
//
// # Export
//
// [Write] and [Export] encode a set back into any of the three formats, which
// makes it easy to dump the built-in [Reference] table as a starting point.
//
// [errors.ErrCodeInvalidDataset]: github.com/matzehuels/frontier/pkg/errors
// [dominance]: github.com/matzehuels/frontier/pkg/dominance
package dataset
