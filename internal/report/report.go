package report

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/modname/internal/errors"
	"github.com/thoreinstein/modname/internal/rename"
)

// Format is an output format for the summary.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat indicates an unsupported summary format.
var ErrUnknownFormat = errors.New("unknown summary format")

// Entry is the summary of one processed argument.
type Entry struct {
	Path        string `json:"path" yaml:"path" toml:"path"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty" toml:"destination,omitempty"`
	Outcome     string `json:"outcome" yaml:"outcome" toml:"outcome"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// Summary is the document written by Write.
type Summary struct {
	Results []Entry `json:"results" yaml:"results" toml:"results"`
}

// Build converts results into a Summary. Destination is only reported for
// renamed files.
func Build(results []rename.Result) Summary {
	s := Summary{Results: make([]Entry, 0, len(results))}
	for _, r := range results {
		e := Entry{Path: r.Path, Outcome: r.Outcome.String()}
		if r.Outcome == rename.OutcomeRenamed {
			e.Destination = r.Destination
		}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		s.Results = append(s.Results, e)
	}
	return s
}

// Write renders results to w in the given format.
func Write(w io.Writer, format Format, results []rename.Result) error {
	s := Build(results)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(err, "encoding yaml summary")
		}
		return errors.Wrap(enc.Close(), "flushing yaml summary")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(s), "encoding toml summary")
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(s), "encoding json summary")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(format))
	}
}
