package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Sentinel errors returned by the batch driver.
var (
	ErrReadInput     = errors.New("read input")
	ErrDecodeInput   = errors.New("decode input")
	ErrWriteOutput   = errors.New("write output")
	ErrInvalidOption = errors.New("invalid option")
)

// Entry is one docstring to parse.
type Entry struct {
	// Name identifies the documented entity, e.g. "pkg.mod.func".
	Name string `json:"name" toml:"name" yaml:"name"`
	// Kind is a [docstring.Kind] name such as "function".
	Kind string `json:"kind" toml:"kind" yaml:"kind"`
	// File and Line locate the docstring in its source file. Line is the
	// line the docstring text starts on.
	File      string `json:"file,omitempty" toml:"file" yaml:"file,omitempty"`
	Docstring string `json:"docstring"      toml:"docstring" yaml:"docstring"`
	Line      int    `json:"line,omitempty" toml:"line" yaml:"line,omitempty"`
}

// File is the decoded form of a batch input file.
type File struct {
	Entries []Entry `toml:"entries" yaml:"entries"`
}

// Load reads and decodes the batch file at path. A path of "-" reads YAML
// from stdin.
func Load(path string, stdin io.Reader) ([]Entry, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}

	return Decode(path, data)
}

// Decode decodes batch file content. The format is chosen by the
// extension of name: ".toml" selects TOML, anything else YAML.
func Decode(name string, data []byte) ([]Entry, error) {
	var f File

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecodeInput, name, err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s: unknown keys %v", ErrDecodeInput, name, undecoded)
		}

		return f.Entries, nil
	}

	err := yaml.UnmarshalWithOptions(data, &f, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeInput, name, err)
	}

	return f.Entries, nil
}
