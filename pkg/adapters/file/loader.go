package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/DOCtorActoAntohich/fsa/internal/compiler"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.Loader over the local filesystem.
//
// Files ending in .yaml, .yml or .json hold a structured description;
// anything else is read as the five-line text description.
type Loader struct {
	BasePath string
	parser   *compiler.Parser
}

// NewLoader creates a Loader resolving relative names against basePath.
// If basePath is empty, the working directory is used.
func NewLoader(basePath string) *Loader {
	return &Loader{BasePath: basePath, parser: compiler.NewParser()}
}

// Load reads and parses the named file.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := name
	if !filepath.IsAbs(path) && l.BasePath != "" {
		path = filepath.Join(l.BasePath, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}

	return l.decode(data, filepath.Ext(path))
}

// Decode parses data according to ext (".yaml", ".yml", ".json" or,
// for anything else, the text description).
func Decode(data []byte, ext string) (*domain.Automaton, error) {
	return NewLoader("").decode(data, ext)
}

func (l *Loader) decode(data []byte, ext string) (*domain.Automaton, error) {
	if IsStructured(ext) {
		return DecodeStructured(data, ext)
	}
	return l.parser.Parse(data)
}

// IsStructured reports whether ext names a YAML or JSON description.
func IsStructured(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// document is the structured description. Transitions accept either the
// compact "from>symbol>to" string or a {from, symbol, to} mapping.
type document struct {
	States      []string            `mapstructure:"states"`
	Alphabet    []string            `mapstructure:"alphabet"`
	Initial     string              `mapstructure:"initial"`
	Final       []string            `mapstructure:"final"`
	Transitions []domain.Transition `mapstructure:"transitions"`
}

// DecodeStructured decodes a YAML or JSON description (ext selects the
// syntax: ".json" or anything else for YAML). Errors wrap domain.ErrMalformed.
func DecodeStructured(data []byte, ext string) (*domain.Automaton, error) {
	raw := make(map[string]any)
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
		}
	}

	var doc document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       transitionHook,
		ErrorUnused:      true,
		WeaklyTypedInput: true, // YAML reads "states: [1, 2]" as numbers
		Result:           &doc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}

	if err := doc.check(); err != nil {
		return nil, err
	}

	return domain.New(doc.States, doc.Alphabet, doc.Initial, doc.Final, doc.Transitions), nil
}

var transitionType = reflect.TypeOf(domain.Transition{})

func transitionHook(from, to reflect.Type, data any) (any, error) {
	if to != transitionType || from.Kind() != reflect.String {
		return data, nil
	}
	return domain.ParseTransition(data.(string))
}

// check applies the same lexical rules as the text grammar.
func (d *document) check() error {
	if len(d.States) == 0 {
		return fmt.Errorf("%w: states must not be empty", domain.ErrMalformed)
	}
	if len(d.Alphabet) == 0 {
		return fmt.Errorf("%w: alphabet must not be empty", domain.ErrMalformed)
	}

	states := append(append([]string(nil), d.States...), d.Final...)
	if d.Initial != "" {
		states = append(states, d.Initial)
	}
	symbols := append([]string(nil), d.Alphabet...)
	for _, t := range d.Transitions {
		states = append(states, t.From, t.To)
		symbols = append(symbols, t.Symbol)
	}

	for _, s := range states {
		if !compiler.IsStateName(s) {
			return fmt.Errorf("%w: invalid state name %q", domain.ErrMalformed, s)
		}
	}
	for _, s := range symbols {
		if !compiler.IsSymbol(s) {
			return fmt.Errorf("%w: invalid symbol %q", domain.ErrMalformed, s)
		}
	}
	return nil
}
