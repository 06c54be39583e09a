package enumizerinternal

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nihohit/enumizer/internal/codefmt"
	"github.com/nihohit/enumizer/internal/enumizer/emit"
	"github.com/nihohit/enumizer/internal/enumizer/parse"
)

// Manifest describes types to generate without directive files. It serves
// projects that want generation driven by a checked-in YAML file instead of
// tagged Go source.
type Manifest struct {
	Package string         `yaml:"package"`
	Out     string         `yaml:"out,omitempty"`
	Types   []ManifestType `yaml:"types"`
}

// ManifestType is one type entry of a [Manifest]. Names may be loose, like
// "not found"; they are squashed into identifiers before validation.
type ManifestType struct {
	Shape    string   `yaml:"shape"`
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
	Derive   []string `yaml:"derive"`
	Try      bool     `yaml:"try"`
}

// MainManifest generates code from YAML manifest data. It returns the output
// file name declared by the manifest and the generated code.
func MainManifest(data []byte) (string, []byte, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return "", nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.Package == "" {
		return "", nil, errors.New("manifest needs a package name")
	}
	out := m.Out
	if out == "" {
		out = "enumizer_gen.go"
	}

	var specs []*parse.Spec
	var errs error
	for i, t := range m.Types {
		spec, err := t.spec()
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("types[%d]: %w", i, err))
			continue
		}
		specs = append(specs, spec)
	}

	byName := make(map[string]struct{})
	declared := make(codefmt.NS)
	for _, spec := range specs {
		if _, ok := byName[spec.Name]; ok {
			errs = errors.Join(errs, fmt.Errorf("type %s declared twice", spec.Name))
			continue
		}
		byName[spec.Name] = struct{}{}

		names := emit.Synthesize(spec)
		// One type's constructor may spell another type's name. Reserve every
		// package-scope name across the whole manifest.
		for _, name := range names.TopLevel() {
			if !declared.Reserve(name) {
				errs = errors.Join(errs, fmt.Errorf("type %s: generated name %s conflicts with another generated declaration", spec.Name, name))
			}
		}

		methods := make(codefmt.NS)
		for _, name := range names.Methods() {
			if !methods.Reserve(name) {
				errs = errors.Join(errs, fmt.Errorf("type %s: generated methods named %s collide; rename a variant", spec.Name, name))
			}
		}
	}
	if errs != nil {
		return "", nil, reorderErrors(errs)
	}
	if len(specs) == 0 {
		return out, nil, nil
	}

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, nil)
	w.Printf("// enumizer: declared sum types\n\n")
	for _, spec := range specs {
		emit.Write(w, spec)
		w.Printf("\n")
	}

	return out, frame(m.Package, w, &buf), nil
}

// spec converts the manifest entry into a normalized [parse.Spec].
func (t ManifestType) spec() (*parse.Spec, error) {
	var shape parse.Shape
	switch strings.ToLower(t.Shape) {
	case "option":
		shape = parse.OptionShape
	case "result":
		shape = parse.ResultShape
	case "either":
		shape = parse.EitherShape
	default:
		return nil, fmt.Errorf("unknown shape %q", t.Shape)
	}

	if t.Name == "" {
		return nil, errors.New("need a type name")
	}
	if len(t.Variants) != 2 {
		return nil, fmt.Errorf("need 2 variants; got %d", len(t.Variants))
	}
	if t.Variants[0] == "" || t.Variants[1] == "" {
		return nil, errors.New("variant names cannot be empty")
	}

	spec := &parse.Spec{
		Shape: shape,
		Name:  codefmt.NormalizeName(t.Name),
		Try:   t.Try,
	}
	spec.Variants[0] = parse.Variant{Name: codefmt.NormalizeName(t.Variants[0]), HasPayload: shape != parse.OptionShape}
	spec.Variants[1] = parse.Variant{Name: codefmt.NormalizeName(t.Variants[1]), HasPayload: true}

	if t.Derive == nil {
		spec.Caps = append([]parse.Cap(nil), parse.DefaultCaps...)
	} else {
		for _, c := range t.Derive {
			spec.Caps = append(spec.Caps, parse.Cap(c))
		}
	}

	var errs error
	for _, err := range spec.Normalize() {
		errs = errors.Join(errs, err)
	}
	if errs != nil {
		return nil, errs
	}
	return spec, nil
}
