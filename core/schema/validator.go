package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cartavis/carta-go/core/signature"
)

// ErrInvalidDocument is wrapped by every failure of a document to satisfy
// its schema.
var ErrInvalidDocument = errors.New("document does not match schema")

// Validator validates documents against generated or supplied schemas.
type Validator struct {
	config *ValidationConfig
	cache  *compiledCache
}

// NewValidator creates a validator. A nil config uses
// DefaultValidationConfig.
func NewValidator(config *ValidationConfig) *Validator {
	if config == nil {
		config = DefaultValidationConfig()
	}

	var cache *compiledCache
	if config.EnableCache {
		cache = newCompiledCache(config.MaxCacheSize)
	}

	return &Validator{config: config, cache: cache}
}

// ValidateSignature validates a keyword-argument document against the
// schema of sig.
func (v *Validator) ValidateSignature(sig *signature.Signature, args map[string]any) error {
	return v.Validate(ForSignature(sig), args)
}

// Validate validates value against doc. value is normalised through JSON
// first, so Go structs, named types and integer kinds are accepted.
func (v *Validator) Validate(doc Document, value any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("schema marshal failed: %w", err)
	}
	if len(raw) > v.config.MaxSchemaSize {
		return fmt.Errorf("schema too large: %d bytes (max: %d)", len(raw), v.config.MaxSchemaSize)
	}
	if depth := Depth(doc); depth > v.config.MaxSchemaDepth {
		return fmt.Errorf("schema too deep: %d levels (max: %d)", depth, v.config.MaxSchemaDepth)
	}

	compiled, err := v.compiled(doc, raw)
	if err != nil {
		return fmt.Errorf("schema compilation failed: %w", err)
	}

	instance, err := normalize(value)
	if err != nil {
		return fmt.Errorf("document is not JSON: %w", err)
	}
	if err := compiled.Validate(instance); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// CacheSize returns the number of cached compiled schemas.
func (v *Validator) CacheSize() int {
	if v.cache == nil {
		return 0
	}
	return v.cache.len()
}

func (v *Validator) compiled(doc Document, raw []byte) (*jsonschema.Schema, error) {
	var key string
	if v.cache != nil {
		digest, err := Digest(doc)
		if err != nil {
			return nil, err
		}
		key = digest
		if s, ok := v.cache.get(key); ok {
			return s, nil
		}
	}

	s, err := v.compile(raw)
	if err != nil {
		return nil, err
	}
	if v.cache != nil {
		v.cache.put(key, s)
	}
	return s, nil
}

func (v *Validator) compile(raw []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = v.config.AssertFormat

	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(interface{}) bool)
	}
	for name, fn := range formatValidators() {
		compiler.Formats[name] = fn
	}
	compiler.LoadURL = v.secureLoader()

	url := "schema://main.json"
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

func (v *Validator) secureLoader() func(string) (io.ReadCloser, error) {
	return func(url string) (io.ReadCloser, error) {
		if !v.config.AllowRemoteRef {
			if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
				return nil, fmt.Errorf("remote $ref not allowed: %s", url)
			}
		}
		for _, scheme := range v.config.AllowedSchemes {
			if strings.HasPrefix(url, scheme+":") {
				return jsonschema.LoadURL(url)
			}
		}
		return nil, fmt.Errorf("URL scheme not allowed: %s", url)
	}
}

// normalize converts value to the generic JSON form the compiled schema
// expects, keeping numbers exact.
func normalize(value any) (any, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// convertValidationError flattens the leaf causes of a schema failure into
// one error wrapping ErrInvalidDocument.
func convertValidationError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	var leaves []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			leaves = append(leaves, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	sort.Strings(leaves)
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(leaves, "; "))
}
