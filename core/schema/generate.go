// Package schema renders descriptors and signatures as JSON Schema
// (draft 2020-12) documents and validates argument documents against them.
//
// Schemas are generated from the same descriptors that validate calls, so
// published schemas and runtime checks cannot drift apart. Values accepted
// only through runtime evaluation are described but not constrained.
package schema

import (
	"github.com/cartavis/carta-go/core/signature"
	"github.com/cartavis/carta-go/core/validation"
)

// Draft is the JSON Schema dialect of generated documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// FormatExtension mirrors custom formats so that consumers which ignore
// unknown "format" values can still recognise them.
const FormatExtension = "x-carta-format"

// Document is a JSON Schema document.
type Document map[string]any

// ForParameter renders the schema of a single descriptor.
func ForParameter(p validation.Parameter) Document {
	doc := Document(validation.SchemaOf(p))
	annotateFormats(doc)
	return doc
}

// ForSignature renders an object schema whose properties are the
// signature's parameters. Parameters without a default are required and
// unknown properties are rejected.
func ForSignature(sig *signature.Signature) Document {
	props := make(map[string]any)
	required := []any{}
	for _, p := range sig.Params() {
		prop := validation.SchemaOf(p.Descriptor)
		if p.HasDefault {
			prop["default"] = p.Default
		} else {
			required = append(required, p.Name)
		}
		props[p.Name] = prop
	}

	doc := Document{
		"$schema":              Draft,
		"title":                sig.Name(),
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
	if d := sig.Doc(); d != "" {
		doc["description"] = signature.StripMarkup(d)
	}
	if v := sig.Since(); v != "" {
		doc["x-carta-since"] = v
	}
	annotateFormats(doc)
	return doc
}

// annotateFormats copies custom "format" values into FormatExtension
// throughout the document.
func annotateFormats(node any) {
	switch n := node.(type) {
	case Document:
		annotateFormats(map[string]any(n))
	case map[string]any:
		if f, ok := n["format"].(string); ok && IsCartaFormat(Format(f)) {
			n[FormatExtension] = f
		}
		for _, v := range n {
			annotateFormats(v)
		}
	case []any:
		for _, v := range n {
			annotateFormats(v)
		}
	}
}

// Depth returns the maximum nesting depth of a schema, counting one level
// for each properties, items, additionalProperties, propertyNames or
// combinator step.
func Depth(doc map[string]any) int {
	return measureDepth(doc, 0)
}

func measureDepth(obj any, current int) int {
	var m map[string]any
	switch v := obj.(type) {
	case Document:
		m = map[string]any(v)
	case map[string]any:
		m = v
	default:
		return current
	}

	deepest := current
	deeper := func(child any) {
		if d := measureDepth(child, current+1); d > deepest {
			deepest = d
		}
	}

	if props, ok := m["properties"].(map[string]any); ok {
		for _, field := range props {
			deeper(field)
		}
	}
	for _, key := range []string{"items", "additionalProperties", "propertyNames"} {
		if child, ok := m[key].(map[string]any); ok {
			deeper(child)
		}
	}
	for _, key := range []string{"allOf", "anyOf", "oneOf"} {
		if arr, ok := m[key].([]any); ok {
			for _, child := range arr {
				deeper(child)
			}
		}
	}
	return deepest
}
