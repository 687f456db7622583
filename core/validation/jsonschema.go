package validation

// schemaOf returns the schema of p, falling back to a description-only
// schema that accepts any value.
func schemaOf(p Parameter) map[string]any {
	if sp, ok := p.(SchemaProvider); ok {
		return sp.JSONSchema()
	}
	return map[string]any{"description": p.Description()}
}

// SchemaOf returns the JSON Schema fragment for a descriptor.
func SchemaOf(p Parameter) map[string]any {
	return schemaOf(p)
}

// jsonValues converts options into plain JSON scalars so that named string
// and integer types compare equal to decoded JSON.
func jsonValues(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		if s, ok := asString(v); ok {
			out[i] = s
		} else if f, ok := toFloat(v); ok {
			out[i] = f
		} else {
			out[i] = v
		}
	}
	return out
}

// JSONSchema returns a string schema.
func (p *String) JSONSchema() map[string]any {
	s := map[string]any{"type": "string", "description": p.Description()}
	if p.re != nil {
		s["pattern"] = p.re.String()
	}
	return s
}

// JSONSchema returns a boolean schema.
func (p *Boolean) JSONSchema() map[string]any {
	if p.loose {
		return map[string]any{
			"anyOf":       []any{map[string]any{"type": "boolean"}, map[string]any{"enum": []any{0, 1}}},
			"description": p.Description(),
		}
	}
	return map[string]any{"type": "boolean", "description": p.Description()}
}

// JSONSchema returns a null schema.
func (p *NoneParameter) JSONSchema() map[string]any {
	return map[string]any{"type": "null"}
}

// JSONSchema returns a description-only schema, because the accepted
// values are resolved at runtime.
func (p *Evaluate) JSONSchema() map[string]any {
	return map[string]any{"description": p.Description(), "x-carta-evaluated": true}
}
