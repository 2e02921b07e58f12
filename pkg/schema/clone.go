package schema

// Clone returns a deep copy of the schema node so callers can mutate the
// result without affecting cached extraction output.
func (p PropertySchema) Clone() PropertySchema {
	out := p
	out.MinLength = cloneIntPtr(p.MinLength)
	out.MaxLength = cloneIntPtr(p.MaxLength)
	out.Minimum = cloneFloatPtr(p.Minimum)
	out.Maximum = cloneFloatPtr(p.Maximum)
	if p.Enum != nil {
		out.Enum = append([]any(nil), p.Enum...)
	}
	if p.Items != nil {
		items := p.Items.Clone()
		out.Items = &items
	}
	if p.Properties != nil {
		out.Properties = make(map[string]PropertySchema, len(p.Properties))
		for name, prop := range p.Properties {
			out.Properties[name] = prop.Clone()
		}
	}
	if p.Required != nil {
		out.Required = append([]string(nil), p.Required...)
	}
	if p.Validation != nil {
		rule := p.Validation.Clone()
		out.Validation = &rule
	}
	return out
}

// Clone returns a deep copy of the data schema.
func (d *DataSchema) Clone() *DataSchema {
	if d == nil {
		return nil
	}
	out := &DataSchema{Type: d.Type}
	if d.Properties != nil {
		out.Properties = make(map[string]PropertySchema, len(d.Properties))
		for name, prop := range d.Properties {
			out.Properties[name] = prop.Clone()
		}
	}
	if d.Required != nil {
		out.Required = append([]string(nil), d.Required...)
	}
	if d.AdditionalProperties != nil {
		value := *d.AdditionalProperties
		out.AdditionalProperties = &value
	}
	return out
}

// Clone returns a copy of the rule. The custom predicate, when present, is
// shared: function values carry no mutable state.
func (r ValidationRule) Clone() ValidationRule {
	out := r
	out.Config.Min = cloneFloatPtr(r.Config.Min)
	out.Config.Max = cloneFloatPtr(r.Config.Max)
	return out
}

// Clone returns a deep copy of the form field descriptor.
func (f FormField) Clone() FormField {
	out := f
	if f.Validation != nil {
		rule := f.Validation.Clone()
		out.Validation = &rule
	}
	if f.Options != nil {
		out.Options = append([]FieldOption(nil), f.Options...)
	}
	return out
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}

func cloneFloatPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}
