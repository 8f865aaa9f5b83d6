package fieldschema

import "github.com/spf13/cast"

// Fixed product attributes live on the product record itself and must never
// enter a dynamic field schema, even when a raw category field map carries
// them.
var fixedAttributes = map[string]bool{
	"weight":          true,
	"purchasePrice":   true,
	"purchaseKgPrice": true,
	"diameter":        true,
	"length":          true,
	"stock":           true,
}

// IsFixedAttribute reports whether name is a built-in product attribute.
func IsFixedAttribute(name string) bool {
	return fixedAttributes[name]
}

// FilterFixed returns a copy of fields with all fixed attribute keys
// removed. Raw field maps pass through here before a schema is derived so
// fixed product columns never leak into the dynamic-field handling.
func FilterFixed(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for name, v := range fields {
		if fixedAttributes[name] {
			continue
		}
		out[name] = v
	}
	return out
}

// NormalizeSpec converts a raw wire value into a FieldSpec. The backend
// sends either the current {datatype, required} object or, for older
// records, a bare datatype string. The bare shape carries no required flag,
// so the caller supplies the default that fits its partition: template
// fields pass true, extra fields pass false.
func NormalizeSpec(raw interface{}, defaultRequired bool) FieldSpec {
	switch v := raw.(type) {
	case map[string]interface{}:
		dt, ok := v["datatype"]
		if !ok {
			return FieldSpec{Datatype: Text, Required: defaultRequired}
		}
		spec := FieldSpec{Datatype: ParseDataType(cast.ToString(dt)), Required: defaultRequired}
		if req, ok := v["required"]; ok {
			spec.Required = cast.ToBool(req)
		}
		return spec
	case string:
		return FieldSpec{Datatype: ParseDataType(v), Required: defaultRequired}
	case FieldSpec:
		return v
	default:
		return FieldSpec{Datatype: Text, Required: defaultRequired}
	}
}

// NormalizeMap normalizes every entry of a raw wire field map, applying
// defaultRequired to legacy bare-datatype entries.
func NormalizeMap(fields map[string]interface{}, defaultRequired bool) map[string]FieldSpec {
	out := make(map[string]FieldSpec, len(fields))
	for name, raw := range fields {
		out[name] = NormalizeSpec(raw, defaultRequired)
	}
	return out
}

// SchemaFromWire builds a merged Schema from the raw field maps the backend
// stores on a product type (template partition) and a category (extra
// partition). Fixed attributes are filtered from both sides first.
func SchemaFromWire(templateFields, extraFields map[string]interface{}) (*Schema, error) {
	required := NormalizeMap(FilterFixed(templateFields), true)
	extra := NormalizeMap(FilterFixed(extraFields), false)
	for name := range extra {
		if _, dup := required[name]; dup {
			delete(extra, name)
		}
	}
	return MergeSchema(required, extra)
}

// Wire renders the merged schema in the current wire shape, suitable for a
// category finalFields payload.
func (s *Schema) Wire() map[string]FieldSpec {
	return s.Fields()
}
