package fieldschema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// FieldSpec describes one dynamic attribute of a product category.
type FieldSpec struct {
	Datatype DataType `json:"datatype"`
	Required bool     `json:"required"`
}

// DuplicateFieldError is returned when a field name collides with an
// existing entry of the merged schema.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("field %q already exists in the schema", e.Name)
}

// BlankNameError is returned when a field name is empty or whitespace only.
type BlankNameError struct{}

func (e *BlankNameError) Error() string {
	return "field name must not be blank"
}

// Schema is the merged attribute set of a product category: the fields the
// product-type template prescribes plus administrator-added extra fields.
// Template fields are always required and cannot be removed.
type Schema struct {
	fields   map[string]FieldSpec
	template map[string]bool
}

// MergeSchema unions the template (required) partition with the extra
// partition. A name present in both partitions is rejected; template specs
// are unconditionally marked required.
func MergeSchema(required, extra map[string]FieldSpec) (*Schema, error) {
	s := &Schema{
		fields:   make(map[string]FieldSpec, len(required)+len(extra)),
		template: make(map[string]bool, len(required)),
	}
	for name, spec := range required {
		spec.Required = true
		s.fields[name] = spec
		s.template[name] = true
	}
	for name, spec := range extra {
		if _, exists := s.fields[name]; exists {
			return nil, &DuplicateFieldError{Name: name}
		}
		s.fields[name] = spec
	}
	return s, nil
}

// AddExtra adds an administrator-defined field. Blank names and names
// already present anywhere in the merged set are rejected.
func (s *Schema) AddExtra(name string, spec FieldSpec) error {
	if strings.TrimSpace(name) == "" {
		return &BlankNameError{}
	}
	if _, exists := s.fields[name]; exists {
		return &DuplicateFieldError{Name: name}
	}
	s.fields[name] = spec
	return nil
}

// RemoveExtra deletes an extra field by name and reports whether anything
// was removed. Absent names are a no-op; template fields are never removed.
func (s *Schema) RemoveExtra(name string) bool {
	if s.template[name] {
		return false
	}
	if _, exists := s.fields[name]; !exists {
		return false
	}
	delete(s.fields, name)
	return true
}

// Spec looks up a field by name.
func (s *Schema) Spec(name string) (FieldSpec, bool) {
	spec, ok := s.fields[name]
	return spec, ok
}

// IsTemplateField reports whether the field came from the product-type
// template partition.
func (s *Schema) IsTemplateField(name string) bool {
	return s.template[name]
}

// Names returns all field names in sorted order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fields returns a copy of the merged name to spec mapping.
func (s *Schema) Fields() map[string]FieldSpec {
	out := make(map[string]FieldSpec, len(s.fields))
	for name, spec := range s.fields {
		out[name] = spec
	}
	return out
}

// Len returns the number of fields in the merged schema.
func (s *Schema) Len() int {
	return len(s.fields)
}

// ValidationError reports the field-level problems found by Validate.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid values for: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// Validate checks a product's dynamic field values against the schema:
// every required field must carry a value and every supplied value must be
// coercible to its declared datatype.
func (s *Schema) Validate(values map[string]interface{}) error {
	verr := &ValidationError{}
	for _, name := range s.Names() {
		spec := s.fields[name]
		v, ok := values[name]
		if !ok || v == nil || cast.ToString(v) == "" {
			if spec.Required {
				verr.Missing = append(verr.Missing, name)
			}
			continue
		}
		if _, err := ParseValue(spec.Datatype, cast.ToString(v)); err != nil {
			verr.Invalid = append(verr.Invalid, name)
		}
	}
	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return verr
	}
	return nil
}
