package fieldschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSchemaRejectsDuplicates(t *testing.T) {
	required := map[string]FieldSpec{"hardness": {Datatype: Decimal, Required: true}}
	extra := map[string]FieldSpec{"hardness": {Datatype: Text}}

	_, err := MergeSchema(required, extra)
	require.Error(t, err)
	var dup *DuplicateFieldError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "hardness", dup.Name)
}

func TestMergeSchemaUnion(t *testing.T) {
	required := map[string]FieldSpec{"hardness": {Datatype: Decimal}}
	extra := map[string]FieldSpec{"note": {Datatype: Text}}

	s, err := MergeSchema(required, extra)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	spec, ok := s.Spec("hardness")
	require.True(t, ok)
	assert.True(t, spec.Required, "template fields are forced required")
	assert.True(t, s.IsTemplateField("hardness"))

	spec, ok = s.Spec("note")
	require.True(t, ok)
	assert.False(t, spec.Required)
	assert.False(t, s.IsTemplateField("note"))
}

func TestNamesAreSorted(t *testing.T) {
	s, err := MergeSchema(
		map[string]FieldSpec{"outerDiameter": {Datatype: Integer}, "alloy": {Datatype: Text}},
		map[string]FieldSpec{"note": {Datatype: Text}, "hardness": {Datatype: Decimal}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"alloy", "hardness", "note", "outerDiameter"}, s.Names())
}

func TestMergeSchemaNameMatchIsCaseSensitive(t *testing.T) {
	s, err := MergeSchema(
		map[string]FieldSpec{"Hardness": {Datatype: Decimal}},
		map[string]FieldSpec{"hardness": {Datatype: Text}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestAddExtraValidation(t *testing.T) {
	s, err := MergeSchema(map[string]FieldSpec{"hardness": {Datatype: Decimal}}, nil)
	require.NoError(t, err)

	var blank *BlankNameError
	err = s.AddExtra("   ", FieldSpec{Datatype: Text})
	require.Error(t, err)
	assert.True(t, errors.As(err, &blank))

	// duplicates are checked against the full merged set, not just extras
	var dup *DuplicateFieldError
	err = s.AddExtra("hardness", FieldSpec{Datatype: Text})
	require.Error(t, err)
	assert.True(t, errors.As(err, &dup))

	require.NoError(t, s.AddExtra("note", FieldSpec{Datatype: Text}))
	err = s.AddExtra("note", FieldSpec{Datatype: Integer})
	assert.True(t, errors.As(err, &dup))
}

func TestAddExtraRejectsUnfilteredFixedName(t *testing.T) {
	// a fixed attribute that slipped past FilterFixed into the template
	// partition still blocks an extra field of the same name
	s, err := MergeSchema(map[string]FieldSpec{"weight": {Datatype: Decimal}}, nil)
	require.NoError(t, err)

	var dup *DuplicateFieldError
	err = s.AddExtra("weight", FieldSpec{Datatype: Decimal})
	require.Error(t, err)
	assert.True(t, errors.As(err, &dup))
}

func TestRemoveExtra(t *testing.T) {
	s, err := MergeSchema(
		map[string]FieldSpec{"hardness": {Datatype: Decimal}},
		map[string]FieldSpec{"note": {Datatype: Text}},
	)
	require.NoError(t, err)

	assert.False(t, s.RemoveExtra("absent"), "absent names are a no-op")
	assert.False(t, s.RemoveExtra("hardness"), "template fields stay")
	_, ok := s.Spec("hardness")
	assert.True(t, ok)

	assert.True(t, s.RemoveExtra("note"))
	_, ok = s.Spec("note")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	s, err := MergeSchema(
		map[string]FieldSpec{"hardness": {Datatype: Decimal}},
		map[string]FieldSpec{
			"note":  {Datatype: Text},
			"count": {Datatype: Integer, Required: true},
		},
	)
	require.NoError(t, err)

	require.NoError(t, s.Validate(map[string]interface{}{
		"hardness": "42.5",
		"count":    3,
	}))

	err = s.Validate(map[string]interface{}{
		"hardness": "soft",
	})
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"count"}, verr.Missing)
	assert.Equal(t, []string{"hardness"}, verr.Invalid)
}
