package fieldschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataType(t *testing.T) {
	assert.Equal(t, Text, ParseDataType("string"))
	assert.Equal(t, Integer, ParseDataType("integer"))
	assert.Equal(t, Decimal, ParseDataType("double"))
	// unknown wire values degrade to text
	assert.Equal(t, Text, ParseDataType("timestamp"))
	assert.Equal(t, Text, ParseDataType(""))
}

func TestDataTypeJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Decimal)
	require.NoError(t, err)
	assert.Equal(t, `"double"`, string(b))

	var d DataType
	require.NoError(t, json.Unmarshal([]byte(`"integer"`), &d))
	assert.Equal(t, Integer, d)
}

func TestInputKind(t *testing.T) {
	assert.Equal(t, InputKind{Numeric: true, Step: "1"}, Integer.InputKind())
	assert.Equal(t, InputKind{Numeric: true, Step: "0.01"}, Decimal.InputKind())
	assert.Equal(t, InputKind{}, Text.InputKind())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "12.50", FormatValue(Decimal, 12.5))
	assert.Equal(t, "0.00", FormatValue(Decimal, 0))
	assert.Equal(t, "42", FormatValue(Integer, 42))
	assert.Equal(t, "42", FormatValue(Integer, 42.0))
	assert.Equal(t, "ST52", FormatValue(Text, "ST52"))
}

func TestParseValueRoundTrip(t *testing.T) {
	v, err := ParseValue(Integer, FormatValue(Integer, 42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = ParseValue(Decimal, "12.5")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	_, err = ParseValue(Integer, "12.5")
	assert.Error(t, err)
	_, err = ParseValue(Decimal, "abc")
	assert.Error(t, err)

	v, err = ParseValue(Text, "12.5")
	require.NoError(t, err)
	assert.Equal(t, "12.5", v)
}
