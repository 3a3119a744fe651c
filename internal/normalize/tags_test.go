package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple hash prefixed", "#cats", []string{"cats"}},
		{"multiple tags", "#cats #dogs", []string{"cats", "dogs"}},
		{"no leading hash", "cats#dogs", []string{"cats", "dogs"}},
		{"whitespace trimmed", "#  cats  # dogs ", []string{"cats", "dogs"}},
		{"duplicates removed", "#cats#cats#dogs", []string{"cats", "dogs"}},
		{"sorted output", "#zebra#apple#mango", []string{"apple", "mango", "zebra"}},
		{"invalid characters dropped", "#good#bad tag#also-bad#ok_2", []string{"good", "ok_2"}},
		{"empty input", "", []string{}},
		{"only hashes", "###", []string{}},
		{"underscores allowed", "#snake_case", []string{"snake_case"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tags(tt.input))
		})
	}
}

func TestEncodeDecodeTags(t *testing.T) {
	encoded, err := EncodeTags([]string{"cats", "dogs"})
	require.NoError(t, err)
	assert.Equal(t, `["cats","dogs"]`, encoded)

	assert.Equal(t, []string{"cats", "dogs"}, DecodeTags(encoded))
}

func TestEncodeTags_Nil(t *testing.T) {
	encoded, err := EncodeTags(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, encoded)
}

func TestDecodeTags_Empty(t *testing.T) {
	assert.Equal(t, []string{}, DecodeTags(""))
}

func TestDecodeTags_Malformed(t *testing.T) {
	// Anything that is not a JSON string array decodes to empty.
	assert.Equal(t, []string{}, DecodeTags("cats"))
	assert.Equal(t, []string{}, DecodeTags("#cats #dogs"))
	assert.Equal(t, []string{}, DecodeTags(`{"cats":1}`))
}

func TestDecodeTags_NullJSON(t *testing.T) {
	assert.Equal(t, []string{}, DecodeTags("null"))
}
