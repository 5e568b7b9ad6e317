package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/flashlingo/internal/exam"
)

func TestDecodeSet(t *testing.T) {
	qs, err := DecodeSet([]byte(sampleSet))
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "She ___ to school every day.", qs[0].Text)
	assert.Equal(t, []string{"go", "goes", "going"}, qs[0].Options)
	assert.Equal(t, 1, qs[0].Answer)
	assert.Equal(t, "هي تذهب", qs[0].Extra["questionAr"])
	assert.Equal(t, "A1", qs[0].Extra["level"])

	assert.Nil(t, qs[1].Extra)
}

func TestDecodeSet_NonStringExtra(t *testing.T) {
	qs, err := DecodeSet([]byte(`[{"question":"q","options":["a","b"],"answer":0,"difficulty":3}]`))
	require.NoError(t, err)
	assert.Equal(t, "3", qs[0].Extra["difficulty"])
}

func TestDecodeSet_Empty(t *testing.T) {
	qs, err := DecodeSet([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestDecodeSet_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{{`},
		{"object not array", `{"question":"q"}`},
		{"missing answer", `[{"question":"q","options":["a","b"]}]`},
		{"one option", `[{"question":"q","options":["a"],"answer":0}]`},
		{"negative answer", `[{"question":"q","options":["a","b"],"answer":-1}]`},
		{"fractional answer", `[{"question":"q","options":["a","b"],"answer":0.5}]`},
		{"empty question", `[{"question":"","options":["a","b"],"answer":0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := DecodeSet([]byte(tt.input))
			assert.Error(t, err)
			assert.Nil(t, qs)
		})
	}
}

func TestDecodeSet_AnswerOutOfRangeIsRecordError(t *testing.T) {
	input := `[
		{"question":"ok","options":["a","b"],"answer":0},
		{"question":"bad","options":["a","b"],"answer":2}
	]`

	_, err := DecodeSet([]byte(input))
	var re *RecordError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 1, re.Index)
	assert.Contains(t, err.Error(), "record 1")
}

func TestEncodeSet_RoundTrip(t *testing.T) {
	in := []exam.Question{
		{Text: "q1", Options: []string{"a", "b"}, Answer: 1, Extra: map[string]string{"explanation": "because"}},
		{Text: "q2", Options: []string{"x", "y", "z"}, Answer: 2},
	}

	data, err := EncodeSet(in)
	require.NoError(t, err)

	out, err := DecodeSet(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
