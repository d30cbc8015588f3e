package textgrid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"flash-ca/internal/core"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	input := "11111\n19991\n19191\n19991\n11111\n"
	g, err := ParseString(input)
	require.NoError(t, err)
	assert.Equal(t, 5, g.W)
	assert.Equal(t, 5, g.H)

	if diff := cmp.Diff(input, Format(g)); diff != "" {
		t.Fatalf("format mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTrimsSurroundingWhitespace(t *testing.T) {
	g, err := Parse(strings.NewReader("\n\n    123\n456\r\n  \n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, g.Levels())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
		line  int
		col   int
	}{
		{"empty", "", ErrEmpty, 0, 0},
		{"whitespace only", " \n\t\n", ErrEmpty, 0, 0},
		{"letter", "123\n4x6\n", ErrNonDigit, 2, 2},
		{"minus sign", "-12", ErrNonDigit, 1, 1},
		{"short row", "123\n45\n", ErrRaggedRow, 2, 0},
		{"blank interior row", "12\n\n34", ErrRaggedRow, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ParseString(tc.input)
			assert.Nil(t, g)
			require.ErrorIs(t, err, tc.want)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.line, perr.Line)
			assert.Equal(t, tc.col, perr.Col)
		})
	}
}

func TestFormatMarksOverThreshold(t *testing.T) {
	g, err := core.NewGrid(3, 1, []int{0, 9, 9})
	require.NoError(t, err)
	g.Cells()[2].Level = 12

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))
	assert.Equal(t, "09*\n", buf.String())
}
