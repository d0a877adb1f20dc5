package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterUnformatted(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	w := NewWriter(&out, false)
	w.BeginObject()
	w.Field("id", "u1")
	w.Field("name", "Alice")
	w.BeginObject()
	w.Field("id", "u2")
	require.NoError(t, w.Close())
	require.Equal(t, "u1;Alice\nu2\n", out.String())
	require.Equal(t, 2, w.Objects())
}

func TestWriterFormatted(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	w := NewWriter(&out, true)
	w.BeginObject()
	w.Field("id", "u1")
	w.Field("name", "Alice")
	w.BeginObject()
	w.Field("id", "u2")
	require.NoError(t, w.Close())
	require.Equal(t, "--- 1 ---\nid: u1\nname: Alice\n\n--- 2 ---\nid: u2\n", out.String())
}

func TestWriterFieldOutsideObjectIgnored(t *testing.T) {
	t.Parallel()

	w := NewBuffered(false)
	w.Field("id", "stray")
	require.Empty(t, w.Lines())
}

func TestWriterBuffered(t *testing.T) {
	t.Parallel()

	w := NewBuffered(false)
	w.BeginObject()
	w.Field("a", "1")
	w.Field("b", "2")
	require.Equal(t, []string{"1;2"}, w.Lines())
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain", line: "5 LIS x", want: []string{"5", "LIS", "x"}},
		{name: "tabs and runs", line: " 5\t\tLIS  x ", want: []string{"5", "LIS", "x"}},
		{name: "quoted", line: `5 LIS "2023/10/01 00:00:00"`, want: []string{"5", "LIS", "2023/10/01 00:00:00"}},
		{name: "unclosed quote takes rest", line: `9 "Al ice`, want: []string{"9", "Al ice"}},
		{name: "empty quotes", line: `9 ""`, want: []string{"9", ""}},
		{name: "blank", line: "   ", want: nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Tokenize(tc.line))
		})
	}
}

func TestParseScript(t *testing.T) {
	t.Parallel()

	script := strings.Join([]string{
		"1 u1",
		"2F u1 flights",
		"",
		"11 nope",
		"3",
	}, "\n")
	instances, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, instances, 5)

	require.True(t, instances[0].Runnable())
	require.Equal(t, 1, instances[0].Type)
	require.False(t, instances[0].Formatted)

	require.True(t, instances[1].Runnable())
	require.True(t, instances[1].Formatted)
	require.Equal(t, 2, instances[1].Line)

	require.False(t, instances[2].Runnable())
	require.False(t, instances[3].Runnable())

	// Known type, missing argument: the type sticks but Args stays nil.
	require.Equal(t, 3, instances[4].Type)
	require.False(t, instances[4].Runnable())
}
