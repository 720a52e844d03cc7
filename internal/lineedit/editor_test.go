package lineedit

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/modname/internal/errors"
)

const (
	keyBackspace = "\x7f"
	keyUp        = "\x1b[A"
	keyCtrlD     = "\x04"
	keyCtrlC     = "\x03"
)

func TestEditor_SeedIsEditable(t *testing.T) {
	tests := []struct {
		name  string
		seed  string
		input string
		want  string
	}{
		{"append", "test2", "hello\n", "test2hello"},
		{"accept unchanged", "file.txt", "\n", "file.txt"},
		{"carriage return", "file.txt", "2\r", "file.txt2"},
		{"erase everything", "test21", strings.Repeat(keyBackspace, 6) + "\n", ""},
		{"kill line", "report.pdf", "\x15new.pdf\n", "new.pdf"},
		{"no seed", "", "typed\n", "typed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			e := New(strings.NewReader(tt.input), &out)

			require.NoError(t, e.Seed(tt.seed))
			got, err := e.ReadLine("> ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditor_PromptShowsSeed(t *testing.T) {
	var out bytes.Buffer
	e := New(strings.NewReader("\n"), &out)

	require.NoError(t, e.Seed("test21"))
	_, err := e.ReadLine("> ")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "> test21")
}

func TestEditor_SeedsApplyPerLine(t *testing.T) {
	var out bytes.Buffer
	e := New(strings.NewReader("1\n2\n"), &out)

	require.NoError(t, e.Seed("a"))
	first, err := e.ReadLine("> ")
	require.NoError(t, err)

	require.NoError(t, e.Seed("b"))
	second, err := e.ReadLine("> ")
	require.NoError(t, err)

	assert.Equal(t, "a1", first)
	assert.Equal(t, "b2", second)
}

func TestEditor_CRLFLineEndings(t *testing.T) {
	var out bytes.Buffer
	e := New(strings.NewReader("\x15X\r\n\x15Y\r\n\x15Z\r\n"), &out)

	var got []string
	for _, seed := range []string{"a", "b", "c"} {
		require.NoError(t, e.Seed(seed))
		line, err := e.ReadLine("> ")
		require.NoError(t, err, "seed %q", seed)
		got = append(got, line)
	}
	assert.Equal(t, []string{"X", "Y", "Z"}, got)
}

func TestEditor_LineEndings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf", "1\n2\n", []string{"a1", "b2"}},
		{"cr", "1\r2\r", []string{"a1", "b2"}},
		{"crlf", "1\r\n2\r\n", []string{"a1", "b2"}},
		{"empty crlf line", "\x15\r\n2\r\n", []string{"", "b2"}},
		{"lf then crlf", "1\n2\r\n", []string{"a1", "b2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(strings.NewReader(tt.input), io.Discard)

			var got []string
			for _, seed := range []string{"a", "b"} {
				require.NoError(t, e.Seed(seed))
				line, err := e.ReadLine("> ")
				require.NoError(t, err)
				got = append(got, line)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditor_CRLFAtEndOfInput(t *testing.T) {
	e := New(strings.NewReader("\r\n"), io.Discard)
	require.NoError(t, e.Seed("a"))

	line, err := e.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "a", line)

	require.NoError(t, e.Seed("b"))
	_, err = e.ReadLine("> ")
	assert.ErrorIs(t, err, ErrEndOfInput)
}

func TestEditor_SeedRejectsUneditableText(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{"ctrl-c", "a\x03b"},
		{"ctrl-d", "\x04"},
		{"tab", "a\tb"},
		{"newline", "a\nb"},
		{"carriage return", "a\rb"},
		{"escape", "a\x1b[Ab"},
		{"delete", "a\x7f"},
		{"nul", "a\x00"},
		{"invalid utf-8", "caf\xe9"},
		{"replacement character", "a\ufffd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(strings.NewReader("\n"), io.Discard)

			err := e.Seed(tt.seed)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSeedUneditable))
			assert.Empty(t, e.seed.pending, "rejected text must not be queued")
		})
	}
}

func TestEditor_SeedAcceptsPrintableText(t *testing.T) {
	for _, seed := range []string{"ünïcödé.txt", "with space", "日本語", "a\u00a0b"} {
		e := New(strings.NewReader("\n"), io.Discard)
		require.NoError(t, e.Seed(seed))

		line, err := e.ReadLine("> ")
		require.NoError(t, err)
		assert.Equal(t, seed, line)
	}
}

func TestEditor_EndOfInputEndsPromptLine(t *testing.T) {
	var out bytes.Buffer
	e := New(strings.NewReader("A"), &out)
	require.NoError(t, e.Seed(""))

	_, err := e.ReadLine("> ")
	require.ErrorIs(t, err, ErrEndOfInput)
	assert.True(t, strings.HasSuffix(out.String(), "\r\n"), "output %q", out.String())
}

func TestEditor_SeedOverflow(t *testing.T) {
	e := New(strings.NewReader(""), io.Discard)

	require.NoError(t, e.Seed(strings.Repeat("x", SeedCapacity)))

	e = New(strings.NewReader(""), io.Discard)
	err := e.Seed(strings.Repeat("x", SeedCapacity+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSeedOverflow))
}

func TestEditor_EndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		seed  string
		input string
	}{
		{"input exhausted", "file", ""},
		{"input ends mid line", "file", "abc"},
		{"ctrl-d on empty line", "", keyCtrlD},
		{"ctrl-c", "file", keyCtrlC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(strings.NewReader(tt.input), io.Discard)
			require.NoError(t, e.Seed(tt.seed))

			_, err := e.ReadLine("> ")
			assert.ErrorIs(t, err, ErrEndOfInput)
		})
	}
}

func TestEditor_FailedReadDropsSeed(t *testing.T) {
	e := New(strings.NewReader(""), io.Discard)
	require.NoError(t, e.Seed("stale"))

	_, err := e.ReadLine("> ")
	require.Error(t, err)
	assert.Empty(t, e.seed.pending)
}

func TestEditor_HistoryRecall(t *testing.T) {
	history := NewHistory()
	history.Record("first-name")

	e := New(strings.NewReader(keyUp+"\n"+"\n"), io.Discard, WithHistory(history))

	got, err := e.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "first-name", got)

	// Submitted lines are not recorded implicitly.
	_, err = e.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, []string{"first-name"}, e.History().Entries())
}
