package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/pydocstring/diag"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text string
		want string
		kind diag.Kind
	}{
		"missing closing quote": {
			kind: diag.UnterminatedQuote,
			text: "'baz",
			want: "malformed string literal (missing closing quote): 'baz",
		},
		"missing opening quote": {
			kind: diag.UnopenedQuote,
			text: "foo'",
			want: "malformed string literal (missing opening quote): foo'",
		},
		"missing closing brace": {
			kind: diag.UnterminatedBrace,
			text: "{hello",
			want: "invalid value set (missing closing brace): {hello",
		},
		"missing opening brace": {
			kind: diag.UnopenedBrace,
			text: "hello}",
			want: "invalid value set (missing opening brace): hello}",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := diag.New(tc.kind, 7, tc.text)
			assert.Equal(t, tc.want, d.Message)
			assert.Equal(t, 7, d.Line)
			assert.Equal(t, tc.kind, d.Kind)
			assert.Equal(t, "line 7: "+tc.want, d.String())
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range diag.AllKinds() {
		got, err := diag.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := diag.ParseKind("bogus")
	require.ErrorIs(t, err, diag.ErrUnknownKind)
}

func TestKindText(t *testing.T) {
	t.Parallel()

	b, err := diag.UnopenedBrace.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "unopened-brace", string(b))

	var k diag.Kind
	require.NoError(t, k.UnmarshalText([]byte("UNTERMINATED-QUOTE")))
	assert.Equal(t, diag.UnterminatedQuote, k)

	require.Error(t, k.UnmarshalText([]byte("nope")))
}

func TestBag(t *testing.T) {
	t.Parallel()

	t.Run("keeps discovery order", func(t *testing.T) {
		t.Parallel()

		var b diag.Bag

		b.Add(diag.New(diag.UnterminatedQuote, 23, "'baz"))
		b.Add(diag.New(diag.UnopenedQuote, 14, "foo'"))

		require.Equal(t, 2, b.Len())

		items := b.Items()
		assert.Equal(t, 23, items[0].Line)
		assert.Equal(t, 14, items[1].Line)
	})

	t.Run("sort by line is stable", func(t *testing.T) {
		t.Parallel()

		var b diag.Bag

		b.Add(
			diag.New(diag.UnterminatedBrace, 9, "{a"),
			diag.New(diag.UnopenedQuote, 3, "x'"),
			diag.New(diag.UnterminatedQuote, 3, "'y"),
		)
		b.SortByLine()

		items := b.Items()
		assert.Equal(t, []int{3, 3, 9}, []int{items[0].Line, items[1].Line, items[2].Line})
		assert.Equal(t, diag.UnopenedQuote, items[0].Kind)
		assert.Equal(t, diag.UnterminatedQuote, items[1].Kind)
	})

	t.Run("merge and copy", func(t *testing.T) {
		t.Parallel()

		var a, b diag.Bag

		a.Add(diag.New(diag.UnopenedBrace, 1, "x}"))
		b.Add(diag.New(diag.UnterminatedBrace, 2, "{y"))
		a.Merge(&b)
		a.Merge(nil)

		items := a.Items()
		require.Len(t, items, 2)

		items[0].Line = 99
		assert.Equal(t, 1, a.Items()[0].Line, "Items should return a copy")
	})
}
