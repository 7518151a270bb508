package parser_test

import (
	"testing"

	"github.com/csonh-lang/csonh/errs"
	"github.com/csonh-lang/csonh/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocuments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  parser.Value
	}{
		{
			name:  "simple key value",
			input: "key: 'value'",
			want:  obj(entry("key", parser.String("value"))),
		},
		{
			name:  "nested object via indentation",
			input: "server:\n  host: 'localhost'\n  port: 8080\n",
			want: obj(entry("server", obj(
				entry("host", parser.String("localhost")),
				entry("port", parser.Int(8080)),
			))),
		},
		{
			name:  "keyword coercion vs quoted literal",
			input: "a: yes\nb: 'NO'\n",
			want: obj(
				entry("a", parser.Bool(true)),
				entry("b", parser.String("NO")),
			),
		},
		{
			name:  "bracketed array",
			input: "vals: [1, 2, 3]",
			want: obj(entry("vals", parser.Array([]parser.Value{
				parser.Int(1), parser.Int(2), parser.Int(3),
			}))),
		},
		{
			name:  "bracketed array newline separated",
			input: "vals: [1\n2]",
			want: obj(entry("vals", parser.Array([]parser.Value{
				parser.Int(1), parser.Int(2),
			}))),
		},
		{
			name:  "bracketed object literal",
			input: "point: {x: 1, y: 2}",
			want: obj(entry("point", obj(
				entry("x", parser.Int(1)),
				entry("y", parser.Int(2)),
			))),
		},
		{
			name:  "empty input is empty object",
			input: "",
			want:  obj(),
		},
		{
			name:  "comment only input is empty object",
			input: "# nothing to see\n",
			want:  obj(),
		},
		{
			name:  "duplicate key last write wins position preserved",
			input: "a: 1\nb: 2\na: 3\n",
			want: obj(
				entry("a", parser.Int(3)),
				entry("b", parser.Int(2)),
			),
		},
		{
			name:  "numeric base round trip",
			input: "vals: [0xFF, 0b11111111, 0o377]",
			want: obj(entry("vals", parser.Array([]parser.Value{
				parser.Int(255), parser.Int(255), parser.Int(255),
			}))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assertValueEqual(t, tt.want, got)
		})
	}
}

func TestParseTripleQuotedDedent(t *testing.T) {
	input := "body: '''\n  Line 1\n  Line 2\n  '''\n"
	got, err := parser.Parse(input)
	require.NoError(t, err)
	v, ok := got.Obj.Get("body")
	require.True(t, ok)
	assert.Equal(t, "Line 1\nLine 2", v.Str)
}

func TestParseEmptyTripleQuoted(t *testing.T) {
	input := "body: ''''''\n"
	got, err := parser.Parse(input)
	require.NoError(t, err)
	v, ok := got.Obj.Get("body")
	require.True(t, ok)
	assert.Equal(t, "", v.Str)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind errs.ParseKind
	}{
		{
			name:     "bareword rejected as value",
			input:    "a: hello",
			wantKind: errs.BarewordRejected,
		},
		{
			name:     "missing separator in bracketed array",
			input:    "[1 2]",
			wantKind: errs.ExpectedSeparator,
		},
		{
			name:     "unclosed array",
			input:    "[1, 2",
			wantKind: errs.UnclosedArray,
		},
		{
			name:     "unclosed object",
			input:    "{a: 1",
			wantKind: errs.UnclosedObject,
		},
		{
			name:     "root must be object or array",
			input:    "42",
			wantKind: errs.RootMustBeObjectOrArray,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			require.Error(t, err)
			var parseErr *errs.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantKind, parseErr.Kind)
		})
	}
}

// obj and entry build expected Object trees without the noise of
// constructing *parser.Object by hand in every test case.
func obj(entries ...parser.Entry) parser.Value {
	o := parser.NewObject()
	for _, e := range entries {
		o.Set(e.Key, e.Value)
	}
	return parser.Obj2Value(o)
}

func entry(key string, val parser.Value) parser.Entry {
	return parser.Entry{Key: key, Value: val}
}

// assertValueEqual compares two Value trees structurally via their
// Entries()/Arr slices, since Object carries an unexported index map
// that go-cmp cannot see into directly.
func assertValueEqual(t *testing.T, want, got parser.Value) {
	t.Helper()
	if diff := cmp.Diff(flatten(want), flatten(got)); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

// flattened is a comparable projection of Value that exposes Object
// contents as an ordered slice instead of an opaque pointer.
type flattened struct {
	Kind  parser.Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Arr   []flattened
	Obj   []flatEntry
}

type flatEntry struct {
	Key   string
	Value flattened
}

func flatten(v parser.Value) flattened {
	f := flattened{Kind: v.Kind, Bool: v.Bool, Int: v.Int, Float: v.Float, Str: v.Str}
	for _, item := range v.Arr {
		f.Arr = append(f.Arr, flatten(item))
	}
	if v.Obj != nil {
		for _, e := range v.Obj.Entries() {
			f.Obj = append(f.Obj, flatEntry{Key: e.Key, Value: flatten(e.Value)})
		}
	}
	return f
}
