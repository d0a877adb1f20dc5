package csvdec

import (
	"errors"
	"strings"
	"testing"
)

func TestEachTokenStripsDelimiter(t *testing.T) {
	t.Parallel()
	var tokens []string
	err := EachToken(strings.NewReader("a\nbb\nccc\n"), '\n', func(token []byte) error {
		tokens = append(tokens, string(token))
		return nil
	})
	if err != nil {
		t.Fatalf("each token: %v", err)
	}
	want := []string{"a", "bb", "ccc"}
	if len(tokens) != len(want) {
		t.Fatalf("want %v, got %v", want, tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("want %v, got %v", want, tokens)
		}
	}
}

func TestEachTokenFinalTokenWithoutNewline(t *testing.T) {
	t.Parallel()
	var tokens []string
	err := EachToken(strings.NewReader("a\nlast"), '\n', func(token []byte) error {
		tokens = append(tokens, string(token))
		return nil
	})
	if err != nil {
		t.Fatalf("each token: %v", err)
	}
	if len(tokens) != 2 || tokens[1] != "last" {
		t.Fatalf("the unterminated final token must still be yielded, got %v", tokens)
	}
}

func TestEachTokenNoPhantomAfterTrailingDelimiter(t *testing.T) {
	t.Parallel()
	count := 0
	err := EachToken(strings.NewReader("only\n"), '\n', func([]byte) error {
		count++
		return nil
	})
	if err != nil || count != 1 {
		t.Fatalf("expected exactly one token, got %d (err %v)", count, err)
	}
}

func TestEachTokenCallbackErrorHalts(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	count := 0
	err := EachToken(strings.NewReader("a\nb\nc\n"), '\n', func([]byte) error {
		count++
		if count == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error to propagate, got %v", err)
	}
	if count != 2 {
		t.Fatalf("iteration must halt at the failing token, saw %d", count)
	}
}

func TestGrammarDispatchesByIndex(t *testing.T) {
	t.Parallel()
	var got []string
	column := func(field []byte, index int) error {
		got = append(got, string(field))
		if index != len(got)-1 {
			t.Fatalf("column %q dispatched with index %d", field, index)
		}
		return nil
	}
	grammar := Grammar{Sep: ';', Columns: []ColumnFunc{column, column, column}}
	if err := grammar.Apply([]byte("x;;z")); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(got) != 3 || got[0] != "x" || got[1] != "" || got[2] != "z" {
		t.Fatalf("unexpected fields %v", got)
	}
}

func TestGrammarColumnCountMismatch(t *testing.T) {
	t.Parallel()
	ok := func([]byte, int) error { return nil }
	grammar := Grammar{Sep: ';', Columns: []ColumnFunc{ok, ok}}
	if err := grammar.Apply([]byte("a;b;c")); !errors.Is(err, ErrColumnCount) {
		t.Fatalf("expected ErrColumnCount, got %v", err)
	}
	if err := grammar.Apply([]byte("a")); !errors.Is(err, ErrColumnCount) {
		t.Fatalf("expected ErrColumnCount, got %v", err)
	}
}

func TestGrammarFirstErrorAborts(t *testing.T) {
	t.Parallel()
	reject := errors.New("reject")
	calls := 0
	count := func([]byte, int) error { calls++; return nil }
	fail := func([]byte, int) error { calls++; return reject }
	grammar := Grammar{Sep: ';', Columns: []ColumnFunc{count, fail, count}}
	if err := grammar.Apply([]byte("a;b;c")); !errors.Is(err, reject) {
		t.Fatalf("expected reject, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("columns after the failure must not run, saw %d calls", calls)
	}
}

func TestDatasetReaderSkipsHeaderAndReportsRejects(t *testing.T) {
	t.Parallel()
	input := "id;name\n1;ok\n2\n3;fine\n"
	var committed, rejected []string
	reader := DatasetReader{
		Grammar: Grammar{Sep: ';', Columns: []ColumnFunc{
			func([]byte, int) error { return nil },
			func([]byte, int) error { return nil },
		}},
		AfterLine: func(raw []byte, lineErr error) error {
			if lineErr != nil {
				rejected = append(rejected, string(raw))
				return nil
			}
			committed = append(committed, string(raw))
			return nil
		},
	}
	if err := reader.Read(strings.NewReader(input)); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(committed) != 2 || committed[0] != "1;ok" || committed[1] != "3;fine" {
		t.Fatalf("unexpected commits %v", committed)
	}
	if len(rejected) != 1 || rejected[0] != "2" {
		t.Fatalf("the malformed line must be rejected verbatim, got %v", rejected)
	}
}

func TestDatasetReaderBeforeLineSeesRawLine(t *testing.T) {
	t.Parallel()
	var raws []string
	reader := DatasetReader{
		Grammar: Grammar{Sep: ';', Columns: []ColumnFunc{func([]byte, int) error { return nil }}},
		BeforeLine: func(raw []byte) {
			raws = append(raws, string(raw))
		},
		AfterLine: func([]byte, error) error { return nil },
	}
	if err := reader.Read(strings.NewReader("header\nalpha\nbeta")); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(raws) != 2 || raws[0] != "alpha" || raws[1] != "beta" {
		t.Fatalf("before-line hook missed lines: %v", raws)
	}
}

func TestDatasetReaderCRLF(t *testing.T) {
	t.Parallel()
	var fields []string
	reader := DatasetReader{
		Grammar: Grammar{Sep: ';', Columns: []ColumnFunc{func(f []byte, _ int) error {
			fields = append(fields, string(f))
			return nil
		}}},
		AfterLine: func([]byte, error) error { return nil },
	}
	if err := reader.Read(strings.NewReader("h\r\nvalue\r\n")); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(fields) != 1 || fields[0] != "value" {
		t.Fatalf("carriage return must be stripped, got %v", fields)
	}
}
