package extract

import (
	"errors"
	"reflect"
	"testing"
)

func TestJSON_DirectParse(t *testing.T) {
	got, err := JSON(`  {"items": []}  `)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := map[string]any{"items": []any{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("JSON() = %#v, want %#v", got, want)
	}
}

func TestJSON_FencedBlock(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"plain fence", "```\n{\"ok\":true}\n```"},
		{"language tag", "```json\n{\"ok\":true}\n```"},
		{"trailing prose after fence", "```json\n{\"ok\":true}\n``` hope that helps"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := JSON(tc.in)
			if err != nil {
				t.Fatalf("JSON(%q) error = %v", tc.in, err)
			}
			m, ok := got.(map[string]any)
			if !ok || m["ok"] != true {
				t.Fatalf("JSON(%q) = %#v, want {ok:true}", tc.in, got)
			}
		})
	}
}

func TestJSON_UnterminatedFenceParsesInterior(t *testing.T) {
	// A lone opening fence has no closing marker after the first newline,
	// so the text is kept as-is and the span search takes over.
	got, err := JSON("```json\n{\"a\":1}")
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	m := got.(map[string]any)
	if m["a"] != float64(1) {
		t.Fatalf("got %#v, want {a:1}", got)
	}
}

func TestJSON_ProseWrappedObject(t *testing.T) {
	got, err := JSON(`sure! {"items": []}`)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := map[string]any{"items": []any{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("JSON() = %#v, want %#v", got, want)
	}
}

func TestJSON_ArrayFallback(t *testing.T) {
	got, err := JSON(`the list: [1, 2, 3] done`)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := []any{float64(1), float64(2), float64(3)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("JSON() = %#v, want %#v", got, want)
	}
}

func TestJSON_ObjectPreferredOverArray(t *testing.T) {
	// Both spans exist; the object span wins even though the array starts first.
	got, err := JSON(`[1,2] and also {"a":1}`)
	if err == nil {
		if _, ok := got.(map[string]any); !ok {
			t.Fatalf("expected object span to win, got %#v", got)
		}
		return
	}
	// The greedy object span here is `{"a":1}` which parses fine.
	t.Fatalf("JSON() error = %v", err)
}

func TestJSON_NoJSONAtAll(t *testing.T) {
	_, err := JSON("not json at all")
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("JSON() error = %v, want ErrNoJSON", err)
	}
}

func TestJSON_GreedySpanOverMatch(t *testing.T) {
	// Two separate objects produce one over-wide span that fails to parse.
	// The heuristic reports failure rather than guessing.
	_, err := JSON(`{"a":1} and {"b":2}`)
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("JSON() error = %v, want ErrNoJSON", err)
	}
}

func TestJSON_EmptyInput(t *testing.T) {
	_, err := JSON("   ")
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("JSON() error = %v, want ErrNoJSON", err)
	}
}
