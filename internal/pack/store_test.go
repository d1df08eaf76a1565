package pack

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "prompts.runtime.json"), nil)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return s
}

func TestGet_FallsBackToDefault(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.Version != 1 {
		t.Errorf("default pack version = %d, want 1", p.Version)
	}
	if p.Globals.System == "" {
		t.Error("default pack has empty global system prompt")
	}
	if _, ok := p.Templates["Idea120"]; !ok {
		t.Error("default pack missing Idea120 template")
	}
}

func TestGet_Idempotent(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	second, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("two reads returned different packs:\n%s\n%s", a, b)
	}
}

func TestSet_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	want, err := s.Set(func(prev PromptPack) PromptPack {
		prev.Version = 7
		prev.Globals.System = "updated"
		return prev
	})
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(got.Globals, want.Globals) || got.Version != want.Version {
		t.Errorf("Get() after Set() = %+v, want %+v", got, want)
	}
}

func TestGet_CorruptRuntimeIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.runtime.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(path, nil)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	_, err = s.Get()
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Get() error = %v, want ErrUnavailable", err)
	}
}

func TestApplyPatch_MergesAndBumpsVersion(t *testing.T) {
	s := newTestStore(t)

	patch := Patch{
		Templates: map[string]Template{
			"Review": {System: "sys", User: "{{brief}}"},
		},
		Hooks: map[string][]Hook{
			"Review": {{ID: "r1", Text: "قلاب"}},
		},
	}

	next, err := s.ApplyPatch(patch)
	if err != nil {
		t.Fatalf("ApplyPatch() error = %v", err)
	}

	if next.Version != 2 {
		t.Errorf("version = %d, want 2 (bumped from default 1)", next.Version)
	}
	if next.Templates["Review"].System != "sys" {
		t.Error("patched template not merged")
	}
	if _, ok := next.Templates["Idea120"]; !ok {
		t.Error("existing templates must survive a partial patch")
	}
	if len(next.Hooks["Review"]) != 1 {
		t.Error("patched hook bank not merged")
	}
	if next.UpdatedAt.IsZero() {
		t.Error("updatedAt not set")
	}
}

func TestApplyPatch_ExplicitVersionWins(t *testing.T) {
	s := newTestStore(t)

	v := 42
	next, err := s.ApplyPatch(Patch{Version: &v})
	if err != nil {
		t.Fatalf("ApplyPatch() error = %v", err)
	}
	if next.Version != 42 {
		t.Errorf("version = %d, want 42", next.Version)
	}
}

func TestPatchApply_DoesNotAliasPrev(t *testing.T) {
	prev := PromptPack{
		Version:   1,
		Templates: map[string]Template{"Story": {System: "a"}},
		Hooks:     map[string][]Hook{"Story": {{ID: "s1", Text: "x"}}},
	}

	next := Patch{
		Templates: map[string]Template{"Story": {System: "b"}},
	}.Apply(prev, time.Now())

	if prev.Templates["Story"].System != "a" {
		t.Error("patch mutated the previous pack's template map")
	}
	if next.Templates["Story"].System != "b" {
		t.Error("patch not applied to the next pack")
	}
}
