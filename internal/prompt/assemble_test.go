package prompt

import (
	"strings"
	"testing"

	"github.com/Miladattar/content-craft-persian/internal/pack"
)

func testPack() pack.PromptPack {
	return pack.PromptPack{
		Globals: pack.Globals{
			System:     "global system",
			Guardrails: []string{"اول", "دوم"},
		},
		Templates: map[string]pack.Template{
			"Story": {
				System: "story system",
				User:   "brief:\n{{brief}}\nidea:\n{{idea}}\nhooks:\n{{hooks}}",
			},
		},
	}
}

func TestAssemble_SystemMessageOrder(t *testing.T) {
	msgs := Assemble(testPack(), "Story", Vars{})

	want := "global system\n- اول\n- دوم\nstory system"
	if msgs.System != want {
		t.Errorf("system message = %q, want %q", msgs.System, want)
	}
}

func TestAssemble_MissingTemplateIsNotAnError(t *testing.T) {
	msgs := Assemble(testPack(), "Fortune", Vars{Brief: map[string]any{}})

	if msgs.User != "" {
		t.Errorf("user message for absent template = %q, want empty", msgs.User)
	}
	// The template slot still contributes a (empty) line.
	if !strings.HasSuffix(msgs.System, "- دوم\n") {
		t.Errorf("system message should end with empty template line, got %q", msgs.System)
	}
}

func TestAssemble_Substitution(t *testing.T) {
	msgs := Assemble(testPack(), "Story", Vars{
		Brief: map[string]any{"goal": "sales"},
		Idea:  Fields{"title": "ایده"},
		Hooks: []string{"قلاب ۱", "قلاب ۲"},
	})

	if !strings.Contains(msgs.User, "\"goal\": \"sales\"") {
		t.Errorf("brief not substituted as pretty JSON: %q", msgs.User)
	}
	if !strings.Contains(msgs.User, "\"title\": \"ایده\"") {
		t.Errorf("idea not substituted: %q", msgs.User)
	}
	if !strings.Contains(msgs.User, "قلاب ۱\nقلاب ۲") {
		t.Errorf("hooks not joined as plain text: %q", msgs.User)
	}
	if strings.Contains(msgs.User, "{{") {
		t.Errorf("unsubstituted placeholder remains: %q", msgs.User)
	}
}

func TestAssemble_FirstOccurrenceOnly(t *testing.T) {
	p := testPack()
	p.Templates["Story"] = pack.Template{User: "{{brief}} and again {{brief}}"}

	msgs := Assemble(p, "Story", Vars{Brief: map[string]any{}})
	if !strings.Contains(msgs.User, "and again {{brief}}") {
		t.Errorf("only the first occurrence should be replaced, got %q", msgs.User)
	}
}

func TestAssemble_NilVarLeavesPlaceholder(t *testing.T) {
	msgs := Assemble(testPack(), "Story", Vars{Brief: map[string]any{}})
	if !strings.Contains(msgs.User, "{{idea}}") {
		t.Errorf("placeholder not owned by caller should remain, got %q", msgs.User)
	}
}

func TestFieldsSanitized(t *testing.T) {
	f := Fields{
		"title":  "x",
		"count":  float64(3),
		"flag":   true,
		"tags":   []any{"a", "b"},
		"nested": map[string]any{"drop": "me"},
		"mixed":  []any{"a", map[string]any{}},
	}

	got := f.Sanitized()
	if _, ok := got["nested"]; ok {
		t.Error("nested object should be dropped")
	}
	if _, ok := got["mixed"]; ok {
		t.Error("array with non-scalar items should be dropped")
	}
	for _, key := range []string{"title", "count", "flag", "tags"} {
		if _, ok := got[key]; !ok {
			t.Errorf("scalar field %q should survive", key)
		}
	}
}
