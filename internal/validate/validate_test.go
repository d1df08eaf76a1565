package validate

import (
	"strings"
	"testing"

	"github.com/Miladattar/content-craft-persian/internal/schema"
)

func TestResponseValid(t *testing.T) {
	raw := "```json\n{\"items\":[{\"title\":\"ایده اول\"}]}\n```"
	out := Response(raw, schema.Ideas())
	if !out.OK {
		t.Fatalf("expected ok, issues: %v", out.Issues)
	}
	m, ok := out.Value.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", out.Value)
	}
	if _, ok := m["items"]; !ok {
		t.Fatal("missing items in parsed value")
	}
}

func TestResponseNoJSON(t *testing.T) {
	out := Response("متأسفانه نمی‌توانم پاسخ دهم.", schema.Ideas())
	if out.OK {
		t.Fatal("expected failure")
	}
	if out.Raw != nil {
		t.Fatalf("expected nil raw, got %v", out.Raw)
	}
	if len(out.Issues) != 1 {
		t.Fatalf("expected one issue, got %d", len(out.Issues))
	}
}

func TestResponseSchemaMismatch(t *testing.T) {
	out := Response(`{"items":[{"n":1}]}`, schema.Ideas())
	if out.OK {
		t.Fatal("expected failure")
	}
	if out.Raw == nil {
		t.Fatal("raw document should be preserved on mismatch")
	}
	if len(out.Issues) == 0 {
		t.Fatal("expected issues")
	}
	found := false
	for _, is := range out.Issues {
		if strings.Contains(is.Path, "/items/0") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an issue under /items/0, got %v", out.Issues)
	}
}

func TestResponseProseWrappedObject(t *testing.T) {
	raw := "خروجی شما:\n{\"hook\":\"قلاب\",\"story\":\"روایت\",\"cta\":\"فالو\"}\nموفق باشید"
	out := Response(raw, schema.ForTemplate("Story"))
	if !out.OK {
		t.Fatalf("expected ok, issues: %v", out.Issues)
	}
}
