package generate

import (
	"fmt"

	"github.com/Miladattar/content-craft-persian/internal/prompt"
)

// demoFormats are cycled through when synthesizing idea stubs.
var demoFormats = []string{"رِیل", "پست", "توییت", "نوشته"}

// DemoBacklog returns a fixed-shape idea list used when no LLM is
// configured. The payload conforms to the bulk-ideas schema.
func DemoBacklog() map[string]any {
	items := make([]map[string]any, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, map[string]any{
			"title":  fmt.Sprintf("ایده شماره %d", i+1),
			"format": demoFormats[i%len(demoFormats)],
			"score":  70 + (i % 20),
		})
	}
	return map[string]any{"items": items}
}

// DemoScript returns a fixed-shape script payload used when no LLM is
// configured, echoing the title and format from the request when present.
func DemoScript(idea prompt.Fields) map[string]any {
	return map[string]any{
		"id":         "demo-1",
		"title":      idea.Str("title", "نمونه اسکریپت"),
		"technique":  "suspense",
		"format":     idea.Str("format", "رِیل"),
		"blocks":     map[string]any{},
		"hooks":      "قلاب کوتاه",
		"beats":      []string{"هوک", "بدنه", "نتیجه"},
		"planSilent": []string{"کات", "نمای نزدیک"},
		"narration":  []string{"جمله ۱", "جمله ۲", "CTA"},
		"cta":        "برای نتایج بیشتر فالو کن",
	}
}
