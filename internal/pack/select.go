package pack

// DefaultHookLimit bounds how many hooks are fed into a prompt.
const DefaultHookLimit = 5

// SelectHooks filters a hook bank by tone and form and returns the texts of
// the survivors, preserving bank order. Inactive hooks are always dropped;
// an empty tone or form filter matches everything. limit <= 0 means
// DefaultHookLimit. An empty result is valid.
func SelectHooks(hooks []Hook, tone, form string, limit int) []string {
	if limit <= 0 {
		limit = DefaultHookLimit
	}
	texts := make([]string, 0, limit)
	for _, h := range hooks {
		if !h.IsActive() {
			continue
		}
		if tone != "" && h.Tone != tone {
			continue
		}
		if form != "" && h.Form != form {
			continue
		}
		texts = append(texts, h.Text)
		if len(texts) == limit {
			break
		}
	}
	return texts
}
