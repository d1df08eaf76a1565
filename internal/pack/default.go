package pack

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed default_pack.json
var defaultPackJSON []byte

// Default returns the built-in seed pack. It is used whenever no runtime
// pack has ever been written.
func Default() (PromptPack, error) {
	var p PromptPack
	if err := json.Unmarshal(defaultPackJSON, &p); err != nil {
		return PromptPack{}, fmt.Errorf("embedded default pack is invalid: %w", err)
	}
	return p, nil
}
