package providers

import (
	"fmt"
	"strings"

	"github.com/mepankajsingh/modelmap/pkg/catalogs"
)

// chatHints are the id/name substrings that mark an entry chat-capable
// when it carries no explicit type field.
var chatHints = []string{"chat", "claude", "sonnet", "assistant"}

// chatCapable reports whether a raw entry describes a chat model. An
// explicit type field is authoritative; otherwise capability is inferred
// from the entry's identifier.
func chatCapable(entry map[string]any) bool {
	if t, ok := stringField(entry, "type"); ok {
		return strings.EqualFold(t, "chat")
	}

	probe := strings.ToLower(firstString(entry, "id", "name"))
	for _, hint := range chatHints {
		if strings.Contains(probe, hint) {
			return true
		}
	}
	return false
}

// mapEntry converts a raw model object into a catalog record. Entries
// without a resolvable identifier are dropped.
func (a *Adapter) mapEntry(entry map[string]any) (catalogs.Model, bool) {
	id := modelID(entry)
	if id == "" {
		return catalogs.Model{}, false
	}

	contextLength, hasContext := numberField(entry, "context_length", "context")

	maxTokens := catalogs.DefaultMaxTokens
	if hasContext {
		maxTokens = int(contextLength)
	}

	maxCompletion := catalogs.DefaultMaxCompletionTokens
	if hasContext && int(contextLength) < maxCompletion {
		maxCompletion = int(contextLength)
	}

	return catalogs.Model{
		Name:                id,
		Label:               composeLabel(entry, id, contextLength, hasContext),
		Provider:            string(a.provider.ID),
		MaxTokenAllowed:     maxTokens,
		MaxCompletionTokens: maxCompletion,
	}, true
}

// modelID resolves the entry identifier: id, model_id, name, then a
// stringified _id.
func modelID(entry map[string]any) string {
	if id := firstString(entry, "id", "model_id", "name"); id != "" {
		return id
	}
	if raw, ok := entry["_id"]; ok && raw != nil {
		return fmt.Sprint(raw)
	}
	return ""
}

// composeLabel builds the display label: preferred name, optional price
// suffix, optional context-size suffix.
func composeLabel(entry map[string]any, id string, contextLength float64, hasContext bool) string {
	label := firstString(entry, "display_name", "name")
	if label == "" {
		label = id
	}

	if in, out, ok := pricePair(entry); ok {
		label += fmt.Sprintf(" - in:$%.2f out:$%.2f", in, out)
	} else if flat, ok := numberField(entry, "price"); ok {
		label += fmt.Sprintf(" - $%.4f", flat)
	}

	if hasContext {
		label += fmt.Sprintf(" - context %dk", int(contextLength)/1000)
	}

	return label
}

// pricePair probes for paired input/output pricing, top level first, then
// inside a pricing object.
func pricePair(entry map[string]any) (in, out float64, ok bool) {
	if in, inOK := numberField(entry, "input_price"); inOK {
		if out, outOK := numberField(entry, "output_price"); outOK {
			return in, out, true
		}
	}
	pricing, isObj := entry["pricing"].(map[string]any)
	if !isObj {
		return 0, 0, false
	}
	in, inOK := numberField(pricing, "input", "prompt")
	out, outOK := numberField(pricing, "output", "completion")
	if inOK && outOK {
		return in, out, true
	}
	return 0, 0, false
}

// stringField returns the entry's value for key when it is a non-empty
// string.
func stringField(entry map[string]any, key string) (string, bool) {
	s, ok := entry[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// firstString returns the first non-empty string value among keys.
func firstString(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := stringField(entry, key); ok {
			return s
		}
	}
	return ""
}

// numberField returns the first numeric value among keys. Decoded JSON
// numbers arrive as float64.
func numberField(entry map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if n, ok := entry[key].(float64); ok {
			return n, true
		}
	}
	return 0, false
}
