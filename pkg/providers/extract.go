package providers

import "sort"

// Extraction turns the heterogeneous JSON shapes providers return into a
// flat sequence of raw model objects. The strategies form an explicit
// ordered list so the probing behavior stays auditable and testable in
// isolation.

// extractStrategy is one way of locating the model sequence in a decoded
// response body.
type extractStrategy struct {
	name    string
	extract func(body any) ([]any, bool)
}

// extractStrategies is the fixed probe order: the body itself, then the
// well-known wrapper fields, then a scan of all top-level values.
var extractStrategies = []extractStrategy{
	{"array", func(body any) ([]any, bool) {
		seq, ok := body.([]any)
		return seq, ok
	}},
	{"models", fieldSequence("models")},
	{"data", fieldSequence("data")},
	{"result", fieldSequence("result")},
	{"items", fieldSequence("items")},
	{"scan", func(body any) ([]any, bool) {
		obj, ok := body.(map[string]any)
		if !ok {
			return nil, false
		}
		// Sorted keys keep the scan deterministic; decoded JSON maps
		// have no stable order of their own.
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if seq, ok := obj[k].([]any); ok {
				return seq, true
			}
		}
		return nil, false
	}},
}

// fieldSequence builds a strategy that probes a single wrapper field.
func fieldSequence(field string) func(body any) ([]any, bool) {
	return func(body any) ([]any, bool) {
		obj, ok := body.(map[string]any)
		if !ok {
			return nil, false
		}
		seq, ok := obj[field].([]any)
		return seq, ok
	}
}

// extractModelList applies the strategies in order and returns the raw
// model objects of the first match. Sequence entries that are not objects
// are dropped.
func extractModelList(body any) ([]map[string]any, bool) {
	for _, strategy := range extractStrategies {
		seq, ok := strategy.extract(body)
		if !ok {
			continue
		}
		entries := make([]map[string]any, 0, len(seq))
		for _, item := range seq {
			if entry, ok := item.(map[string]any); ok {
				entries = append(entries, entry)
			}
		}
		return entries, true
	}
	return nil, false
}
