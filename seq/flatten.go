package seq

// Flatten recursively collects the leaf values of a nested []any structure,
// discarding the nesting itself. A non-slice argument yields a single-leaf
// result.
func Flatten(items any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
		default:
			out = append(out, val)
		}
	}
	flatten(items)
	return out
}
