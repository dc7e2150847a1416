package omap

// A selector derives the grouping key for an item, or reports false to
// skip the item. The literal-vs-derived distinction is resolved once per
// call, before the loop, never per item.
type selector[T any, K comparable] func(T) (K, bool)

func derived[T any, K comparable](key func(T) K) selector[T, K] {
	return func(item T) (K, bool) {
		return key(item), true
	}
}

func literal[F, V comparable](field F) selector[map[F]V, V] {
	return func(item map[F]V) (V, bool) {
		value, ok := item[field]
		return value, ok
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexing (one value per key, last write wins)
// ─────────────────────────────────────────────────────────────────────────────

// Index builds an ordered map from items keyed by the value derived by key.
// When several items share a key, the last one wins; the key keeps the
// position of its first occurrence.
func Index[T any, K comparable](items []T, key func(T) K) *Map[K, T] {
	return indexInto(items, derived(key), func(item T) T { return item })
}

// IndexValues is [Index] with the stored value produced by transform
// instead of the item itself.
func IndexValues[T any, K comparable, U any](items []T, key func(T) K, transform func(T) U) *Map[K, U] {
	return indexInto(items, derived(key), transform)
}

// IndexField builds an ordered map from record-like items keyed by the
// value each item holds under field. Items lacking the field are silently
// skipped.
func IndexField[F, V comparable](items []map[F]V, field F) *Map[V, map[F]V] {
	return indexInto(items, literal[F, V](field), func(item map[F]V) map[F]V { return item })
}

func indexInto[T any, K comparable, U any](items []T, sel selector[T, K], transform func(T) U) *Map[K, U] {
	out := New[K, U]()
	for _, item := range items {
		k, ok := sel(item)
		if !ok {
			continue
		}
		out.Set(k, transform(item))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping (every value kept, in encounter order)
// ─────────────────────────────────────────────────────────────────────────────

// Group builds an ordered map from items keyed by the value derived by key,
// collecting every item under its key in encounter order. Key order in the
// result follows first encounter.
func Group[T any, K comparable](items []T, key func(T) K) *Map[K, []T] {
	return groupInto(items, derived(key), func(item T) T { return item })
}

// GroupValues is [Group] with each collected value produced by transform
// instead of the item itself.
func GroupValues[T any, K comparable, U any](items []T, key func(T) K, transform func(T) U) *Map[K, []U] {
	return groupInto(items, derived(key), transform)
}

// GroupField groups record-like items by the value each holds under field.
// Items lacking the field are silently skipped.
func GroupField[F, V comparable](items []map[F]V, field F) *Map[V, []map[F]V] {
	return groupInto(items, literal[F, V](field), func(item map[F]V) map[F]V { return item })
}

func groupInto[T any, K comparable, U any](items []T, sel selector[T, K], transform func(T) U) *Map[K, []U] {
	out := New[K, []U]()
	for _, item := range items {
		k, ok := sel(item)
		if !ok {
			continue
		}
		group, _ := out.Get(k)
		out.Set(k, append(group, transform(item)))
	}
	return out
}
