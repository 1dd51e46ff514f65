package rng

// Weighted picks values with probability proportional to their weight.
// The zero value is ready to use.
type Weighted[T any] struct {
	items []weightedItem[T]
	sum   float64
}

type weightedItem[T any] struct {
	value  T
	weight float64
}

// Add registers value with the given weight. Non-positive weights are
// ignored.
func (w *Weighted[T]) Add(value T, weight float64) *Weighted[T] {
	if weight <= 0 {
		return w
	}
	w.items = append(w.items, weightedItem[T]{value, weight})
	w.sum += weight
	return w
}

// Len returns the number of registered values.
func (w *Weighted[T]) Len() int { return len(w.items) }

// Sum returns the total weight.
func (w *Weighted[T]) Sum() float64 { return w.sum }

// Clear removes every value.
func (w *Weighted[T]) Clear() {
	w.items = w.items[:0]
	w.sum = 0
}

// Next draws a value. ok is false when nothing has been added.
func (w *Weighted[T]) Next(r *Rand) (value T, ok bool) {
	if w.sum <= 0 {
		return value, false
	}
	p := r.Float64() * w.sum
	for _, it := range w.items {
		p -= it.weight
		if p <= 0 {
			return it.value, true
		}
	}
	return w.items[len(w.items)-1].value, true
}
