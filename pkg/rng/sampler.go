package rng

// Sampler draws a value in [lo, hi].
type Sampler interface {
	Sample(r *Rand, lo, hi float64) float64
}

// Uniform samples evenly across the range.
type Uniform struct{}

func (Uniform) Sample(r *Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Gaussian samples around the midpoint of the range, with the range
// spanning six standard deviations. Results are clamped to [lo, hi].
type Gaussian struct{}

func (Gaussian) Sample(r *Rand, lo, hi float64) float64 {
	v := r.Gaussian((lo+hi)/2, (hi-lo)/6)
	return max(lo, min(hi, v))
}

// SampleInt rounds a sample to the nearest integer in [lo, hi].
func SampleInt(s Sampler, r *Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	v := int(s.Sample(r, float64(lo), float64(hi)) + 0.5)
	return max(lo, min(hi, v))
}
