package cache

// ScopedKeyer prefixes every key of an inner keyer. The CLI uses it for
// the Redis backend to keep plans apart from other tenants of a shared server.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "architectus:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PlanKey returns the prefixed plan key.
func (k *ScopedKeyer) PlanKey(opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(opts)
}
