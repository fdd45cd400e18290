package usecase

// cached returns the memoized value for key. An empty key never hits.
func cached[V any](uc *implUseCase, key string) (V, bool) {
	var zero V
	if uc.cache == nil || key == "" {
		return zero, false
	}
	v, ok := uc.cache.Get(key)
	if !ok {
		return zero, false
	}
	out, ok := v.(V)
	return out, ok
}

func (uc *implUseCase) store(key string, v any) {
	if uc.cache == nil || key == "" {
		return
	}
	uc.cache.Add(key, v)
}
