// SPDX-License-Identifier: MIT
package cssprop

// recorder is a minimal Store that remembers registrations and serves
// registered defaults unless a value was put explicitly
type recorder struct {
	keys       []string
	defaults   map[string]string
	sanitizers map[string]Sanitizer
	controls   []Control
	values     map[string]string
}

func newRecorder() *recorder {
	return &recorder{
		defaults:   make(map[string]string),
		sanitizers: make(map[string]Sanitizer),
		values:     make(map[string]string),
	}
}

func (r *recorder) Register(key, def string, s Sanitizer) {
	if _, ok := r.defaults[key]; ok {
		return
	}
	r.keys = append(r.keys, key)
	r.defaults[key] = def
	r.sanitizers[key] = s
}

func (r *recorder) RegisterControl(c Control) {
	r.controls = append(r.controls, c)
}

func (r *recorder) Get(key string) string {
	if v, ok := r.values[key]; ok {
		return v
	}
	return r.defaults[key]
}

// put stores a value through the registered sanitizer, like a customizer save
func (r *recorder) put(key, raw string) bool {
	s, ok := r.sanitizers[key]
	if !ok {
		return false
	}
	v, ok := s(raw)
	if ok {
		r.values[key] = v
	}
	return ok
}
