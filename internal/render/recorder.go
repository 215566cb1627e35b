package render

import "sync"

// Recorder is a Renderer that captures patches for inspection in tests.
type Recorder struct {
	mu      sync.Mutex
	patches []Patch
}

// NewRecorder creates an empty patch recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Apply records the patch.
func (r *Recorder) Apply(p Patch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patches = append(r.patches, p)
}

// Patches returns a copy of all recorded patches.
func (r *Recorder) Patches() []Patch {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Patch, len(r.patches))
	copy(out, r.patches)
	return out
}

// CountFor returns how many patches targeted the given fragment.
func (r *Recorder) CountFor(f Fragment) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.patches {
		if p.Fragment == f {
			n++
		}
	}
	return n
}

// Reset clears all recorded patches.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patches = nil
}
