package plugin

import "sync"

// A TagHandler implements one override tag's capability set (spec.md §4.6): argument parsing,
// application to the in-flight AnimationState, and optional participation in \t(...) animation.
type TagHandler interface {
	// Name is the tag name with no leading backslash, e.g. "pos", "1c", "fscx".
	Name() string
	// ParseArgs parses the tag's raw argument text (the parenthesized payload for
	// parenthesized tags, or the remaining digits/word for bare tags like \b1) into a handler-
	// specific value later passed to Apply.
	ParseArgs(raw string) (any, error)
	// Apply mutates state according to args, and reports the outcome.
	Apply(args any, state *AnimationState) TagResult
	// SupportsAnimation reports whether this tag's effect can be interpolated inside \t(...).
	SupportsAnimation() bool
	// ExpectedArgs is the number of comma-separated arguments this tag expects, or -1 if
	// variable/not applicable.
	ExpectedArgs() int
	// Validate reports whether previously parsed args are semantically acceptable (e.g. ranges),
	// beyond the syntactic checks ParseArgs already performed.
	Validate(args any) error
}

// A SectionProcessor implements a third-party [Section] handler keyed by section name.
type SectionProcessor interface {
	Name() string
	Process(header string, lines []string) SectionResult
	Validate(header string, lines []string) error
}

// A Registry holds tag handlers and section processors keyed by name, guarded by a mutex so it
// is safe to register from an init-time call and read from concurrent renders (spec.md §5:
// "process-wide, initialized once, guarded by a mutex; registrations should happen before any
// parsing/rendering begins").
type Registry struct {
	mu       sync.RWMutex
	tags     map[string]TagHandler
	sections map[string]SectionProcessor
}

// NewRegistry returns an empty Registry. Most callers use DefaultRegistry instead; NewRegistry
// exists for hosts that embed asstk multiple times in one process and want isolated tag tables
// rather than the shared global (spec.md §9's injectable-registry caveat).
func NewRegistry() *Registry {
	return &Registry{
		tags:     map[string]TagHandler{},
		sections: map[string]SectionProcessor{},
	}
}

// RegisterTagHandler registers h under h.Name(), failing with DuplicateHandlerError if a handler
// is already registered under that name.
func (r *Registry) RegisterTagHandler(h TagHandler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := h.Name()
	if _, exists := r.tags[name]; exists {
		return &DuplicateHandlerError{Name: name, Kind: "tag handler"}
	}
	r.tags[name] = h
	return nil
}

// RegisterSectionProcessor registers p under p.Name(), failing with DuplicateHandlerError on a
// name collision.
func (r *Registry) RegisterSectionProcessor(p SectionProcessor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := p.Name()
	if _, exists := r.sections[name]; exists {
		return &DuplicateHandlerError{Name: name, Kind: "section processor"}
	}
	r.sections[name] = p
	return nil
}

// LookupTagHandler returns the handler registered for name, if any. O(1).
func (r *Registry) LookupTagHandler(name string) (TagHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.tags[name]
	return h, ok
}

// LookupSectionProcessor returns the processor registered for name, if any. O(1).
func (r *Registry) LookupSectionProcessor(name string) (SectionProcessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.sections[name]
	return p, ok
}

// TagNames returns every registered tag handler name, in no particular order.
func (r *Registry) TagNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tags))
	for name := range r.tags {
		names = append(names, name)
	}
	return names
}

// Clear removes every registered handler and processor. Intended for tests; production callers
// should not need to clear the process-wide default registry mid-run.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = map[string]TagHandler{}
	r.sections = map[string]SectionProcessor{}
}

// DefaultRegistry is the process-wide registry used by the default render pipeline. Hosts that
// embed asstk multiple times in one process should construct their own Registry with
// NewRegistry and pass it through explicitly instead of relying on this global.
var DefaultRegistry = NewRegistry()

// RegisterTagHandler registers h into DefaultRegistry (spec.md §6: "register_tag_handler(handler)
// — takes ownership of a handler implementing the tag capability set").
func RegisterTagHandler(h TagHandler) error {
	return DefaultRegistry.RegisterTagHandler(h)
}

// RegisterSectionProcessor registers p into DefaultRegistry (spec.md §6:
// "register_section_processor(processor)").
func RegisterSectionProcessor(p SectionProcessor) error {
	return DefaultRegistry.RegisterSectionProcessor(p)
}

// LookupTagHandler looks up name in DefaultRegistry.
func LookupTagHandler(name string) (TagHandler, bool) {
	return DefaultRegistry.LookupTagHandler(name)
}

// LookupSectionProcessor looks up name in DefaultRegistry.
func LookupSectionProcessor(name string) (SectionProcessor, bool) {
	return DefaultRegistry.LookupSectionProcessor(name)
}
