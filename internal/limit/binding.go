package limit

import "github.com/akyairhashvil/jot/internal/config"

// State is a snapshot of a Binding handed to listeners.
type State struct {
	Text         string
	LimitReached bool
}

// Listener is called after every proposal with the resulting state.
type Listener func(State)

// Option configures a Binding at construction.
type Option func(*Binding)

// WithNotifier sets the cue fired on violating transitions.
func WithNotifier(n Notifier) Option {
	return func(b *Binding) {
		if n != nil {
			b.notifier = n
		}
	}
}

// Binding holds the accepted text for one input and enforces its limit.
// The limit kind is fixed for the lifetime of the binding.
//
// A Binding is owned by a single view and is not safe for concurrent use.
type Binding struct {
	text         string
	kind         Kind
	limitReached bool
	notifier     Notifier

	listeners map[int]Listener
	order     []int
	nextID    int
}

// NewDefaultBinding returns a character binding with the default limit.
func NewDefaultBinding(opts ...Option) *Binding {
	return NewBinding(config.DefaultCharacterLimit, opts...)
}

// NewBinding returns a binding limited to max characters.
func NewBinding(max int, opts ...Option) *Binding {
	return NewKindBinding(ByCharacter{N: max}, opts...)
}

// NewKindBinding returns a binding for an explicit limit kind. A nil kind
// falls back to the default character limit.
func NewKindBinding(kind Kind, opts ...Option) *Binding {
	if kind == nil {
		kind = ByCharacter{N: config.DefaultCharacterLimit}
	}
	b := &Binding{
		kind:      kind,
		notifier:  NopNotifier{},
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Propose offers a new value for the text and reports whether it was kept.
//
// The value is rejected only when it moves the unit count from within the
// limit to over it. A value that is already over the limit and stays over
// is accepted.
func (b *Binding) Propose(value string) bool {
	max := b.kind.Max()
	oldCount := UnitCount(b.kind, b.text)
	newCount := UnitCount(b.kind, value)

	accepted := true
	if newCount > max && oldCount <= max {
		accepted = false
		b.limitReached = true
		b.notifier.LimitViolated()
	} else {
		b.text = value
		b.limitReached = false
	}
	b.emit()
	return accepted
}

// Subscribe registers fn for change notifications. The returned function
// removes it; calling it more than once is harmless.
func (b *Binding) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.order = append(b.order, id)
	return func() {
		if _, ok := b.listeners[id]; !ok {
			return
		}
		delete(b.listeners, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

func (b *Binding) emit() {
	if len(b.order) == 0 {
		return
	}
	s := b.State()
	ids := append([]int(nil), b.order...)
	for _, id := range ids {
		if fn, ok := b.listeners[id]; ok {
			fn(s)
		}
	}
}

func (b *Binding) Text() string { return b.text }
func (b *Binding) Kind() Kind { return b.kind }
func (b *Binding) LimitReached() bool { return b.limitReached }

// Count is the unit count of the current text.
func (b *Binding) Count() int { return UnitCount(b.kind, b.text) }

// Remaining is the limit minus the current count. It can be negative when
// the limit itself is negative.
func (b *Binding) Remaining() int { return b.kind.Max() - b.Count() }

func (b *Binding) State() State {
	return State{Text: b.text, LimitReached: b.limitReached}
}
