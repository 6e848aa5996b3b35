package limit

// Notifier receives the error cue fired on every violating transition.
// Hosts wire it to whatever alert they have (terminal bell, haptics);
// hosts without one use NopNotifier.
//
//go:generate mockgen -source=notifier.go -destination=mock_notifier_test.go -package=limit
type Notifier interface {
	LimitViolated()
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func()

func (f NotifierFunc) LimitViolated() {
	if f != nil {
		f()
	}
}

// NopNotifier drops the cue.
type NopNotifier struct{}

func (NopNotifier) LimitViolated() {}
