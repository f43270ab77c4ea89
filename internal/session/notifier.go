package session

// Notifier receives the user-visible messages the session produces (added
// to cart, out of stock, welcome, ...). Presentation layers render them;
// tests inspect them.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// NopNotifier drops every message. It is the default when no notifier is
// supplied.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Info(string)    {}
func (NopNotifier) Error(string)   {}
