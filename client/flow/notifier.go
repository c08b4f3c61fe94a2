package flow

// Severity grades a user-facing notification.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	default:
		return "error"
	}
}

// Notifier renders flow outcomes: toasts, the success modal and the login
// prompt. The web client binds this to its notification center; the CLI
// prints to the terminal.
type Notifier interface {
	Notify(severity Severity, message string)
	ShowSuccessModal(message string)
	PromptLogin()
}

// Confirmer asks the user to confirm intent before money moves. Returning
// false aborts the flow without a network call.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(message string) bool

func (f ConfirmerFunc) Confirm(message string) bool {
	return f(message)
}
