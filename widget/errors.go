package widget

import "errors"

var (
	ErrAlreadyRegistered = errors.New("element is already registered")
	ErrInvalidPluginName = errors.New("plugin name is not a javascript identifier")
)

type registrationError struct {
	elementID string
	err       error
}

// ElementID returns DOM id of the binding which was not registered.
func (r *registrationError) ElementID() string {
	if r == nil {
		return ""
	}

	return r.elementID
}

func (r *registrationError) Unwrap() error {
	if r == nil {
		return nil
	}

	return r.err
}

func (r *registrationError) Error() string {
	switch {
	case r == nil:
		return ""
	case r.err != nil:
		return "cannot register element " + r.elementID + ": " + r.err.Error()
	}

	return "cannot register element " + r.elementID
}
