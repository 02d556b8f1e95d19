package apperrors

// appError implements the apperrors.Error interface.
//
// Package-level errors are shared across goroutines, so every modifier returns
// a derived copy instead of mutating the receiver.
type appError struct {
	msg           string
	base          Error
	wrappedErrors []error
	statuscode    int
	expandError   bool
	prefix        string
	suffix        string
}

func (e *appError) Error() string {
	msg := e.msg
	if e.prefix != "" {
		msg = e.prefix + ": " + msg
	}
	if e.suffix != "" {
		msg += ": " + e.suffix
	}
	return msg
}

func (e *appError) ErrorAll() string {
	msg := e.Error()
	if !e.expandError || len(e.wrappedErrors) == 0 {
		return msg
	}
	var wrapped string
	for _, err := range e.wrappedErrors {
		wrapped += err.Error() + ";"
	}
	return msg + ": " + wrapped[:len(wrapped)-1]
}

func (e *appError) Unwrap() []error {
	return e.wrappedErrors
}

// New derives a child error. The child inherits the status code and matches
// the receiver with errors.Is.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		statuscode: e.statuscode,
		base:       e,
	}
}

func (e *appError) clone() *appError {
	c := *e
	c.wrappedErrors = append([]error(nil), e.wrappedErrors...)
	return &c
}

// derive returns a copy of e linked to e as its base, so that the copy still
// satisfies errors.Is against the original sentinel.
func (e *appError) derive() *appError {
	c := e.clone()
	c.base = e
	return c
}

func (e *appError) Msg(msg string) Error {
	c := e.derive()
	c.msg = msg
	return c
}

func (e *appError) Prefix(prefix string) Error {
	c := e.derive()
	c.prefix = prefix
	return c
}

func (e *appError) Suffix(suffix string) Error {
	c := e.derive()
	c.suffix = suffix
	return c
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	c := e.derive()
	c.msg = msg
	c.wrappedErrors = append(c.wrappedErrors, err...)
	return c
}

func (e *appError) Err(err ...error) Error {
	c := e.derive()
	c.wrappedErrors = append(c.wrappedErrors, err...)
	return c
}

func (e *appError) Is(target error) bool {
	if e == target || e.base == target {
		return true
	}
	if e.base != nil && e.base.Is(target) {
		return true
	}
	for _, err := range e.wrappedErrors {
		if err == target {
			return true
		}
	}
	return false
}

// SetExpandError and SetStatusCode configure the receiver in place; they are
// meant for declaring sentinels, not for use on shared values at runtime.
func (e *appError) SetExpandError(expand bool) Error {
	e.expandError = expand
	return e
}

func (e *appError) SetStatusCode(code int) Error {
	e.statuscode = code
	return e
}

func (e *appError) StatusCode() int {
	return e.statuscode
}

func New(msg string) Error {
	return &appError{
		msg: msg,
	}
}
