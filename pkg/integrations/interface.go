package integrations

// Opener hands a link to the host environment: a browser, a mail client,
// or whatever handles the URI scheme.
type Opener interface {
	Open(target string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(target string) error

func (f OpenerFunc) Open(target string) error {
	return f(target)
}
