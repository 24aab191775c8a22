package llm

import "context"

// UnavailableProvider fails every call with the error that prevented a
// real provider from being built, typically a missing API key.
type UnavailableProvider struct {
	cause error
}

// Unavailable returns a Provider whose every call fails with
// *ErrProviderUnavailable wrapping cause.
func Unavailable(cause error) *UnavailableProvider {
	return &UnavailableProvider{cause: cause}
}

func (p *UnavailableProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: p.cause}
}

func (p *UnavailableProvider) ModelID() string {
	return "unavailable"
}
