package source

import "errors"

// ErrUpstream is wrapped by every non-200 answer from the news API.
var ErrUpstream = errors.New("news api error")
