package store

import "errors"

// ErrNoSpace indicates that a storage cannot satisfy an allocation request.
// It deliberately carries no further diagnostics: callers choose the fallback
// policy, typically by composing storages rather than by retrying.
var ErrNoSpace = errors.New("store: storage cannot satisfy request")
