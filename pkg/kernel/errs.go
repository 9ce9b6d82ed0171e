package kernel

import "errors"

// ErrNotInitialized is returned by any operation attempted before
// Initialize.
var ErrNotInitialized = errors.New("kernel: engine not initialized")
