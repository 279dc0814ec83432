package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as server drain and
// database connection checks.
const DefaultTimeout = 10 * time.Second
