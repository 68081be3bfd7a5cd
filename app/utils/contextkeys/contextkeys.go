package contextkeys

// RequestId keys the per-request correlation ID on request contexts.
type RequestId struct{}
