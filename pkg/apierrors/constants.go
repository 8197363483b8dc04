package apierrors

// Message ids used by the HTTP layer itself. Domain errors carry their own.
const (
	MsgInvalidPayload = "invalidPayload"
	MsgRouteNotFound  = "routeNotFound"
	MsgInternalError  = "internalError"
)

// English fallbacks for the ids above.
const (
	FallbackInvalidPayload = "Invalid request payload"
	FallbackRouteNotFound  = "Route not found"
	FallbackInternalError  = "Internal server error"
)
