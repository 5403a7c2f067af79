package middleware

// contextKey is the type used for values stored in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey = contextKey("logger")
	userIDKey = contextKey("userID")
)
