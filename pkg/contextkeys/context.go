package contextkeys

// Custom type so the key cannot collide with keys set by other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB
// (the pool, or a transaction in tests) is stored.
const DBContextKey = contextKey("db")
