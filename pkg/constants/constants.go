package constants

type ContextKey string

const (
	AppKey         ContextKey = "app"
	LoggerKey      ContextKey = "logger"
	RequestIDKey   ContextKey = "requestID"
	UserIDKey      ContextKey = "userID"
	UserKey        ContextKey = "user"
	NavItemsKey    ContextKey = "navItems"
	AllNavItemsKey ContextKey = "allNavItems"
)
