package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Gin context keys set by the auth and request-id middleware.
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserName  = "user_name"
	ContextKeyRequestID = "request_id"

	TableInquiries      = "inquiries"
	TableInquiryLogs    = "inquiry_logs"
	TableAgents         = "agents"
	TableProperties     = "properties"
	TableCasbinRule     = "casbin_rule"
	RecentInquiryLimit  = 5
	MaxNoteLength       = 5000
	MaxInquiryListLimit = 100

	ErrMsgInternalServerError = "Internal server error occurred"
)
