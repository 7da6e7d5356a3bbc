package constants

const (
	//分頁
	DefaultPagingSize int = 10
	DefaultPaging     int = 1
)

// Sweet 預設值
const (
	DefaultSweetImageURL = "https://via.placeholder.com/300"
	DefaultSweetRating   = 4.5
	MinSweetRating       = 0
	MaxSweetRating       = 5
)

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

type TokenDurationHour int

const (
	AccessTokenDuration TokenDurationHour = 24
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

func IsValidEnv(env string) bool {
	switch ENV(env) {
	case Debug, Dev, Stag, Prod:
		return true
	default:
		return false
	}
}

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)
