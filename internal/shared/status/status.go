// Package status はシンボリックなステータス名とHTTPステータスコードの対応表を提供します。
// エラー/レスポンスの生成側は生の数値コードではなく、常にシンボリック名で扱います。
package status

import "fmt"

// Category はステータス名が属する分類を表します。
type Category string

const (
	CategorySuccess    Category = "success"
	CategoryValidation Category = "validation"
	CategoryAuth       Category = "auth"
	CategoryResource   Category = "resource"
	CategoryRateLimit  Category = "rate_limit"
	CategoryServer     Category = "server"
)

// Success statuses.
const (
	OK              = "OK"
	Created         = "CREATED"
	Accepted        = "ACCEPTED"
	NoContent       = "NO_CONTENT"
	PartialContent  = "PARTIAL_CONTENT"
	MultiStatus     = "MULTI_STATUS"
	AlreadyReported = "ALREADY_REPORTED"
	IMUsed          = "IM_USED"
)

// Validation & request errors.
const (
	ValidationError      = "VALIDATION_ERROR"
	BadRequest           = "BAD_REQUEST"
	PayloadTooLarge      = "PAYLOAD_TOO_LARGE"
	UnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	UnprocessableEntity  = "UNPROCESSABLE_ENTITY"
	PreconditionFailed   = "PRECONDITION_FAILED"
	TooEarly             = "TOO_EARLY"
	RequestTimeout       = "REQUEST_TIMEOUT"
	LengthRequired       = "LENGTH_REQUIRED"
)

// Authentication & authorization errors.
const (
	AuthenticationError = "AUTHENTICATION_ERROR"
	AuthorizationError  = "AUTHORIZATION_ERROR"
	Unauthorized        = "UNAUTHORIZED"
	Forbidden           = "FORBIDDEN"
	MethodNotAllowed    = "METHOD_NOT_ALLOWED"
	Locked              = "LOCKED"
)

// Resource errors.
const (
	ResourceNotFound = "RESOURCE_NOT_FOUND"
	NotFound         = "NOT_FOUND"
	Gone             = "GONE"
	NotModified      = "NOT_MODIFIED"
	Conflict         = "CONFLICT"
	DependencyError  = "DEPENDENCY_ERROR"
)

// Rate limiting & throttling.
const (
	RateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	TooManyRequests   = "TOO_MANY_REQUESTS"
)

// Server errors.
const (
	InternalServerError = "INTERNAL_SERVER_ERROR"
	ServiceUnavailable  = "SERVICE_UNAVAILABLE"
	BadGateway          = "BAD_GATEWAY"
	GatewayTimeout      = "GATEWAY_TIMEOUT"
	NotImplemented      = "NOT_IMPLEMENTED"
	ImATeapot           = "IM_A_TEAPOT"
)

// codes はシンボリック名からHTTPステータスコードへの対応表です。
var codes = map[string]int{
	// 1xx: Informational
	"CONTINUE":            100,
	"SWITCHING_PROTOCOLS": 101,
	"PROCESSING":          102,
	"EARLY_HINTS":         103,

	// 2xx: Success
	"OK":                            200,
	"CREATED":                       201,
	"ACCEPTED":                      202,
	"NON_AUTHORITATIVE_INFORMATION": 203,
	"NO_CONTENT":                    204,
	"RESET_CONTENT":                 205,
	"PARTIAL_CONTENT":               206,
	"MULTI_STATUS":                  207,
	"ALREADY_REPORTED":              208,
	"IM_USED":                       226,

	// 3xx: Redirection
	"MULTIPLE_CHOICES":   300,
	"MOVED_PERMANENTLY":  301,
	"FOUND":              302,
	"SEE_OTHER":          303,
	"NOT_MODIFIED":       304,
	"USE_PROXY":          305,
	"TEMPORARY_REDIRECT": 307,
	"PERMANENT_REDIRECT": 308,

	// 4xx: Client Error
	"BAD_REQUEST":                     400,
	"VALIDATION_ERROR":                400,
	"UNAUTHORIZED":                    401,
	"AUTHENTICATION_ERROR":            401,
	"PAYMENT_REQUIRED":                402,
	"FORBIDDEN":                       403,
	"AUTHORIZATION_ERROR":             403,
	"NOT_FOUND":                       404,
	"RESOURCE_NOT_FOUND":              404,
	"METHOD_NOT_ALLOWED":              405,
	"NOT_ACCEPTABLE":                  406,
	"PROXY_AUTHENTICATION_REQUIRED":   407,
	"REQUEST_TIMEOUT":                 408,
	"CONFLICT":                        409,
	"GONE":                            410,
	"LENGTH_REQUIRED":                 411,
	"PRECONDITION_FAILED":             412,
	"PAYLOAD_TOO_LARGE":               413,
	"URI_TOO_LONG":                    414,
	"UNSUPPORTED_MEDIA_TYPE":          415,
	"RANGE_NOT_SATISFIABLE":           416,
	"EXPECTATION_FAILED":              417,
	"IM_A_TEAPOT":                     418,
	"MISDIRECTED_REQUEST":             421,
	"UNPROCESSABLE_ENTITY":            422,
	"LOCKED":                          423,
	"FAILED_DEPENDENCY":               424,
	"DEPENDENCY_ERROR":                424,
	"TOO_EARLY":                       425,
	"UPGRADE_REQUIRED":                426,
	"PRECONDITION_REQUIRED":           428,
	"TOO_MANY_REQUESTS":               429,
	"RATE_LIMIT_EXCEEDED":             429,
	"REQUEST_HEADER_FIELDS_TOO_LARGE": 431,
	"UNAVAILABLE_FOR_LEGAL_REASONS":   451,

	// 5xx: Server Error
	"INTERNAL_SERVER_ERROR":           500,
	"NOT_IMPLEMENTED":                 501,
	"BAD_GATEWAY":                     502,
	"SERVICE_UNAVAILABLE":             503,
	"GATEWAY_TIMEOUT":                 504,
	"HTTP_VERSION_NOT_SUPPORTED":      505,
	"VARIANT_ALSO_NEGOTIATES":         506,
	"INSUFFICIENT_STORAGE":            507,
	"LOOP_DETECTED":                   508,
	"NOT_EXTENDED":                    510,
	"NETWORK_AUTHENTICATION_REQUIRED": 511,
}

// カテゴリごとのメンバー一覧。categories の構築元になります。
var (
	successStatuses = []string{OK, Created, Accepted, NoContent, PartialContent, MultiStatus, AlreadyReported, IMUsed}
	validationNames = []string{ValidationError, BadRequest, PayloadTooLarge, UnsupportedMediaType, UnprocessableEntity, PreconditionFailed, TooEarly, RequestTimeout, LengthRequired}
	authNames       = []string{AuthenticationError, AuthorizationError, Unauthorized, Forbidden, MethodNotAllowed, Locked}
	resourceNames   = []string{ResourceNotFound, NotFound, Gone, NotModified, Conflict, DependencyError}
	rateLimitNames  = []string{RateLimitExceeded, TooManyRequests}
	serverNames     = []string{InternalServerError, ServiceUnavailable, BadGateway, GatewayTimeout, NotImplemented, ImATeapot}
)

// categories は全カテゴリをマージした シンボル名 → カテゴリ の対応表です。
var categories = map[string]Category{}

func init() {
	register := func(cat Category, names []string) {
		for _, name := range names {
			// 各カテゴリのメンバーは必ずコード表に存在しなければならない
			if _, ok := codes[name]; !ok {
				panic(fmt.Sprintf("status: %q in category %q has no status code", name, cat))
			}
			if prev, ok := categories[name]; ok {
				panic(fmt.Sprintf("status: %q registered in both %q and %q", name, prev, cat))
			}
			categories[name] = cat
		}
	}
	register(CategoryValidation, validationNames)
	register(CategoryAuth, authNames)
	register(CategoryResource, resourceNames)
	register(CategoryRateLimit, rateLimitNames)
	register(CategoryServer, serverNames)
	register(CategorySuccess, successStatuses)
}

// Code はシンボリック名をHTTPステータスコードに解決します。
// 未知の名前は500にフォールバックします。
func Code(name string) int {
	if code, ok := codes[name]; ok {
		return code
	}
	return codes[InternalServerError]
}

// Lookup は名前が属するカテゴリを返します。未登録の場合 ok はfalseです。
func Lookup(name string) (Category, bool) {
	cat, ok := categories[name]
	return cat, ok
}

// Resolve は名前をカテゴリ登録済みのシンボルに正規化します。
// 未知の名前は INTERNAL_SERVER_ERROR / CategoryServer に収束します。
func Resolve(name string) (string, Category) {
	if cat, ok := categories[name]; ok {
		return name, cat
	}
	return InternalServerError, CategoryServer
}
