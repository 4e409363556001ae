package dto

// ListUsersReq represents the query parameters for the /api/v1/users endpoint.
// Zero values mean "unset"; the lifecycle manager applies pagination defaults.
type ListUsersReq struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Role   string `form:"role"`
	Region string `form:"region"`
}
