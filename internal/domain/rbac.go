package domain

// EnforceRequest asks whether a console role may act on a resource.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

const (
	RoleAdmin       = "ADMIN"
	RoleAreaOfficer = "AREA_OFFICER"
	RoleClient      = "CLIENT"
)
