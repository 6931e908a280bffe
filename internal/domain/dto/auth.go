package dto

// Operator roles carried in tokens.
const (
	// RoleOperator may load the catalog, restock, submit orders and read the operations log.
	RoleOperator = "operator"
	// RoleViewer may only read inventory, backlog and shipments.
	RoleViewer = "viewer"
)

// Claims are the application claims of an operator token.
type Claims struct {
	Subject string   `json:"sub"`
	Roles   []string `json:"roles"`
}

// HasRole reports whether the claims grant role.
func (c *Claims) HasRole(role string) bool {
	if c == nil {
		return false
	}
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IssueTokenRequest is the body of POST /api/auth/token.
//
// @Description Request for a short-lived operator token, authenticated by API key
// @Example {"subject": "night-shift", "roles": ["operator"]}
type IssueTokenRequest struct {
	Subject string   `json:"subject" example:"night-shift"`
	Roles   []string `json:"roles" example:"operator"`
} // @name IssueTokenRequest

// Validate requires a subject and only known roles. No roles means viewer.
func (r *IssueTokenRequest) Validate() error {
	if r.Subject == "" {
		return fieldError("subject", "is required")
	}
	if len(r.Roles) == 0 {
		r.Roles = []string{RoleViewer}
	}
	for _, role := range r.Roles {
		if role != RoleOperator && role != RoleViewer {
			return fieldError("roles", "unknown role "+role)
		}
	}
	return nil
}

// TokenResponse is returned by POST /api/auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"28800"`
} // @name TokenResponse
