package uadmin

// User represents a user account record.
type User struct {
	ID        string   `json:"id"                  yaml:"id"`
	Username  string   `json:"username"            yaml:"username"`
	Email     string   `json:"email"               yaml:"email"`
	FullName  string   `json:"full_name"           yaml:"full_name"`
	RoleID    string   `json:"role_id"             yaml:"role_id"`
	RoleName  string   `json:"role_name,omitempty" yaml:"role_name,omitempty"`
	Active    bool     `json:"is_active"           yaml:"is_active"`
	CreatedAt FlexTime `json:"created_at"          yaml:"created_at"`
	UpdatedAt FlexTime `json:"updated_at"          yaml:"updated_at"`
}

// Role represents an access role assignable to users.
type Role struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"role_name"             yaml:"role_name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// AuditLog represents a single audit trail entry.
type AuditLog struct {
	ID        string   `json:"id"                 yaml:"id"`
	UserID    string   `json:"user_id"            yaml:"user_id"`
	Username  string   `json:"username,omitempty" yaml:"username,omitempty"`
	Action    string   `json:"action"             yaml:"action"`
	Detail    string   `json:"detail,omitempty"   yaml:"detail,omitempty"`
	CreatedAt FlexTime `json:"created_at"         yaml:"created_at"`
}

// UserCreateRequest carries the fields for creating a user.
type UserCreateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	RoleID   string `json:"role_id"`
}

// UserUpdateRequest carries the fields for updating a user. Nil fields
// are omitted from the request body and left unchanged server-side.
type UserUpdateRequest struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	RoleID   *string `json:"role_id,omitempty"`
	Active   *bool   `json:"is_active,omitempty"`
}

// UserPage is a paginated page of User records.
type UserPage = Page[User]

// AuditLogPage is a paginated page of AuditLog records.
type AuditLogPage = Page[AuditLog]
