package models

const (
	RoleAdmin  = "admin"
	RoleDriver = "driver"
)

type User struct {
	ID    string `bson:"_id,omitempty" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	// Password is stored and compared in plain text, a defect inherited from
	// the original system and kept on purpose: the bootstrap login compares
	// the literal default credentials. Handlers clear it before responding.
	Password string  `bson:"password" json:"password,omitempty"`
	Role     string  `bson:"role" json:"role"` // "admin" or "driver"
	Phone    *string `bson:"phone,omitempty" json:"phone,omitempty"`
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleDriver
}
