package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleNonAdmin Role = "nonadmin"
)

// Valid reports whether the role is one of the two closed literals.
// Anything else in storage is treated as corruption, not a new role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleNonAdmin
}

type User struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	UUID          string `gorm:"type:varchar(200);uniqueIndex;not null" json:"uuid"`
	FirstName     string `gorm:"type:varchar(30)" json:"first_name"`
	LastName      string `gorm:"type:varchar(30)" json:"last_name"`
	UserName      string `gorm:"type:varchar(30);uniqueIndex;not null" json:"user_name"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash  string `gorm:"type:varchar(255)" json:"-"` // Never expose credentials in JSON
	Salt          string `gorm:"type:varchar(200)" json:"-"`
	Country       string `gorm:"type:varchar(30)" json:"country"`
	AboutMe       string `gorm:"type:varchar(50)" json:"about_me"`
	Dob           string `gorm:"type:varchar(30)" json:"dob"`
	Role          Role   `gorm:"type:varchar(30);not null;default:'nonadmin'" json:"role"`
	ContactNumber string `gorm:"type:varchar(30)" json:"contact_number"`
}

func (User) TableName() string {
	return "users"
}
