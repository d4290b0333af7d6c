package models

// Registration defaults applied when the form leaves a field empty.
const (
	DefaultEmail        = "admin@khushitech.com"
	DefaultOrganization = "Khushi Technology"

	// StaffOrganization is used for portal logins with no directory record.
	StaffOrganization = "Khushi Tech"
)

// Account is one entry of the identity directory.
type Account struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	OrgName   string `json:"orgName"`
	AdminName string `json:"adminName"`
	Role      Role   `json:"role"`
}

// RegistrationForm carries what the sign-up and sign-in forms collect.
// Password is read from the terminal but never stored or compared.
type RegistrationForm struct {
	Username  string
	Password  []byte
	Email     string
	OrgName   string
	AdminName string
}

// NewAccount builds a directory entry from a registration form.
func NewAccount(f RegistrationForm, role Role) Account {
	a := Account{
		Username:  f.Username,
		Email:     f.Email,
		OrgName:   f.OrgName,
		AdminName: f.AdminName,
		Role:      role,
	}
	if a.Email == "" {
		a.Email = DefaultEmail
	}
	if a.OrgName == "" {
		a.OrgName = DefaultOrganization
	}
	if a.AdminName == "" {
		a.AdminName = f.Username
	}
	return a
}

// TransientStaffAccount stands in for a field login with no directory entry.
func TransientStaffAccount(username string) Account {
	return Account{
		Username:  username,
		OrgName:   StaffOrganization,
		AdminName: username,
		Role:      RoleSiteSupervisor,
	}
}
