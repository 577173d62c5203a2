package accounts

// Account represents a registered user of the platform.
type Account struct {
	ID           string  `json:"id,omitempty"` // Unique identifier for the account
	Name         string  `json:"name"`         // Full name
	Email        string  `json:"email"`        // Unique email address
	PasswordHash []byte  `json:"-"`            // Derived password verifier - never serialize
	Salt         []byte  `json:"-"`            // Per-account KDF salt - never serialize
	IsActive     bool    `json:"is_active"`
	AvatarURL    *string `json:"avatar_url"`
}

// PublicAccount is the externally visible view of an Account. It carries no
// credential fields at all, so no response path can leak them regardless of
// how it is serialized.
type PublicAccount struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	IsActive  bool    `json:"is_active"`
	AvatarURL *string `json:"avatar_url"`
}

// Public returns the redacted view of the account.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		IsActive:  a.IsActive,
		AvatarURL: a.AvatarURL,
	}
}
