package config

type SecurityConfig interface {
	GetHashIterations() int
	GetSaltLength() int
	GetTokenLength() int
}

type Security struct{}

var _ SecurityConfig = Security{}

// GetHashIterations returns the PBKDF2 work factor. Raising it invalidates
// no stored credentials (the iteration count is applied at hash time), but
// all credentials created before a raise keep the old cost until rehashed.
func (Security) GetHashIterations() int {
	return 100_000
}

func (Security) GetSaltLength() int {
	return 16
}

func (Security) GetTokenLength() int {
	return 32 // 32 bytes = 256 bits
}
