package accounts

// Repo defines the storage operations for accounts. The email field carries
// a unique index; Insert surfaces a violation as ErrEmailTaken.
type Repo interface {
	Insert(account *Account) (string, error)
	GetByEmail(email string) (*Account, error)
	GetByID(id string) (*Account, error)
}
