package user

// Type is a user's role in the marketplace, fixed at registration.
type Type string

const (
	TypeWorker   Type = "worker"
	TypeEmployer Type = "employer"
)

func (t Type) Valid() bool {
	return t == TypeWorker || t == TypeEmployer
}

// User is a marketplace account. Rating and ReviewCount are derived from
// reviews addressed to the user and are only ever written by the store as a
// side effect of review creation. Rating is nil until the first review.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	FullName     string
	Type         Type
	Location     string
	Bio          string
	Phone        string
	Skills       []string
	Avatar       string
	Title        string
	Rating       *int
	ReviewCount  int
}

// Insert carries the caller-settable fields for user creation. The store
// owns ID, Rating and ReviewCount.
type Insert struct {
	Username     string
	PasswordHash string
	Email        string
	FullName     string
	Type         Type
	Location     string
	Bio          string
	Phone        string
	Skills       []string
	Avatar       string
	Title        string
}

// Update is a partial profile update. Nil fields are left untouched; a
// non-nil Skills replaces the whole list. Role, credentials and the derived
// rating fields are deliberately absent.
type Update struct {
	Email    *string
	FullName *string
	Location *string
	Bio      *string
	Phone    *string
	Skills   []string
	Avatar   *string
	Title    *string
}
