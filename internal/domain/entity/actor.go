package entity

// Actor is the resolved authorization context for one request: the
// authenticated user plus their elevation, decided once by the auth
// middleware and passed down into services.
type Actor struct {
	User     *User
	Elevated bool
}

// CompanyID is the actor's tenant scope. Elevated actors still belong to a
// company; callers decide whether the scope applies.
func (a *Actor) CompanyID() int64 {
	return a.User.CompanyID
}
