package account

// Record is a stored credential pair. Passwords are kept verbatim:
// the tracker is a single-user local tool and does not hash.
type Record struct {
	Username string
	Password string
}

func (r Record) Matches(username, password string) bool {
	return r.Username == username && r.Password == password
}
