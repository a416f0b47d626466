package model

// TokenManager issues and verifies stateless session tokens. Verification is
// self-contained: no server-side session state exists, which also means a
// token cannot be revoked before it expires.
type TokenManager interface {
	Generate(username string) (string, error)
	Parse(tokenString string) (string, error)
}

// PasswordHasher performs one-way salted password hashing.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches the stored hash. A mismatch
	// is a normal false result; an error means the stored hash is malformed.
	Compare(hash, password string) (bool, error)
}
