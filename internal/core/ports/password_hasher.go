package ports

// PasswordHasher hashes and verifies account passwords. The core never sees
// which algorithm the adapter uses.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}
