package hash

// Hasher hashes and verifies passwords with an adaptive, salted algorithm.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
