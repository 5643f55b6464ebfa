package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted hashes and
// checks candidates against them. It knows nothing about users or storage.
//
// Hash output embeds its own salt and cost, so two calls with the same
// password produce different strings that both verify.
type PasswordHasher interface {
	// Hash returns the salted hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is not an
	// error: it returns false and a nil error. A hash that is not a
	// well-formed bcrypt string returns false and [ErrMalformedHash].
	Verify(password, hash string) (bool, error)
}
