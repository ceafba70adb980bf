package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives the bcrypt hash stored for an account. A cost outside
// bcrypt's supported range is replaced with the library default, so an
// out-of-range AUTH_BCRYPT_COST slows hashing instead of breaking registration.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword checks plain against a stored hash. Callers translate the
// bcrypt error into the credential failure they expose.
func ComparePassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
