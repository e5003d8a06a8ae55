package auth

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches the work factor the seed data and existing stores use.
const DefaultCost = bcrypt.DefaultCost

// MaxPasswordBytes is the part of a password bcrypt reads. Longer passwords
// are cut to it on both hash and verify.
const MaxPasswordBytes = 72

func HashPassword(p string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword(clip(p), cost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), clip(plain))
}

func clip(p string) []byte {
	b := []byte(p)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
