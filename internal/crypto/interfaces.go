package crypto

import "github.com/MKhiriev/go-auth-service/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// verifies plaintext against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash generates a fresh random salt and returns the encoded hash of
	// plain. Two calls with the same input yield different hashes.
	Hash(plain string) (string, error)

	// Compare reports whether plain matches hash. It returns
	// ErrPasswordMismatch when it does not; any other error means the hash
	// itself is unusable.
	Compare(hash, plain string) error
}

// TokenSigner issues and verifies the bearer tokens handed out on sign-in.
type TokenSigner interface {
	// Sign stamps the registered claims (iss, sub, iat, exp) onto claims and
	// returns the signed token.
	Sign(claims models.TokenClaims) (models.Token, error)

	// Parse verifies the signature, algorithm, issuer and expiry of raw and
	// returns the decoded token. Any verification failure is reported as
	// ErrInvalidToken.
	Parse(raw string) (models.Token, error)
}
