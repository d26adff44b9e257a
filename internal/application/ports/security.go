package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenKind selects which secret and expiry policy a token is signed under.
type TokenKind int

const (
	AccessToken TokenKind = iota
	RefreshToken
)

func (k TokenKind) String() string {
	if k == RefreshToken {
		return "refresh_token"
	}
	return "access_token"
}

// TokenData is the claim set carried by both token kinds.
type TokenData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// TokenCodec signs and verifies JWTs. Each kind uses its own symmetric
// secret so a leaked access secret cannot mint refresh tokens. Verify
// failures (bad signature, wrong kind, expired, missing id claim) all
// surface the invalid-token error kind.
type TokenCodec interface {
	Issue(data TokenData, kind TokenKind) (string, error)
	Verify(signed string, kind TokenKind) (*TokenData, error)
}
