package ports

// PasswordHasher is the contract for password hashing so the core never
// depends on the concrete algorithm.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A malformed hash
	// verifies false rather than failing, so storage corruption cannot
	// crash the login path.
	Verify(plaintext, hash string) bool
}

// TokenService mints and checks the two purpose-scoped credentials the
// platform uses. Access and reset tokens are signed with distinct secrets;
// verifying one kind against the other kind's secret must fail.
type TokenService interface {
	// IssueAccess returns a signed access token carrying the username.
	IssueAccess(username string) (string, error)
	// IssueReset returns a signed reset token carrying the email.
	IssueReset(email string) (string, error)
	// VerifyAccess validates token against the access secret and returns
	// the embedded username. Fails with domain.ErrTokenExpired or
	// domain.ErrTokenInvalid.
	VerifyAccess(token string) (string, error)
	// VerifyReset validates token against the reset secret and returns
	// the embedded email.
	VerifyReset(token string) (string, error)
}
