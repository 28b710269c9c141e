package auth

// Identity represents viewer information obtained from the external
// identity provider's token. Only the email is consumed: the tracker's
// role model is inferred from it client- and server-side alike.
type Identity struct {
	Email string
}
