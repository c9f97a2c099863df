package interfaces

// Signer produces an opaque proof token for an outbound transaction.
// The wallet core records whatever token it receives and never
// interprets or validates its contents.
type Signer interface {
	Sign(txID string, payload string) (string, error)
}
