package chain

import "fmt"

type ErrorKind string

const (
	KindRejected          ErrorKind = "rejected"
	KindInsufficientFunds ErrorKind = "insufficient_funds"
	KindRPC               ErrorKind = "rpc"
	KindRevert            ErrorKind = "revert"
	KindTimeout           ErrorKind = "timeout"
)

// Error is a classified on-chain failure. TxHash is set when the transaction
// was already broadcast: a timeout does not prove the effect never landed, so
// the hash must survive for a later ground-truth check.
type Error struct {
	Kind   ErrorKind
	TxHash string
	Err    error
}

func (e *Error) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("chain %s (tx %s): %v", e.Kind, e.TxHash, e.Err)
	}
	return fmt.Sprintf("chain %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, txHash string, err error) *Error {
	return &Error{Kind: kind, TxHash: txHash, Err: err}
}
