package keyring

import "github.com/pkg/errors"

var (
	// ErrAddressRequired is returned when an operation is called with an empty address
	ErrAddressRequired = errors.New("must specify address")
	// ErrAddressNotFound is returned when no wallet entry matches the requested address
	ErrAddressNotFound = errors.New("unable to find matching address")
	// ErrInvalidOrigin is returned when an app key origin is missing
	ErrInvalidOrigin = errors.New("'origin' must be a non-empty string")
	// ErrInvalidPrivateKey is returned when a secret does not satisfy the curve requirements
	ErrInvalidPrivateKey = errors.New("private key does not satisfy the curve requirements")
	// ErrDeserialization is returned when persisted keyring state is malformed
	ErrDeserialization = errors.New("problem deserializing keyring")
	// ErrInvalidTypedData is returned when typed data cannot be hashed
	ErrInvalidTypedData = errors.New("invalid typed data")
	// ErrInvalidMessage is returned when a message payload cannot be decoded or signed
	ErrInvalidMessage = errors.New("invalid message")
	// ErrInvalidCount is returned when AddAccounts is asked for a negative number of accounts
	ErrInvalidCount = errors.New("number of accounts must not be negative")
)

// DeserializeError reports the persisted entry that failed to load.
// It matches ErrDeserialization and unwraps to the underlying cause.
type DeserializeError struct {
	Index int
	Err   error
}

func (e *DeserializeError) Error() string {
	return errors.Wrapf(e.Err, "%s: entry %d", ErrDeserialization, e.Index).Error()
}

func (e *DeserializeError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDeserialization) hold for every DeserializeError
func (e *DeserializeError) Is(target error) bool {
	return target == ErrDeserialization
}
