package errortypes

// BadInput should be used when an operation receives data it cannot work with, such as
// key material that is empty or ciphertext that is too short to carry a signature.
//
// The malformed hyperlocal fixture is expected to surface as a BadInput once the consumer
// under test tries to decrypt it.
type BadInput struct {
	Message string
}

func (err *BadInput) Error() string {
	return err.Message
}

func (err *BadInput) Code() int {
	return BadInputErrorCode
}

func (err *BadInput) Severity() Severity {
	return SeverityFatal
}

// SignatureMismatch flags ciphertext whose integrity signature does not match the decrypted payload.
type SignatureMismatch struct {
	Message string
}

func (err *SignatureMismatch) Error() string {
	return err.Message
}

func (err *SignatureMismatch) Code() int {
	return SignatureMismatchErrorCode
}

func (err *SignatureMismatch) Severity() Severity {
	return SeverityFatal
}

// FailedToMarshal should be used when a fixture cannot be serialized.
type FailedToMarshal struct {
	Message string
}

func (err *FailedToMarshal) Error() string {
	return err.Message
}

func (err *FailedToMarshal) Code() int {
	return FailedToMarshalErrorCode
}

func (err *FailedToMarshal) Severity() Severity {
	return SeverityFatal
}

// FailedToUnmarshal should be used when wire bytes cannot be parsed back into a message.
type FailedToUnmarshal struct {
	Message string
}

func (err *FailedToUnmarshal) Error() string {
	return err.Message
}

func (err *FailedToUnmarshal) Code() int {
	return FailedToUnmarshalErrorCode
}

func (err *FailedToUnmarshal) Severity() Severity {
	return SeverityFatal
}

// FailedToWrite should be used when serialized fixtures cannot be stored on disk.
type FailedToWrite struct {
	Message string
}

func (err *FailedToWrite) Error() string {
	return err.Message
}

func (err *FailedToWrite) Code() int {
	return FailedToWriteErrorCode
}

func (err *FailedToWrite) Severity() Severity {
	return SeverityFatal
}

// Warning is a generic non-fatal error. Throughout the codebase, an error can
// only be a warning if it's of the type defined below
type Warning struct {
	Message     string
	WarningCode int
}

func (err *Warning) Error() string {
	return err.Message
}

func (err *Warning) Code() int {
	return err.WarningCode
}

func (err *Warning) Severity() Severity {
	return SeverityWarning
}
