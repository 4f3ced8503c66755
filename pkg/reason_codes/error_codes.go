package reasoncodes

type ReasonCode string

const (
	ErrUnmarshal ReasonCode = "UnmarshalError"
	ErrDatabase  ReasonCode = "DatabaseError"
	ErrPublish   ReasonCode = "PublishError"
)
