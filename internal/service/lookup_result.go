package service

// GenericErrorMessage is shown for every failed lookup, whatever the cause.
const GenericErrorMessage = "Error, please try again"

type FailureReason string

const (
	TransportError FailureReason = "transport_error"
	CityNotFound   FailureReason = "city_not_found"
)

// LookupResult is either Success or Failure.
type LookupResult interface {
	isLookupResult()
}

// Success carries the rendered sentence and the city name the provider resolved.
type Success struct {
	DisplayText string
	Location    string
}

// Failure carries the user-facing message. Reason is for logs and traces only.
type Failure struct {
	Message string
	Reason  FailureReason
}

func (Success) isLookupResult() {}
func (Failure) isLookupResult() {}

func newFailure(reason FailureReason) Failure {
	return Failure{
		Message: GenericErrorMessage,
		Reason:  reason,
	}
}
