package k8s

// TooManyRequestsError marks API throttling.
type TooManyRequestsError struct{}

func (e *TooManyRequestsError) Error() string {
	return "too many requests"
}

func (e *TooManyRequestsError) IsTooManyRequests() {}

var errTooManyRequests = &TooManyRequestsError{}

// NotFoundError marks an object that no longer exists.
type NotFoundError struct {
	object string
}

func (e *NotFoundError) Error() string {
	return e.object + " not found"
}

func (e *NotFoundError) IsNotFound() {}

var (
	errPodNotFound = &NotFoundError{object: "pod"}
	errJobNotFound = &NotFoundError{object: "job"}
)

// AlreadyExistsError marks a create that collided with an existing object.
type AlreadyExistsError struct{}

func (e *AlreadyExistsError) Error() string {
	return "job already exists"
}

func (e *AlreadyExistsError) IsAlreadyExists() {}

var errJobAlreadyExists = &AlreadyExistsError{}
