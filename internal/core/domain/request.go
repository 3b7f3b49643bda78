package domain

type RequestStatus int

const (
	RequestIdle RequestStatus = iota
	RequestLoading
	RequestSuccess
	RequestFailure
)

func (s RequestStatus) String() string {
	switch s {
	case RequestLoading:
		return "loading"
	case RequestSuccess:
		return "success"
	case RequestFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Request tracks one network operation: Idle -> Loading -> Success | Failure.
type Request[T any] struct {
	Status RequestStatus
	Data   T
	Err    error
}

func (r *Request[T]) Start() {
	r.Status = RequestLoading
	r.Err = nil
}

func (r *Request[T]) Succeed(data T) {
	r.Status = RequestSuccess
	r.Data = data
	r.Err = nil
}

// Fail drops any previous data.
func (r *Request[T]) Fail(err error) {
	var zero T
	r.Status = RequestFailure
	r.Data = zero
	r.Err = err
}

func (r *Request[T]) Reset() {
	*r = Request[T]{}
}

func (r Request[T]) InFlight() bool {
	return r.Status == RequestLoading
}
