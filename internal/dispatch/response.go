package dispatch

const (
	KeySuccess      = "success"
	KeyErrorMessage = "errorMessage"
	KeyErrorType    = "errorType"
	KeyContextID    = "contextID"
	KeyProducts     = "products"
	KeyTotalQty     = "totalQty"
	KeyTotalCost    = "totalCost"
)

// Response is the flat envelope returned for every query.
type Response map[string]any

func Failure(kind ErrorKind, msg string) Response {
	return Response{
		KeySuccess:      false,
		KeyErrorMessage: msg,
		KeyErrorType:    string(kind),
	}
}

func success(fields Response) Response {
	out := make(Response, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out[KeySuccess] = true
	return out
}

func (r Response) OK() bool {
	v, _ := r[KeySuccess].(bool)
	return v
}

func (r Response) ErrorType() string {
	v, _ := r[KeyErrorType].(string)
	return v
}
