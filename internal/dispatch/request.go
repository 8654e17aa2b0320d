package dispatch

const (
	FuncLogin          = "userLogin"
	FuncLogout         = "userLogout"
	FuncAdminSettings  = "adminSettings"
	FuncAddProduct     = "addProductToCart"
	FuncClearCart      = "clearCart"
	FuncGetCartDetails = "getCartDetails"
)

const (
	contentUserName = "userName"
	contentGST      = "gst"
	contentProduct  = "product"
)

// Request is one of the six typed payloads the dispatcher accepts.
type Request interface {
	Function() string
}

type LoginRequest struct {
	UserName string
}

type LogoutRequest struct{}

// AdminSettingsRequest carries a nil GST when the caller sent anything other
// than a boolean.
type AdminSettingsRequest struct {
	GST *bool
}

type AddProductRequest struct {
	Product string
}

type ClearCartRequest struct{}

type CartDetailsRequest struct{}

func (LoginRequest) Function() string         { return FuncLogin }
func (LogoutRequest) Function() string        { return FuncLogout }
func (AdminSettingsRequest) Function() string { return FuncAdminSettings }
func (AddProductRequest) Function() string    { return FuncAddProduct }
func (ClearCartRequest) Function() string     { return FuncClearCart }
func (CartDetailsRequest) Function() string   { return FuncGetCartDetails }

func contentExempt(function string) bool {
	switch function {
	case FuncLogout, FuncGetCartDetails, FuncClearCart:
		return true
	}
	return false
}

// decodeRequest turns the untyped content map into a Request. Wrong value
// types decode to zero values; the handlers reject those with their own errors.
func decodeRequest(function string, content map[string]any) (Request, error) {
	switch function {
	case FuncLogin:
		name, _ := content[contentUserName].(string)
		return LoginRequest{UserName: name}, nil
	case FuncLogout:
		return LogoutRequest{}, nil
	case FuncAdminSettings:
		var req AdminSettingsRequest
		if v, ok := content[contentGST].(bool); ok {
			req.GST = &v
		}
		return req, nil
	case FuncAddProduct:
		name, _ := content[contentProduct].(string)
		return AddProductRequest{Product: name}, nil
	case FuncClearCart:
		return ClearCartRequest{}, nil
	case FuncGetCartDetails:
		return CartDetailsRequest{}, nil
	default:
		return nil, ErrUnknownFunction
	}
}
