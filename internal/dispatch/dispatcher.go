package dispatch

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"CartDesk/internal/cart"
	"CartDesk/internal/directory"
	"CartDesk/internal/session"
	"CartDesk/pkg/kit"
)

type Deps struct {
	Directory *directory.Directory
	Sessions  session.Store
	Carts     cart.Store
	Log       *zap.Logger
	Metrics   *kit.Metrics

	// GSTRate of zero selects cart.DefaultGSTRate.
	GSTRate decimal.Decimal
}

// Dispatcher owns every piece of mutable state: sessions, carts and the GST
// flag. A fresh Dispatcher starts with no sessions and GST off.
type Dispatcher struct {
	dir      *directory.Directory
	sessions session.Store
	carts    cart.Store
	log      *zap.Logger
	metrics  *kit.Metrics
	gstRate  decimal.Decimal

	gst atomic.Bool
}

func New(deps Deps) *Dispatcher {
	d := &Dispatcher{
		dir:      deps.Directory,
		sessions: deps.Sessions,
		carts:    deps.Carts,
		log:      deps.Log,
		metrics:  deps.Metrics,
		gstRate:  deps.GSTRate,
	}
	if d.dir == nil {
		d.dir = directory.NewDefault()
	}
	if d.sessions == nil {
		d.sessions = session.NewStore()
	}
	if d.carts == nil {
		d.carts = cart.NewStore()
	}
	if d.log == nil {
		d.log = zap.NewNop()
	}
	if d.gstRate.IsZero() {
		d.gstRate = cart.DefaultGSTRate
	}
	return d
}

func (d *Dispatcher) GST() bool { return d.gst.Load() }

// Query is the untyped entry point. An empty function is a no-op and yields an
// empty envelope with no success flag.
func (d *Dispatcher) Query(contextID, function string, content map[string]any) Response {
	if function == "" {
		return Response{}
	}

	start := time.Now()
	resp := d.query(contextID, function, content)
	d.observe(function, resp, time.Since(start))
	return resp
}

// Dispatch runs an already typed request. Session validation still applies to
// everything except LoginRequest.
func (d *Dispatcher) Dispatch(contextID string, req Request) Response {
	if req == nil {
		return d.fail("", ErrUnknownFunction)
	}

	start := time.Now()
	resp := d.dispatch(contextID, req)
	d.observe(req.Function(), resp, time.Since(start))
	return resp
}

func (d *Dispatcher) query(contextID, function string, content map[string]any) Response {
	if content == nil && !contentExempt(function) {
		return d.fail(function, ErrMissingContent)
	}

	sess, err := d.resolveSession(function, contextID)
	if err != nil {
		return d.fail(function, err)
	}

	req, err := decodeRequest(function, content)
	if err != nil {
		return d.fail(function, err)
	}

	return d.run(sess, contextID, req)
}

func (d *Dispatcher) dispatch(contextID string, req Request) Response {
	sess, err := d.resolveSession(req.Function(), contextID)
	if err != nil {
		return d.fail(req.Function(), err)
	}
	return d.run(sess, contextID, req)
}

func (d *Dispatcher) resolveSession(function, contextID string) (session.Session, error) {
	if function == FuncLogin {
		return session.Session{}, nil
	}
	sess, ok := d.sessions.Get(contextID)
	if !ok {
		return session.Session{}, ErrInvalidSession
	}
	return sess, nil
}

func (d *Dispatcher) run(sess session.Session, contextID string, req Request) (resp Response) {
	defer func() {
		if rec := recover(); rec != nil {
			resp = d.fail(req.Function(), fmt.Errorf("handler panic: %v", rec))
		}
	}()

	fields, err := d.handle(sess, contextID, req)
	if err != nil {
		return d.fail(req.Function(), err)
	}
	return success(fields)
}

func (d *Dispatcher) handle(sess session.Session, contextID string, req Request) (Response, error) {
	switch r := req.(type) {
	case LoginRequest:
		return d.login(r)
	case LogoutRequest:
		return d.logout(contextID)
	case AdminSettingsRequest:
		return d.adminSettings(sess, r)
	case AddProductRequest:
		return d.addProductToCart(sess, r)
	case ClearCartRequest:
		return d.clearCart(sess)
	case CartDetailsRequest:
		return d.cartDetails(sess)
	default:
		return nil, ErrUnknownFunction
	}
}

func (d *Dispatcher) fail(function string, err error) Response {
	kind, msg := classify(err)
	if kind == KindInternal {
		d.log.Error("query failed", zap.String("function", function), zap.Error(err))
	} else {
		d.log.Warn("query rejected", zap.String("function", function), zap.String("error_type", string(kind)))
	}
	return Failure(kind, msg)
}

func (d *Dispatcher) observe(function string, resp Response, took time.Duration) {
	outcome := kit.OutcomeOK
	if !resp.OK() {
		outcome = resp.ErrorType()
	}
	d.metrics.Observe(functionLabel(function), outcome, took)
}

// functionLabel keeps caller-supplied names out of metric labels.
func functionLabel(function string) string {
	switch function {
	case FuncLogin, FuncLogout, FuncAdminSettings, FuncAddProduct, FuncClearCart, FuncGetCartDetails:
		return function
	}
	return "unknown"
}
