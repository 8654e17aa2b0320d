package dispatch

import (
	"go.uber.org/zap"

	"CartDesk/internal/cart"
	"CartDesk/internal/session"
)

const tokenLogPrefix = 8

func (d *Dispatcher) login(req LoginRequest) (Response, error) {
	u, ok := d.dir.User(req.UserName)
	if !ok {
		return nil, ErrUserNotFound
	}

	sess, err := d.sessions.Create(u)
	if err != nil {
		return nil, err
	}
	d.carts.Ensure(u.Name)
	d.metrics.SetSessions(d.sessions.Count())

	d.log.Info("user logged in", zap.String("user", u.Name), zap.String("token", shortToken(sess.Token)))
	return Response{KeyContextID: sess.Token}, nil
}

func (d *Dispatcher) logout(contextID string) (Response, error) {
	d.sessions.Delete(contextID)
	d.metrics.SetSessions(d.sessions.Count())

	d.log.Info("user logged out", zap.String("token", shortToken(contextID)))
	return nil, nil
}

// adminSettings checks the value type before the admin flag.
func (d *Dispatcher) adminSettings(sess session.Session, req AdminSettingsRequest) (Response, error) {
	if req.GST == nil {
		return nil, ErrInvalidGST
	}
	if !sess.User.Admin {
		return nil, ErrNotAdmin
	}

	d.gst.Store(*req.GST)
	d.log.Info("gst updated", zap.String("user", sess.User.Name), zap.Bool("gst", *req.GST))
	return nil, nil
}

func (d *Dispatcher) addProductToCart(sess session.Session, req AddProductRequest) (Response, error) {
	p, ok := d.dir.Product(req.Product)
	if !ok {
		return nil, ErrInvalidProduct
	}
	if err := d.carts.Add(sess.User.Name, p); err != nil {
		return nil, err
	}
	return nil, nil
}

func (d *Dispatcher) clearCart(sess session.Session) (Response, error) {
	if err := d.carts.Clear(sess.User.Name); err != nil {
		return nil, err
	}
	return nil, nil
}

func (d *Dispatcher) cartDetails(sess session.Session) (Response, error) {
	items, err := d.carts.Items(sess.User.Name)
	if err != nil {
		return nil, err
	}

	totals := cart.Price(items, sess.User.Discount, d.gst.Load(), d.gstRate)
	return Response{
		KeyProducts:  items,
		KeyTotalQty:  totals.Qty,
		KeyTotalCost: totals.Cost,
	}, nil
}

func shortToken(tok string) string {
	if len(tok) <= tokenLogPrefix {
		return tok
	}
	return tok[:tokenLogPrefix]
}
