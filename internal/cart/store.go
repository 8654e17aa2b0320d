package cart

import "CartDesk/internal/directory"

// Store keys carts by user name, not by session, so a cart outlives the
// sessions that filled it.
type Store interface {
	Ensure(user string)
	Add(user string, p directory.Product) error
	Clear(user string) error
	Items(user string) ([]directory.Product, error)
}
