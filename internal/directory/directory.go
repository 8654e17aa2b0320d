package directory

import (
	"sort"

	"github.com/shopspring/decimal"
)

type User struct {
	Name     string          `json:"name"`
	Admin    bool            `json:"admin"`
	Discount decimal.Decimal `json:"discount"`
}

type Product struct {
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

// Directory is the fixed catalog of users and products. It is never mutated
// after construction, so it needs no locking.
type Directory struct {
	users    map[string]User
	products map[string]Product
}

func New(users []User, products []Product) *Directory {
	d := &Directory{
		users:    make(map[string]User, len(users)),
		products: make(map[string]Product, len(products)),
	}
	for _, u := range users {
		d.users[u.Name] = u
	}
	for _, p := range products {
		d.products[p.Name] = p
	}
	return d
}

func NewDefault() *Directory {
	return New(
		[]User{
			{Name: "Bob", Admin: false, Discount: decimal.RequireFromString("2.35")},
			{Name: "Dale", Admin: false, Discount: decimal.RequireFromString("0.22")},
			{Name: "Laura", Admin: false, Discount: decimal.RequireFromString("1.00")},
			{Name: "Diane", Admin: true, Discount: decimal.Zero},
		},
		[]Product{
			{Name: "ProDuctVentX", Cost: decimal.RequireFromString("10.00")},
			{Name: "HEV_Crowbar", Cost: decimal.RequireFromString("35.70")},
		},
	)
}

func (d *Directory) User(name string) (User, bool) {
	u, ok := d.users[name]
	return u, ok
}

func (d *Directory) Product(name string) (Product, bool) {
	p, ok := d.products[name]
	return p, ok
}

func (d *Directory) Users() []User {
	out := make([]User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (d *Directory) Products() []Product {
	out := make([]Product, 0, len(d.products))
	for _, p := range d.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
