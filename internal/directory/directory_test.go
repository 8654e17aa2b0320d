package directory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Products(t *testing.T) {
	d := NewDefault()

	a, ok := d.Product("ProDuctVentX")
	require.True(t, ok)
	assert.True(t, a.Cost.Equal(decimal.NewFromInt(10)), "cost=%s", a.Cost)

	b, ok := d.Product("HEV_Crowbar")
	require.True(t, ok)
	assert.True(t, b.Cost.Equal(decimal.RequireFromString("35.7")), "cost=%s", b.Cost)

	_, ok = d.Product("hev_crowbar")
	assert.False(t, ok, "lookup must be case sensitive")
	_, ok = d.Product("")
	assert.False(t, ok)
}

func TestDefault_Users(t *testing.T) {
	d := NewDefault()

	cases := []struct {
		name     string
		admin    bool
		discount string
	}{
		{"Bob", false, "2.35"},
		{"Dale", false, "0.22"},
		{"Laura", false, "1"},
		{"Diane", true, "0"},
	}
	for _, tc := range cases {
		u, ok := d.User(tc.name)
		require.True(t, ok, tc.name)
		assert.Equal(t, tc.admin, u.Admin, tc.name)
		assert.True(t, u.Discount.Equal(decimal.RequireFromString(tc.discount)), "%s discount=%s", tc.name, u.Discount)
	}

	_, ok := d.User("Mallory")
	assert.False(t, ok)
}

func TestListsSortedByName(t *testing.T) {
	d := NewDefault()

	users := d.Users()
	require.Len(t, users, 4)
	assert.Equal(t, []string{"Bob", "Dale", "Diane", "Laura"}, []string{users[0].Name, users[1].Name, users[2].Name, users[3].Name})

	products := d.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "HEV_Crowbar", products[0].Name)
	assert.Equal(t, "ProDuctVentX", products[1].Name)
}
