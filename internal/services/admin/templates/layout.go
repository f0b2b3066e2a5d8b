package templates

import "github.com/louisbranch/tableside/internal/services/admin/routepath"

type navItem struct {
	path string
	key  string
}

var navItems = []navItem{
	{path: routepath.Root, key: "nav.dashboard"},
	{path: routepath.Orders, key: "nav.orders"},
	{path: routepath.Menu, key: "nav.menu"},
	{path: routepath.QR, key: "nav.qr"},
}

func isActiveNav(current string, item string) bool {
	if item == routepath.Root {
		return current == routepath.Root
	}
	return current == item || len(current) > len(item) && current[:len(item)+1] == item+"/"
}
