package web

// NavItem es un link de la barra de navegación.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

const (
	BrandName = "Bark Advisor"
	BrandHref = "/"
)

var navLinks = []NavItem{
	{Label: "Dashboard", Href: "/dashboard"},
	{Label: "Product Search", Href: "/search"},
}

// Navigation arma los items marcando activo el que coincide exactamente con path.
func Navigation(path string) []NavItem {
	out := make([]NavItem, len(navLinks))
	for i, l := range navLinks {
		l.Active = l.Href == path
		out[i] = l
	}
	return out
}
