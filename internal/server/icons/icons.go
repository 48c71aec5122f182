// Package icons is the closed registry of service icon identifiers. The
// dashboard stores identifiers; the site maps them to icon components.
package icons

// Fallback is used for identifiers outside the registry.
const Fallback = "code"

// Icon describes one selectable service icon.
type Icon struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Component string `json:"component"`
}

var registry = []Icon{
	{ID: "code", Label: "Web Development", Component: "FaCode"},
	{ID: "palette", Label: "Design", Component: "FaPalette"},
	{ID: "smartphone", Label: "Mobile Apps", Component: "FaMobileAlt"},
	{ID: "search", Label: "SEO", Component: "FaSearch"},
	{ID: "megaphone", Label: "Marketing", Component: "FaBullhorn"},
	{ID: "chart", Label: "Analytics", Component: "FaChartLine"},
	{ID: "cloud", Label: "Cloud & Hosting", Component: "FaCloud"},
	{ID: "shield", Label: "Security", Component: "FaShieldAlt"},
	{ID: "cart", Label: "E-commerce", Component: "FaShoppingCart"},
	{ID: "pen", Label: "Content Writing", Component: "FaPenNib"},
	{ID: "video", Label: "Video Production", Component: "FaVideo"},
	{ID: "globe", Label: "Branding", Component: "FaGlobe"},
}

var byID = func() map[string]Icon {
	m := make(map[string]Icon, len(registry))
	for _, i := range registry {
		m[i.ID] = i
	}
	return m
}()

// Valid reports whether id is a registered identifier.
func Valid(id string) bool {
	_, ok := byID[id]
	return ok
}

// Resolve returns the icon for id, or the Fallback icon when id is unknown.
func Resolve(id string) Icon {
	if i, ok := byID[id]; ok {
		return i
	}
	return byID[Fallback]
}

// List returns a copy of the registry in display order.
func List() []Icon {
	out := make([]Icon, len(registry))
	copy(out, registry)
	return out
}
