package templates

// Template describes one of the visual layouts the client-side renderer
// supports. The catalogue is closed; identifiers outside it fall back to
// the default at render time, never at submission time.
type Template struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultID is the template used when a record carries an unknown identifier.
const DefaultID = "simple"

var catalogue = []Template{
	{ID: "simple", Name: "Simple"},
	{ID: "neon", Name: "Neon"},
	{ID: "cool", Name: "Cool"},
	{ID: "yuttari", Name: "Yuttari"},
	{ID: "techblue", Name: "Tech Blue"},
	{ID: "animal", Name: "Animal"},
}

// All returns the full template catalogue in display order.
func All() []Template {
	list := make([]Template, len(catalogue))
	copy(list, catalogue)
	return list
}

// IsValid reports whether id names a known template.
func IsValid(id string) bool {
	for _, t := range catalogue {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Resolve maps a stored template identifier to the one the renderer should
// use, substituting the default for anything unknown.
func Resolve(id string) string {
	if IsValid(id) {
		return id
	}
	return DefaultID
}
