package bim

// Properties is the raw metadata a runtime returns for one entity. A
// property set is only usable for component extraction when it carries a
// numeric "type" entry; anything else is decoration.
type Properties map[string]any

// Name returns the display name property, if present and non-empty
func (p Properties) Name() (string, bool) {
	v, ok := p["Name"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// TypeCode returns the numeric type property. Runtimes disagree about
// integer width, so every common numeric representation is accepted.
func (p Properties) TypeCode() (int32, bool) {
	v, ok := p["type"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int32:
		return n, true
	case int:
		return int32(n), true
	case int64:
		return int32(n), true
	case float64:
		return int32(n), true
	}
	return 0, false
}

// Runtime is the black-box decoder collaborator: it turns raw model
// bytes into a geometry buffer with a per-vertex identifier attribute
// and answers per-entity property queries against the decoded model.
type Runtime interface {
	// Decode parses the byte stream and returns the geometry buffer
	// plus a handle identifying the decoded model for later property
	// queries.
	Decode(data []byte) (*GeometryBuffer, int32, error)

	// ItemProperties returns the metadata of one entity of a previously
	// decoded model.
	ItemProperties(modelHandle, id int32) (Properties, error)
}
