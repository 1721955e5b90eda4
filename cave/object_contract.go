package cave

// Object is a drawable cave primitive. Concrete shapes live in cave/object;
// this package only defines the contract so the document types can hold a
// mixed list without knowing any shape.
type Object interface {
	// Tag is the type tag used as the first token of the encoded line.
	Tag() string
	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Object
	// Draw writes the shape's footprint into the grid. It never reads prior
	// grid contents; overlap resolution is the document's draw order.
	Draw(r *Rendered)
	// Encode returns the one-line text form: tag plus the field tokens in
	// descriptor order.
	Encode() string
	// Fields returns the shape's descriptor table. The returned slice is
	// shared type-level metadata and must not be modified.
	Fields() []Field
	// CharacteristicElement is the element an editor shows for the object in
	// lists and icons.
	CharacteristicElement() Element
}

// FieldType tells a generic editor or codec how to treat a field's value.
type FieldType int

const (
	FieldCoordinate FieldType = iota
	FieldElement
	FieldInt
)

// Field describes one editable, serializable field of an object variant.
// A variant's table is built once at package init and shared by every
// instance; table order is the wire order.
type Field struct {
	Name string
	Type FieldType
	// Get reads the field from an instance of the owning variant. The value
	// is a Coordinate, Element or int matching Type.
	Get func(Object) any
	// Set writes the field on an instance of the owning variant. It reports
	// an error for a value of the wrong kind and never partially applies.
	Set func(Object, any) error
}
