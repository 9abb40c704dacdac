package types

// Kind classifies a type for terminality checks and fuzzer dispatch.
type Kind int

const (
	// KindReference is a decomposable object type produced by constructors
	// and methods discovered through producer search.
	KindReference Kind = iota

	// KindVoid is the absent value kind; only method output positions use it.
	KindVoid

	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble

	// KindString is terminal like the primitives: strings are supplied by
	// literals and perturbed by the fuzzer, never built by producer search.
	KindString
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindReference:
		return "reference"
	case KindVoid:
		return "void"
	case KindBoolean:
		return "boolean"
	case KindByte:
		return "byte"
	case KindChar:
		return "char"
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Type is a semantic identifier for a data kind. Two types are the same type
// exactly when their names are equal; the kind and supertype list are derived
// attributes supplied by the host catalog.
type Type struct {
	// Name uniquely identifies the type (e.g. "int", "com.example.Point").
	Name string

	// Kind tags the type for terminality and fuzzer dispatch.
	Kind Kind

	// Supertypes is the flattened list of ancestor and interface names a
	// value of this type may be assigned to. Only meaningful for reference
	// types; the slice is treated as read-only.
	Supertypes []string
}

// Well-known terminal types.
var (
	Void    = Type{Name: "void", Kind: KindVoid}
	Boolean = Type{Name: "boolean", Kind: KindBoolean}
	Byte    = Type{Name: "byte", Kind: KindByte}
	Char    = Type{Name: "char", Kind: KindChar}
	Short   = Type{Name: "short", Kind: KindShort}
	Int     = Type{Name: "int", Kind: KindInt}
	Long    = Type{Name: "long", Kind: KindLong}
	Float   = Type{Name: "float", Kind: KindFloat}
	Double  = Type{Name: "double", Kind: KindDouble}
	String  = Type{Name: "string", Kind: KindString}
)

// Reference constructs a reference type with the given flattened supertype
// names.
func Reference(name string, supertypes ...string) Type {
	return Type{Name: name, Kind: KindReference, Supertypes: supertypes}
}

// Terminal reports whether the type is excluded from producer decomposition.
// Terminal values come from literals or fuzzing, not from constructors.
func (t Type) Terminal() bool {
	return t.Kind != KindReference
}

// Equal reports whether t and u name the same type.
func (t Type) Equal(u Type) bool {
	return t.Name == u.Name
}

// widensTo lists the kinds each numeric kind widens into, mirroring the
// widening conversions of the modeled host language.
var widensTo = map[Kind][]Kind{
	KindByte:  {KindShort, KindInt, KindLong, KindFloat, KindDouble},
	KindShort: {KindInt, KindLong, KindFloat, KindDouble},
	KindChar:  {KindInt, KindLong, KindFloat, KindDouble},
	KindInt:   {KindLong, KindFloat, KindDouble},
	KindLong:  {KindFloat, KindDouble},
	KindFloat: {KindDouble},
}

// AssignableTo reports whether a value of type t may be used where a value of
// type u is required. Equality always satisfies; a reference type additionally
// satisfies any of its declared supertypes, and a numeric primitive satisfies
// the kinds it widens into.
func (t Type) AssignableTo(u Type) bool {
	if t.Name == u.Name {
		return true
	}
	if t.Kind == KindReference && u.Kind == KindReference {
		for _, s := range t.Supertypes {
			if s == u.Name {
				return true
			}
		}
		return false
	}
	for _, k := range widensTo[t.Kind] {
		if k == u.Kind {
			return true
		}
	}
	return false
}

// String returns the type name.
func (t Type) String() string {
	return t.Name
}
