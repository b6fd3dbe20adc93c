package ast

// Modifiers records the access/storage/overridability keywords attached to
// a declaration. The parser enforces mutual exclusion within each group
// (e.g. private/protected/public) and reports a diagnostic on conflict
// rather than refusing to build the node.
type Modifiers struct {
	Private   bool
	Protected bool
	Public    bool
	Static    bool
	Final     bool
	Lazy      bool
	Virtual   bool
}

// Parameter is a single function parameter: Name with an optional
// declared Type and default Value.
type Parameter struct {
	Name    string
	Type    Node
	Default Node
}

// FunctionDeclaration binds Name to a parameter list, optional return
// type, and body. Placement is set for prefix/infix/postfix operator
// overload declarations ("" for an ordinary named function).
type FunctionDeclaration struct {
	base
	Modifiers  *Modifiers
	Name       string
	Placement  string
	Parameters []*Parameter
	ReturnType Node
	Body       *FunctionBody
}

func NewFunctionDeclaration(span Range, mods *Modifiers, name, placement string, params []*Parameter, ret Node, body *FunctionBody) *FunctionDeclaration {
	return &FunctionDeclaration{
		base: newBase("functionDeclaration", span), Modifiers: mods, Name: name,
		Placement: placement, Parameters: params, ReturnType: ret, Body: body,
	}
}

// ClassDeclaration, StructureDeclaration, ObjectDeclaration, and
// ProtocolDeclaration share the same shape: a name, an inheritance list
// (superclasses/adopted protocols), and a member body. They are kept as
// distinct node kinds (rather than one generic "composite declaration")
// because the interpreter's composite arena treats their kinship rules
// differently (spec §5.2).
type ClassDeclaration struct {
	base
	Modifiers  *Modifiers
	Name       string
	Inherits   []Node
	Members    []Node
}

func NewClassDeclaration(span Range, mods *Modifiers, name string, inherits, members []Node) *ClassDeclaration {
	return &ClassDeclaration{base: newBase("classDeclaration", span), Modifiers: mods, Name: name, Inherits: inherits, Members: members}
}

type StructureDeclaration struct {
	base
	Modifiers *Modifiers
	Name      string
	Inherits  []Node
	Members   []Node
}

func NewStructureDeclaration(span Range, mods *Modifiers, name string, inherits, members []Node) *StructureDeclaration {
	return &StructureDeclaration{base: newBase("structureDeclaration", span), Modifiers: mods, Name: name, Inherits: inherits, Members: members}
}

type ObjectDeclaration struct {
	base
	Modifiers *Modifiers
	Name      string
	Inherits  []Node
	Members   []Node
}

func NewObjectDeclaration(span Range, mods *Modifiers, name string, inherits, members []Node) *ObjectDeclaration {
	return &ObjectDeclaration{base: newBase("objectDeclaration", span), Modifiers: mods, Name: name, Inherits: inherits, Members: members}
}

type ProtocolDeclaration struct {
	base
	Modifiers *Modifiers
	Name      string
	Inherits  []Node
	Members   []Node
}

func NewProtocolDeclaration(span Range, mods *Modifiers, name string, inherits, members []Node) *ProtocolDeclaration {
	return &ProtocolDeclaration{base: newBase("protocolDeclaration", span), Modifiers: mods, Name: name, Inherits: inherits, Members: members}
}

// NamespaceDeclaration groups members under Name without participating in
// the composite kinship graph (spec §5.1's index-0 global namespace is the
// implicit top-level instance of this kind).
type NamespaceDeclaration struct {
	base
	Modifiers *Modifiers
	Name      string
	Members   []Node
}

func NewNamespaceDeclaration(span Range, mods *Modifiers, name string, members []Node) *NamespaceDeclaration {
	return &NamespaceDeclaration{base: newBase("namespaceDeclaration", span), Modifiers: mods, Name: name, Members: members}
}

// EnumerationCase is one member of an EnumerationDeclaration, with an
// optional explicit raw Value (e.g. `case red = 1`).
type EnumerationCase struct {
	Name  string
	Value Node
}

type EnumerationDeclaration struct {
	base
	Modifiers *Modifiers
	Name      string
	RawType   Node
	Cases     []EnumerationCase
}

func NewEnumerationDeclaration(span Range, mods *Modifiers, name string, rawType Node, cases []EnumerationCase) *EnumerationDeclaration {
	return &EnumerationDeclaration{base: newBase("enumerationDeclaration", span), Modifiers: mods, Name: name, RawType: rawType, Cases: cases}
}
