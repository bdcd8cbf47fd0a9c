package build

// Arg is one positional argument of a parsed C function signature, in the
// normal form typeinspect.Field already produces for struct members --
// operation building reuses that shape rather than inventing a second one.
type Arg struct {
	Name         string
	CType        string
	PointerDepth int
	IsArray      bool
	ArrayLength  int
	RefName      string
}

// Signature is the parsed shape of one C function: its name, return type,
// and ordered argument list. It is the BuildOperation input named by
// the operation builder's algorithm (a parsed "{name, return_type, args[]}").
type Signature struct {
	Name               string
	ReturnType         string
	ReturnPointerDepth int
	ReturnRefName      string
	Args               []Arg
}
