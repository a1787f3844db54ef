package sugar

import "github.com/cottand/sugar/frontend/intern"

// Names the desugared tree refers to by convention
const (
	ConstructorName = "create"
	CallableName    = "apply"
	NoneName        = "None"
	HasNextName     = "has_next"
	NextName        = "next"
	UpdateName      = "update"
)

type names struct {
	create  intern.Symbol
	apply   intern.Symbol
	none    intern.Symbol
	hasNext intern.Symbol
	next    intern.Symbol
	update  intern.Symbol
}

func internNames(in intern.Interner) names {
	return names{
		create:  in.Intern(ConstructorName),
		apply:   in.Intern(CallableName),
		none:    in.Intern(NoneName),
		hasNext: in.Intern(HasNextName),
		next:    in.Intern(NextName),
		update:  in.Intern(UpdateName),
	}
}
