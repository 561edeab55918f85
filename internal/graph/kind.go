package graph

// Kind identifies the operation a Node performs.
type Kind uint8

// Node kinds. The zero Kind is invalid so that a zero Node is never mistaken
// for a constant.
const (
	KindInvalid Kind = iota
	KindConstant
	KindParameter
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindPow
	KindLog
	KindExp
	KindSin
	KindCos
	KindTan
	KindAsin
	KindAcos
	KindAtan
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindConstant:  "constant",
	KindParameter: "parameter",
	KindAdd:       "add",
	KindSub:       "sub",
	KindMul:       "mul",
	KindDiv:       "div",
	KindPow:       "pow",
	KindLog:       "log",
	KindExp:       "exp",
	KindSin:       "sin",
	KindCos:       "cos",
	KindTan:       "tan",
	KindAsin:      "asin",
	KindAcos:      "acos",
	KindAtan:      "atan",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Arity returns the number of operands a node of kind k holds,
// or -1 for an invalid kind.
func (k Kind) Arity() int {
	switch k {
	case KindConstant, KindParameter:
		return 0
	case KindLog, KindExp, KindSin, KindCos, KindTan, KindAsin, KindAcos, KindAtan:
		return 1
	case KindAdd, KindSub, KindMul, KindDiv, KindPow:
		return 2
	default:
		return -1
	}
}

// IsLeaf reports whether k is a constant or a parameter.
func (k Kind) IsLeaf() bool {
	return k == KindConstant || k == KindParameter
}

// symbol is the infix operator used by String for binary kinds.
func (k Kind) symbol() string {
	switch k {
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindPow:
		return "^"
	default:
		return "?"
	}
}
