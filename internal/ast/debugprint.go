package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// DebugPrintOptions gates how deep and how wide a debug dump descends.
// Zero values mean "unlimited".
type DebugPrintOptions struct {
	MaxDepth      int
	MaxListLength int
}

type propKind int

const (
	propScalar propKind = iota
	propChild
	propList
)

type debugProp struct {
	name   string
	kind   propKind
	scalar string
	child  Node
	list   []Node
}

// DebugPrint renders n as the mechanically structured dump described in
// §6: a leading newline followed by 2-space-indented `name = value`
// lines; child nodes render as `[kind-tag]` followed by their own
// recursive block; list-valued properties render as `name[i] = ...`.
// Primary type kinds (void, bool) are the one exception: they print
// only their bare keyword, with no block at all.
func DebugPrint(n Node, opts DebugPrintOptions) string {
	var sb strings.Builder
	debugPrintNode(&sb, n, 0, opts)
	return sb.String()
}

func debugPrintNode(sb *strings.Builder, n Node, depth int, opts DebugPrintOptions) {
	if n == nil {
		sb.WriteString("null")
		return
	}
	if n.Kind().Info().Flags.Has(FlagTypePrimary) {
		sb.WriteString(n.Kind().String())
		return
	}

	sb.WriteString("\n")

	if opts.MaxDepth > 0 && depth+1 > opts.MaxDepth {
		sb.WriteString(strings.Repeat("  ", depth+1))
		sb.WriteString("...\n")
		return
	}

	for _, p := range debugProperties(n) {
		writeDebugProp(sb, p, depth+1, opts)
	}
}

func writeDebugProp(sb *strings.Builder, p debugProp, indent int, opts DebugPrintOptions) {
	prefix := strings.Repeat("  ", indent)

	switch p.kind {
	case propScalar:
		sb.WriteString(prefix)
		sb.WriteString(p.name)
		sb.WriteString(" = ")
		sb.WriteString(p.scalar)
		sb.WriteString("\n")
	case propChild:
		sb.WriteString(prefix)
		sb.WriteString(p.name)
		sb.WriteString(" = ")
		writeDebugChild(sb, p.child, indent, opts)
	case propList:
		n := len(p.list)
		if opts.MaxListLength > 0 && n > opts.MaxListLength {
			n = opts.MaxListLength
		}
		for i := 0; i < n; i++ {
			sb.WriteString(prefix)
			sb.WriteString(fmt.Sprintf("%s[%d] = ", p.name, i))
			writeDebugChild(sb, p.list[i], indent, opts)
		}
	}
}

func writeDebugChild(sb *strings.Builder, child Node, indent int, opts DebugPrintOptions) {
	if child == nil {
		sb.WriteString("null\n")
		return
	}
	if child.Kind().Info().Flags.Has(FlagTypePrimary) {
		sb.WriteString(child.Kind().String())
		sb.WriteString("\n")
		return
	}
	sb.WriteString("[")
	sb.WriteString(child.Kind().String())
	sb.WriteString("]")
	debugPrintNode(sb, child, indent, opts)
}

func boolScalar(name string, v bool) debugProp {
	return debugProp{name: name, kind: propScalar, scalar: strconv.FormatBool(v)}
}

func intScalar(name string, v int64) debugProp {
	return debugProp{name: name, kind: propScalar, scalar: strconv.FormatInt(v, 10)}
}

func uintScalar(name string, v uint64) debugProp {
	return debugProp{name: name, kind: propScalar, scalar: strconv.FormatUint(v, 10)}
}

func strScalar(name, v string) debugProp {
	return debugProp{name: name, kind: propScalar, scalar: v}
}

func quotedScalar(name, v string) debugProp {
	return debugProp{name: name, kind: propScalar, scalar: strconv.Quote(v)}
}

func childProp(name string, n Node) debugProp {
	return debugProp{name: name, kind: propChild, child: n}
}

func listProp(name string, l []Node) debugProp {
	return debugProp{name: name, kind: propList, list: l}
}

// debugProperties returns n's declared fields in node.h declaration
// order, excluding kind and source range (those are never printed).
func debugProperties(n Node) []debugProp {
	switch t := n.(type) {
	case *TypeInt:
		return []debugProp{boolScalar("unsigned", t.IsUnsigned()), intScalar("bit_width", int64(t.BitWidth))}
	case *TypeFloat:
		return []debugProp{intScalar("bit_width", int64(t.BitWidth))}
	case *TypeSymbol:
		return []debugProp{quotedScalar("name", t.Name)}
	case *TypePointer:
		return []debugProp{
			boolScalar("constant", t.IsConstant()),
			boolScalar("implicit_dereference", t.Flags&PointerFlagImplicitDereference != 0),
			childProp("value", t.Value),
		}
	case *TypeArray:
		return []debugProp{uintScalar("length", t.Length), childProp("value", t.Value)}
	case *TypeFunction:
		return []debugProp{
			listProp("arguments", t.Arguments),
			childProp("variadic_positional_arguments", t.VariadicPositionalArguments),
			childProp("variadic_keyword_arguments", t.VariadicKeywordArguments),
			childProp("return_type", t.ReturnType),
		}

	case *DeclarationUnion:
		return []debugProp{quotedScalar("name", t.Name), listProp("properties", t.Properties)}
	case *DeclarationStructure:
		return []debugProp{quotedScalar("name", t.Name), listProp("declarations", t.Declarations)}
	case *DeclarationProperty:
		return []debugProp{
			boolScalar("optional", t.Flags&PropertyFlagOptional != 0),
			boolScalar("non_optional", t.Flags&PropertyFlagNonOptional != 0),
			boolScalar("spread", t.Flags&PropertyFlagSpread != 0),
			quotedScalar("name", t.Name),
			childProp("type", t.Type),
		}
	case *DeclarationInterface:
		return []debugProp{
			boolScalar("abstract", t.Flags&InterfaceFlagAbstract != 0),
			quotedScalar("name", t.Name),
			listProp("extends", t.Extends),
			listProp("declarations", t.Declarations),
		}
	case *DeclarationFunctionArgument:
		return []debugProp{
			boolScalar("keyword", t.Flags&FunctionArgumentFlagKeyword != 0),
			childProp("property", propertyToNode(t.Property)),
			childProp("default_value", t.DefaultValue),
		}
	case *DeclarationFunction:
		return []debugProp{
			boolScalar("mutable", t.Flags&FunctionFlagMutable != 0),
			boolScalar("override", t.Flags&FunctionFlagOverride != 0),
			quotedScalar("name", t.Name),
			childProp("type", typeFunctionToNode(t.Type)),
			childProp("body", t.Body),
		}
	case *DeclarationAssignment:
		return []debugProp{childProp("property", propertyToNode(t.Property)), childProp("value", t.Value)}
	case *DeclarationBlock:
		return []debugProp{listProp("declarations", t.Declarations)}

	case *StatementReturn:
		return []debugProp{childProp("value", t.Value)}
	case *StatementIfConditionalClause:
		return []debugProp{childProp("condition", t.Condition), childProp("body", t.Body)}
	case *StatementIf:
		return []debugProp{listProp("conditional_clauses", t.ConditionalClauses), childProp("else_clause", t.ElseClause)}
	case *StatementWhile:
		return []debugProp{childProp("condition", t.Condition), childProp("body", t.Body)}
	case *StatementBlock:
		return []debugProp{listProp("statements", t.Statements)}

	case *ValueBool:
		return []debugProp{boolScalar("value", t.Value)}
	case *ValueInt:
		scalar := strconv.FormatUint(t.AsUint64(), 10)
		if !t.Type.IsUnsigned() {
			scalar = strconv.FormatInt(t.AsInt64(), 10)
		}
		return []debugProp{
			boolScalar("unsigned", t.Type.IsUnsigned()),
			intScalar("bit_width", int64(t.Type.BitWidth)),
			strScalar("value", scalar),
		}
	case *ValueFloat:
		return []debugProp{
			intScalar("bit_width", int64(t.Type.BitWidth)),
			strScalar("value", strconv.FormatFloat(t.Value, 'g', -1, 64)),
		}
	case *ValueCharacter:
		return []debugProp{quotedScalar("value", string(t.Value))}
	case *ValueString:
		return []debugProp{quotedScalar("value", t.Value)}
	case *ValueArray:
		return []debugProp{listProp("elements", t.Elements)}
	case *ValueArrayRepeated:
		return []debugProp{uintScalar("length", t.Length), childProp("element", t.Element)}
	case *ValueStructure:
		return []debugProp{listProp("assignments", t.Assignments)}
	case *ValueSymbol:
		return []debugProp{quotedScalar("name", t.Name)}
	case *ValueCallKeywordArgument:
		return []debugProp{quotedScalar("name", t.Name), childProp("value", t.Value)}
	case *ValueCall:
		return []debugProp{
			childProp("callee", t.Callee),
			listProp("arguments", t.Arguments),
			listProp("keyword_arguments", t.KeywordArguments),
		}
	case *ValueCast:
		return []debugProp{childProp("value", t.Value), childProp("type", t.Type)}
	case *ValueUnary:
		return []debugProp{childProp("operand", t.Operand)}
	case *ValueBinary:
		return []debugProp{childProp("left", t.Left), childProp("right", t.Right)}
	}

	panic("ast: debugProperties: unhandled node type")
}
