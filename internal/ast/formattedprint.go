package ast

import (
	"strconv"
	"strings"
)

// FormattedPrint renders n as an approximation of forge source syntax.
// It is meant for diagnostics and debugging output, not for a
// round-trippable pretty-printer: whitespace and comments are never
// preserved because the AST never carries them.
func FormattedPrint(n Node) string {
	var sb strings.Builder
	formatNode(&sb, n)
	return sb.String()
}

func formatList(sb *strings.Builder, nodes []Node, sep string) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString(sep)
		}
		formatNode(sb, n)
	}
}

func formatNode(sb *strings.Builder, n Node) {
	if n == nil {
		sb.WriteString("<null>")
		return
	}

	switch t := n.(type) {
	case *TypeVoid:
		sb.WriteString("void")
	case *TypeBool:
		sb.WriteString("bool")
	case *TypeInt:
		if t.IsUnsigned() {
			sb.WriteByte('u')
		} else {
			sb.WriteByte('i')
		}
		sb.WriteString(strconv.Itoa(int(t.BitWidth)))
	case *TypeFloat:
		sb.WriteByte('f')
		sb.WriteString(strconv.Itoa(int(t.BitWidth)))
	case *TypeSymbol:
		sb.WriteString(t.Name)
	case *TypePointer:
		sb.WriteByte('*')
		if t.IsConstant() {
			sb.WriteString("const ")
		}
		formatNode(sb, t.Value)
	case *TypeArray:
		sb.WriteByte('[')
		sb.WriteString(strconv.FormatUint(t.Length, 10))
		sb.WriteByte(']')
		formatNode(sb, t.Value)
	case *TypeFunction:
		sb.WriteString("function(")
		formatList(sb, t.Arguments, ", ")
		sb.WriteString(") -> ")
		formatNode(sb, t.ReturnType)

	case *DeclarationUnion:
		sb.WriteString("union ")
		sb.WriteString(t.Name)
		sb.WriteString(" { ")
		formatList(sb, t.Properties, "; ")
		sb.WriteString(" }")
	case *DeclarationStructure:
		sb.WriteString("structure ")
		sb.WriteString(t.Name)
		sb.WriteString(" { ")
		formatList(sb, t.Declarations, "; ")
		sb.WriteString(" }")
	case *DeclarationProperty:
		sb.WriteString(t.Name)
		sb.WriteString(": ")
		formatNode(sb, t.Type)
		if t.Flags&PropertyFlagOptional != 0 {
			sb.WriteByte('?')
		}
	case *DeclarationInterface:
		if t.Flags&InterfaceFlagAbstract != 0 {
			sb.WriteString("abstract ")
		}
		sb.WriteString("interface ")
		sb.WriteString(t.Name)
		if len(t.Extends) > 0 {
			sb.WriteString(" extends ")
			formatList(sb, t.Extends, ", ")
		}
		sb.WriteString(" { ")
		formatList(sb, t.Declarations, "; ")
		sb.WriteString(" }")
	case *DeclarationFunctionArgument:
		if t.Flags&FunctionArgumentFlagKeyword != 0 {
			sb.WriteString("keyword ")
		}
		formatNode(sb, propertyToNode(t.Property))
		if t.DefaultValue != nil {
			sb.WriteString(" = ")
			formatNode(sb, t.DefaultValue)
		}
	case *DeclarationFunction:
		if t.Flags&FunctionFlagOverride != 0 {
			sb.WriteString("override ")
		}
		if t.Flags&FunctionFlagMutable != 0 {
			sb.WriteString("mutable ")
		}
		sb.WriteString("function ")
		sb.WriteString(t.Name)
		sb.WriteByte('(')
		if t.Type != nil {
			formatList(sb, t.Type.Arguments, ", ")
		}
		sb.WriteString(") -> ")
		if t.Type != nil {
			formatNode(sb, t.Type.ReturnType)
		}
		if t.Body != nil {
			sb.WriteString(" ")
			formatNode(sb, t.Body)
		}
	case *DeclarationAssignment:
		formatNode(sb, propertyToNode(t.Property))
		sb.WriteString(" = ")
		formatNode(sb, t.Value)
	case *DeclarationBlock:
		sb.WriteString("{ ")
		formatList(sb, t.Declarations, "; ")
		sb.WriteString(" }")

	case *StatementReturn:
		sb.WriteString("return")
		if t.Value != nil {
			sb.WriteByte(' ')
			formatNode(sb, t.Value)
		}
	case *StatementIfConditionalClause:
		sb.WriteString("if (")
		formatNode(sb, t.Condition)
		sb.WriteString(") ")
		formatNode(sb, t.Body)
	case *StatementIf:
		formatList(sb, t.ConditionalClauses, " else ")
		if t.ElseClause != nil {
			sb.WriteString(" else ")
			formatNode(sb, t.ElseClause)
		}
	case *StatementWhile:
		sb.WriteString("while (")
		formatNode(sb, t.Condition)
		sb.WriteString(") ")
		formatNode(sb, t.Body)
	case *StatementBlock:
		sb.WriteString("{ ")
		formatList(sb, t.Statements, "; ")
		sb.WriteString(" }")

	case *ValueBool:
		sb.WriteString(strconv.FormatBool(t.Value))
	case *ValueInt:
		if t.Type != nil && t.Type.IsUnsigned() {
			sb.WriteString(strconv.FormatUint(t.AsUint64(), 10))
		} else {
			sb.WriteString(strconv.FormatInt(t.AsInt64(), 10))
		}
	case *ValueFloat:
		sb.WriteString(strconv.FormatFloat(t.Value, 'g', -1, 64))
	case *ValueCharacter:
		sb.WriteString(strconv.QuoteRune(t.Value))
	case *ValueString:
		sb.WriteString(strconv.Quote(t.Value))
	case *ValueArray:
		sb.WriteByte('[')
		formatList(sb, t.Elements, ", ")
		sb.WriteByte(']')
	case *ValueArrayRepeated:
		sb.WriteByte('[')
		formatNode(sb, t.Element)
		sb.WriteString("; ")
		sb.WriteString(strconv.FormatUint(t.Length, 10))
		sb.WriteByte(']')
	case *ValueStructure:
		sb.WriteString("{ ")
		formatList(sb, t.Assignments, ", ")
		sb.WriteString(" }")
	case *ValueSymbol:
		sb.WriteString(t.Name)
	case *ValueCallKeywordArgument:
		sb.WriteString(t.Name)
		sb.WriteString(": ")
		formatNode(sb, t.Value)
	case *ValueCall:
		formatNode(sb, t.Callee)
		sb.WriteByte('(')
		formatList(sb, t.Arguments, ", ")
		if len(t.Arguments) > 0 && len(t.KeywordArguments) > 0 {
			sb.WriteString(", ")
		}
		formatList(sb, t.KeywordArguments, ", ")
		sb.WriteByte(')')
	case *ValueCast:
		formatNode(sb, t.Value)
		sb.WriteString(" as ")
		formatNode(sb, t.Type)
	case *ValueUnary:
		sb.WriteString(t.Kind().Info().Operator)
		formatNode(sb, t.Operand)
	case *ValueBinary:
		if t.Kind() == KindValueAccess {
			formatNode(sb, t.Left)
			sb.WriteByte('.')
			formatNode(sb, t.Right)
			return
		}
		formatNode(sb, t.Left)
		sb.WriteByte(' ')
		sb.WriteString(t.Kind().Info().Operator)
		sb.WriteByte(' ')
		formatNode(sb, t.Right)

	default:
		sb.WriteString(n.Kind().String())
	}
}
