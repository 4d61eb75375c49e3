// Package parser implements the hand-written recursive-descent parser
// described in spec.md §4.1: source text plus a source-file name in,
// *ast.Program out, with every failure located to a line and column.
//
// Every grammar-level routine returns a parseresult.ParseResult[T]. A
// structural mismatch (nil error, OK=false) means "try the next
// alternative"; a non-nil error means the parse is unrecoverable and
// propagates straight out of Parse.
package parser

import (
	"strconv"

	"wasilang/ast"
	"wasilang/internal/source"
	"wasilang/parseresult"
)

// Parse parses source text into a Program. It fails with a *source.Error
// carrying a line and column on the first syntactic problem it meets.
func Parse(src string, sourceName string) (*ast.Program, error) {
	prog := &ast.Program{}
	cur := source.New(sourceName, src)

	for {
		cur = cur.SkipWS()
		if cur.IsEOF() {
			break
		}
		res, err := parseDefinition(cur, prog)
		if err != nil {
			return nil, err
		}
		if !res.OK {
			return nil, source.NewError(cur, "expected a definition (\"def ...;\")")
		}
		prog.Functions = append(prog.Functions, res.Value)
		cur = res.Remaining
	}

	if prog.MainFunction == nil {
		return nil, source.NewError(cur, "no main function defined")
	}

	return prog, nil
}

// definition := "def" ws identifier ws "=" ws type ws func_body ws ";"
func parseDefinition(c source.Cursor, prog *ast.Program) (parseresult.ParseResult[*ast.Function], error) {
	start := c

	c2, ok := c.Exact("def")
	if !ok {
		return parseresult.Fail[*ast.Function](c), nil
	}
	c2 = c2.SkipWS()

	name, c2, ok := c2.Identifier()
	if !ok {
		return parseresult.ParseResult[*ast.Function]{}, source.NewError(c2, "expected a function name after 'def'")
	}
	c2 = c2.SkipWS()

	assignCursor := c2
	c2, ok = c2.Exact("=")
	if !ok {
		return parseresult.ParseResult[*ast.Function]{}, source.NewError(c2, "expected '=' after function name %q", name)
	}
	c2 = c2.SkipWS()

	typeRes, err := parseType(c2, prog)
	if err != nil {
		return parseresult.ParseResult[*ast.Function]{}, err
	}
	if !typeRes.OK {
		return parseresult.ParseResult[*ast.Function]{}, source.NewError(c2, "expected a type after '='")
	}
	c2 = typeRes.Remaining.SkipWS()

	bodyRes, err := parseFuncBody(c2, prog)
	if err != nil {
		return parseresult.ParseResult[*ast.Function]{}, err
	}
	if !bodyRes.OK {
		return parseresult.ParseResult[*ast.Function]{}, source.NewError(c2, "expected a function body (\"{ ... }\") after the type")
	}
	c2 = bodyRes.Remaining.SkipWS()

	c2, ok = c2.Exact(";")
	if !ok {
		return parseresult.ParseResult[*ast.Function]{}, source.NewError(c2, "expected ';' to end definition of %q", name)
	}

	fn := &ast.Function{
		Name:       name,
		SourceFile: c.Name,
		Type:       typeRes.Value,
		Body:       bodyRes.Value,
	}

	if name == "main" {
		if !ast.IsEntryType(fn.Type) {
			return parseresult.ParseResult[*ast.Function]{}, source.NewError(assignCursor,
				"main must have type fun(out exitCode: i32), got %s", fn.Type.String())
		}
		if prog.MainFunction != nil {
			return parseresult.ParseResult[*ast.Function]{}, source.NewError(start, "multiple definitions of 'main'")
		}
		prog.MainFunction = fn
	}

	return parseresult.Ok(c2, fn), nil
}

// type := func_type | "i32"
func parseType(c source.Cursor, prog *ast.Program) (parseresult.ParseResult[ast.Type], error) {
	if funcRes, ok, err := tryParseFuncType(c, prog); err != nil {
		return parseresult.ParseResult[ast.Type]{}, err
	} else if ok {
		return funcRes, nil
	}

	if c2, ok := c.Exact("i32"); ok {
		t := prog.FindOrAdd(&ast.BuiltInType{Name: "i32"})
		return parseresult.Ok(c2, t), nil
	}

	return parseresult.Fail[ast.Type](c), nil
}

func tryParseFuncType(c source.Cursor, prog *ast.Program) (parseresult.ParseResult[ast.Type], bool, error) {
	c2, ok := c.Exact("fun")
	if !ok {
		return parseresult.ParseResult[ast.Type]{}, false, nil
	}
	c2 = c2.SkipWS()

	c2, ok = c2.Exact("(")
	if !ok {
		return parseresult.ParseResult[ast.Type]{}, true, source.NewError(c2, "expected '(' after 'fun'")
	}
	c2 = c2.SkipWS()

	var params []ast.FuncParameter
	if _, closed := c2.Exact(")"); !closed {
		paramRes, err := parseParam(c2, prog)
		if err != nil {
			return parseresult.ParseResult[ast.Type]{}, true, err
		}
		if !paramRes.OK {
			return parseresult.ParseResult[ast.Type]{}, true, source.NewError(c2, "expected a parameter or ')'")
		}
		params = append(params, paramRes.Value)
		c2 = paramRes.Remaining.SkipWS()

		for {
			next, ok := c2.Exact(",")
			if !ok {
				break
			}
			next = next.SkipWS()
			paramRes, err := parseParam(next, prog)
			if err != nil {
				return parseresult.ParseResult[ast.Type]{}, true, err
			}
			if !paramRes.OK {
				return parseresult.ParseResult[ast.Type]{}, true, source.NewError(next, "expected a parameter after ','")
			}
			params = append(params, paramRes.Value)
			c2 = paramRes.Remaining.SkipWS()
		}
	}

	c2 = c2.SkipWS()
	c2, ok = c2.Exact(")")
	if !ok {
		return parseresult.ParseResult[ast.Type]{}, true, source.NewError(c2, "expected ')' to close parameter list")
	}

	t := prog.FindOrAdd(&ast.FuncType{Parameters: params})
	return parseresult.Ok[ast.Type](c2, t), true, nil
}

// param := direction ws identifier ws ":" ws type
func parseParam(c source.Cursor, prog *ast.Program) (parseresult.ParseResult[ast.FuncParameter], error) {
	dirRes, err := parseDirection(c)
	if err != nil {
		return parseresult.ParseResult[ast.FuncParameter]{}, err
	}
	if !dirRes.OK {
		return parseresult.Fail[ast.FuncParameter](c), nil
	}
	c2 := dirRes.Remaining.SkipWS()

	name, c2, ok := c2.Identifier()
	if !ok {
		return parseresult.ParseResult[ast.FuncParameter]{}, source.NewError(c2, "expected a parameter name")
	}
	c2 = c2.SkipWS()

	c2, ok = c2.Exact(":")
	if !ok {
		return parseresult.ParseResult[ast.FuncParameter]{}, source.NewError(c2, "expected ':' after parameter name %q", name)
	}
	c2 = c2.SkipWS()

	typeRes, err := parseType(c2, prog)
	if err != nil {
		return parseresult.ParseResult[ast.FuncParameter]{}, err
	}
	if !typeRes.OK {
		return parseresult.ParseResult[ast.FuncParameter]{}, source.NewError(c2, "expected a type for parameter %q", name)
	}

	return parseresult.Ok(typeRes.Remaining, ast.FuncParameter{
		Name:      name,
		Direction: dirRes.Value,
		Type:      typeRes.Value,
	}), nil
}

// direction := "in" | "out" | "inout"
//
// Trying "in" before "inout" is safe because Cursor.Exact refuses to
// match a keyword that is itself a prefix of a longer identifier in the
// input, so "in" fails against "inout x: i32" and the third alternative
// gets a chance.
func parseDirection(c source.Cursor) (parseresult.ParseResult[ast.ParameterDirection], error) {
	if c2, ok := c.Exact("in"); ok {
		return parseresult.Ok(c2, ast.DirIn), nil
	}
	if c2, ok := c.Exact("out"); ok {
		return parseresult.Ok(c2, ast.DirOut), nil
	}
	if c2, ok := c.Exact("inout"); ok {
		return parseresult.Ok(c2, ast.DirInout), nil
	}
	return parseresult.Fail[ast.ParameterDirection](c), nil
}

// func_body := "{" ws expression ws "}"
func parseFuncBody(c source.Cursor, prog *ast.Program) (parseresult.ParseResult[ast.Expression], error) {
	c2, ok := c.Exact("{")
	if !ok {
		return parseresult.Fail[ast.Expression](c), nil
	}
	c2 = c2.SkipWS()

	if _, closed := c2.Exact("}"); closed {
		return parseresult.ParseResult[ast.Expression]{}, source.NewError(c2, "function body cannot be empty")
	}

	exprRes, err := parseAssignment(c2, prog)
	if err != nil {
		return parseresult.ParseResult[ast.Expression]{}, err
	}
	if !exprRes.OK {
		return parseresult.ParseResult[ast.Expression]{}, source.NewError(c2, "expected a single assignment expression in function body")
	}
	c2 = exprRes.Remaining.SkipWS()

	c2, ok = c2.Exact("}")
	if !ok {
		return parseresult.ParseResult[ast.Expression]{}, source.NewError(c2, "function body must contain exactly one expression; expected '}'")
	}

	return parseresult.Ok(c2, exprRes.Value), nil
}

// expression := identifier ws "=" ws terms ws ";"
func parseAssignment(c source.Cursor, prog *ast.Program) (parseresult.ParseResult[ast.Expression], error) {
	start := c
	name, c2, ok := c.Identifier()
	if !ok {
		return parseresult.Fail[ast.Expression](c), nil
	}
	c2 = c2.SkipWS()

	c2, ok = c2.Exact("=")
	if !ok {
		return parseresult.ParseResult[ast.Expression]{}, source.NewError(c2, "expected '=' after %q", name)
	}
	c2 = c2.SkipWS()

	valRes, err := parseTerms(c2, prog)
	if err != nil {
		return parseresult.ParseResult[ast.Expression]{}, err
	}
	if !valRes.OK {
		return parseresult.ParseResult[ast.Expression]{}, source.NewError(c2, "expected an expression after '='")
	}
	c2 = valRes.Remaining.SkipWS()

	c2, ok = c2.Exact(";")
	if !ok {
		return parseresult.ParseResult[ast.Expression]{}, source.NewError(c2, "expected ';' after assignment to %q", name)
	}

	rep := start.Full[start.Offset():c2.Offset()]
	return parseresult.Ok[ast.Expression](c2, ast.NewInitAssignment(rep, name, valRes.Value)), nil
}

// terms := term ( ws op ws term )*, left-associative with all five
// operators at equal precedence.
func parseTerms(c source.Cursor, prog *ast.Program) (parseresult.ParseResult[ast.Expression], error) {
	start := c
	lhsRes, err := parseTerm(c, prog)
	if err != nil {
		return parseresult.ParseResult[ast.Expression]{}, err
	}
	if !lhsRes.OK {
		return parseresult.Fail[ast.Expression](c), nil
	}

	lhs := lhsRes.Value
	cur := lhsRes.Remaining
	for {
		afterWS := cur.SkipWS()
		op, opCursor, ok := parseOp(afterWS)
		if !ok {
			break
		}
		opCursor = opCursor.SkipWS()

		rhsRes, err := parseTerm(opCursor, prog)
		if err != nil {
			return parseresult.ParseResult[ast.Expression]{}, err
		}
		if !rhsRes.OK {
			return parseresult.ParseResult[ast.Expression]{}, source.NewError(opCursor, "expected a term after %q", op.String())
		}

		cur = rhsRes.Remaining
		rep := start.Full[start.Offset():cur.Offset()]
		lhs = ast.NewBinaryOpExpression(rep, op, lhs, rhsRes.Value)
	}

	return parseresult.Ok(cur, lhs), nil
}

func parseOp(c source.Cursor) (ast.BinaryOperator, source.Cursor, bool) {
	if len(c.Remaining) == 0 {
		return 0, c, false
	}
	next, _ := c.Exact(c.Remaining[:1])
	switch c.Remaining[0] {
	case '+':
		return ast.OpAdd, next, true
	case '-':
		return ast.OpSubtract, next, true
	case '*':
		return ast.OpMultiply, next, true
	case '/':
		return ast.OpDivide, next, true
	case '%':
		return ast.OpModulo, next, true
	default:
		return 0, c, false
	}
}

// term := "(" ws terms ws ")" | call | var_ref | number "i32"
func parseTerm(c source.Cursor, prog *ast.Program) (parseresult.ParseResult[ast.Expression], error) {
	if c2, ok := c.Exact("("); ok {
		c2 = c2.SkipWS()
		inner, err := parseTerms(c2, prog)
		if err != nil {
			return parseresult.ParseResult[ast.Expression]{}, err
		}
		if !inner.OK {
			return parseresult.ParseResult[ast.Expression]{}, source.NewError(c2, "expected an expression inside '('")
		}
		c2 = inner.Remaining.SkipWS()
		c2, ok = c2.Exact(")")
		if !ok {
			return parseresult.ParseResult[ast.Expression]{}, source.NewError(c2, "expected ')' to close '('")
		}
		return parseresult.Ok(c2, inner.Value), nil
	}

	if numRes, ok, err := tryParseLiteral(c); err != nil {
		return parseresult.ParseResult[ast.Expression]{}, err
	} else if ok {
		return numRes, nil
	}

	if name, c2, ok := c.Identifier(); ok {
		if callRes, matched, err := tryParseCall(c, name, c2, prog); err != nil {
			return parseresult.ParseResult[ast.Expression]{}, err
		} else if matched {
			return callRes, nil
		}
		return parseresult.Ok[ast.Expression](c2, ast.NewVarExpression(name, name)), nil
	}

	return parseresult.Fail[ast.Expression](c), nil
}

func tryParseLiteral(c source.Cursor) (parseresult.ParseResult[ast.Expression], bool, error) {
	numStr, c2, ok := c.Number()
	if !ok {
		return parseresult.ParseResult[ast.Expression]{}, false, nil
	}
	c3, ok := c2.Exact("i32")
	if !ok {
		return parseresult.ParseResult[ast.Expression]{}, true, source.NewError(c, "numeric literal %q is missing its 'i32' suffix", numStr)
	}
	v, err := strconv.ParseInt(numStr, 10, 32)
	if err != nil {
		return parseresult.ParseResult[ast.Expression]{}, true, source.NewError(c, "integer literal %q is out of range for i32", numStr)
	}
	rep := c.Full[c.Offset():c3.Offset()]
	return parseresult.Ok[ast.Expression](c3, ast.NewLiteral(rep, int32(v))), true, nil
}

// call := identifier ws "(" ws ( arg )? ws ")"
func tryParseCall(start source.Cursor, name string, afterName source.Cursor, prog *ast.Program) (parseresult.ParseResult[ast.Expression], bool, error) {
	c2 := afterName.SkipWS()
	c2, ok := c2.Exact("(")
	if !ok {
		return parseresult.ParseResult[ast.Expression]{}, false, nil
	}
	c2 = c2.SkipWS()

	var args []ast.FuncArgument
	if _, closed := c2.Exact(")"); !closed {
		argRes, err := parseArg(c2, prog)
		if err != nil {
			return parseresult.ParseResult[ast.Expression]{}, true, err
		}
		if !argRes.OK {
			return parseresult.ParseResult[ast.Expression]{}, true, source.NewError(c2, "expected an argument or ')' in call to %q", name)
		}
		args = append(args, argRes.Value)
		c2 = argRes.Remaining.SkipWS()
	}

	c2, ok = c2.Exact(")")
	if !ok {
		return parseresult.ParseResult[ast.Expression]{}, true, source.NewError(c2, "expected ')' to close call to %q (at most one argument is supported)", name)
	}

	rep := start.Full[start.Offset():c2.Offset()]
	return parseresult.Ok[ast.Expression](c2, ast.NewFunctionCall(rep, name, args)), true, nil
}

// arg := direction ws identifier ws ":" ws terms
func parseArg(c source.Cursor, prog *ast.Program) (parseresult.ParseResult[ast.FuncArgument], error) {
	dirRes, err := parseDirection(c)
	if err != nil {
		return parseresult.ParseResult[ast.FuncArgument]{}, err
	}
	if !dirRes.OK {
		return parseresult.Fail[ast.FuncArgument](c), nil
	}
	c2 := dirRes.Remaining.SkipWS()

	name, c2, ok := c2.Identifier()
	if !ok {
		return parseresult.ParseResult[ast.FuncArgument]{}, source.NewError(c2, "expected an argument name")
	}
	c2 = c2.SkipWS()

	c2, ok = c2.Exact(":")
	if !ok {
		return parseresult.ParseResult[ast.FuncArgument]{}, source.NewError(c2, "expected ':' after argument name %q", name)
	}
	c2 = c2.SkipWS()

	valRes, err := parseTerms(c2, prog)
	if err != nil {
		return parseresult.ParseResult[ast.FuncArgument]{}, err
	}
	if !valRes.OK {
		return parseresult.ParseResult[ast.FuncArgument]{}, source.NewError(c2, "expected an expression for argument %q", name)
	}

	return parseresult.Ok(valRes.Remaining, ast.FuncArgument{
		Name:      name,
		Direction: dirRes.Value,
		Expr:      valRes.Value,
	}), nil
}
