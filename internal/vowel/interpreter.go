package vowel

import (
	"fmt"
	"io"
	"math"
)

// maxRepeatedExponent bounds the exponents of '^' that are computed by
// repeated multiplication, larger ones use math.Pow.
const maxRepeatedExponent = 1 << 16

// maxCallDepth bounds the number of nested calls, deeper recursion is
// reported as a runtime error.
const maxCallDepth = 10000

type completionKind int

const (
	// completionNext continues with the next statement
	completionNext completionKind = iota
	// completionReturn unwinds up to the nearest call boundary
	completionReturn
)

// completion is the result of executing a statement. A `return` statement is
// not an error, it travels back to the call as a completion carrying its value.
type completion struct {
	kind  completionKind
	value Value
}

// Interpreter exposes methods for evaluating then given Vowel syntax tree. This
// struct implements ExprVisitor and StmtVisitor
type Interpreter struct {
	globals     *environment
	environment *environment
	locals      Locals
	output      io.Writer
	reporter    Reporter
	isREPL      bool
	depth       int
}

// NewInterpreter creates an interpreter with an empty global scope. Printed
// values are written to output. In REPL mode, the values of expression
// statements are printed too.
func NewInterpreter(output io.Writer, reporter Reporter, isREPL bool) *Interpreter {
	globals := newEnvironment(nil)
	return &Interpreter{globals, globals, nil, output, reporter, isREPL, 0}
}

// Interpret executes the statements using the distance table the resolver
// produced for them. Execution stops at the first runtime error, which is
// reported.
func (in *Interpreter) Interpret(statements []Stmt, locals Locals) {
	in.locals = locals
	in.environment = in.globals
	in.depth = 0
	for _, stmt := range statements {
		result, err := in.exec(stmt)
		if err != nil {
			in.reporter.Report(err)
			return
		}
		if result.kind == completionReturn {
			return
		}
	}
}

func (in *Interpreter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	return in.execBlock(stmt.Stmts, newEnvironment(in.environment))
}

func (in *Interpreter) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	in.environment.define(stmt.Name.Lexeme, newClass(stmt))
	return completion{}, nil
}

func (in *Interpreter) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	val, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	if in.isREPL {
		switch stmt.Expr.(type) {
		case *AssignExpr, *SetExpr:
		default:
			fmt.Fprintln(in.output, stringify(val))
		}
	}
	return completion{}, nil
}

func (in *Interpreter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	fn := newFunction(stmt, in.environment, in.locals)
	declareFunction(in.environment, fn)
	return completion{}, nil
}

func (in *Interpreter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	cond, err := in.eval(stmt.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.exec(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return in.exec(stmt.ElseBranch)
	}
	return completion{}, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	val, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, stringify(val))
	return completion{}, nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	var val Value = Nil{}
	if stmt.Val != nil {
		var err error
		if val, err = in.eval(stmt.Val); err != nil {
			return nil, err
		}
	}
	return completion{completionReturn, val}, nil
}

func (in *Interpreter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	var initVal Value = Nil{}
	if stmt.Init != nil {
		var err error
		if initVal, err = in.eval(stmt.Init); err != nil {
			return nil, err
		}
	}
	in.environment.define(stmt.Name.Lexeme, initVal)
	return completion{}, nil
}

func (in *Interpreter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	for {
		cond, err := in.eval(stmt.Cond)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return completion{}, nil
		}
		result, err := in.exec(stmt.Body)
		if err != nil {
			return nil, err
		}
		if result.kind == completionReturn {
			return result, nil
		}
	}
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	val, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals.distance(expr.ID); ok {
		err = in.environment.assignAt(distance, expr.Name, val)
	} else {
		err = in.globals.assign(expr.Name, val)
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return Bool(!isEqual(lhs, rhs)), nil

	case EQUAL_EQUAL:
		return Bool(isEqual(lhs, rhs)), nil

	case GREATER, GREATER_EQUAL, LESS, LESS_EQUAL:
		return Bool(compare(expr.Op.Typ, lhs, rhs)), nil

	case PLUS:
		leftNum, okLeftNum := lhs.(Number)
		rightNum, okRightNum := rhs.(Number)
		if okLeftNum && okRightNum {
			return leftNum + rightNum, nil
		}
		return Text(stringify(lhs) + stringify(rhs)), nil
	}

	leftNum, rightNum, err := checkNumberOperands(expr.Op, lhs, rhs)
	if err != nil {
		return nil, err
	}
	switch expr.Op.Typ {
	case MINUS:
		return leftNum - rightNum, nil

	case STAR:
		return leftNum * rightNum, nil

	case SLASH:
		if rightNum == 0 {
			return nil, newRuntimeError(expr.Op, "Division by zero.")
		}
		return leftNum / rightNum, nil

	case PERCENT:
		if rightNum == 0 {
			return nil, newRuntimeError(expr.Op, "Division by zero.")
		}
		return Number(math.Mod(float64(leftNum), float64(rightNum))), nil

	case CARET:
		return power(leftNum, rightNum), nil
	}
	msg := fmt.Sprintf("Unknown binary operator '%s'.", expr.Op.Lexeme)
	return nil, newRuntimeError(expr.Op, msg)
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]Value, 0, len(expr.Args))
	for _, arg := range expr.Args {
		val, err := in.eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}

	switch fn := callee.(type) {
	case *Overloads:
		selected, ok := fn.resolve(len(args))
		if !ok {
			msg := fmt.Sprintf(
				"No declaration of '%s' takes %d arguments.",
				fn.name, len(args),
			)
			return nil, newRuntimeError(expr.Paren, msg)
		}
		return in.call(selected, expr.Paren, args)
	case callable:
		if len(args) != fn.arity() {
			msg := fmt.Sprintf(
				"Expected %d arguments but got %d.",
				fn.arity(), len(args),
			)
			return nil, newRuntimeError(expr.Paren, msg)
		}
		return in.call(fn, expr.Paren, args)
	}
	return nil, newRuntimeError(expr.Paren, "Can only call functions and classes.")
}

func (in *Interpreter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	obj, err := in.eval(expr.Obj)
	if err != nil {
		return nil, err
	}
	if inst, ok := obj.(*Instance); ok {
		return inst.get(expr.Name)
	}
	return nil, newRuntimeError(expr.Name, "Only instances have properties.")
}

func (in *Interpreter) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return in.eval(expr.Expr)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if expr.Val == nil {
		return Nil{}, nil
	}
	return expr.Val, nil
}

func (in *Interpreter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case OR:
		if isTruthy(lhs) {
			return lhs, nil
		}
	case AND:
		if !isTruthy(lhs) {
			return lhs, nil
		}
	default:
		msg := fmt.Sprintf("Unknown logical operator '%s'.", expr.Op.Lexeme)
		return nil, newRuntimeError(expr.Op, msg)
	}

	return in.eval(expr.Rhs)
}

func (in *Interpreter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	obj, err := in.eval(expr.Obj)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(expr.Name, "Only instances have fields.")
	}
	val, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	inst.set(expr.Name, val)
	return val, nil
}

func (in *Interpreter) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	cond, err := in.eval(expr.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.eval(expr.Then)
	}
	if expr.Else != nil {
		return in.eval(expr.Else)
	}
	return Nil{}, nil
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	val, err := in.eval(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return Bool(!isTruthy(val)), nil
	case MINUS:
		if num, ok := val.(Number); ok {
			return -num, nil
		}
		return nil, newRuntimeError(expr.Op, "Operand of '-' must be a number.")
	}
	msg := fmt.Sprintf("Unknown unary operator '%s'.", expr.Op.Lexeme)
	return nil, newRuntimeError(expr.Op, msg)
}

func (in *Interpreter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	if distance, ok := in.locals.distance(expr.ID); ok {
		return in.environment.getAt(distance, expr.Name)
	}
	return in.globals.get(expr.Name)
}

// call invokes fn, failing once the calls nest deeper than maxCallDepth
func (in *Interpreter) call(fn callable, paren *Token, args []Value) (Value, error) {
	if in.depth >= maxCallDepth {
		return nil, newRuntimeError(paren, "Stack overflow.")
	}
	in.depth++
	defer func() {
		in.depth--
	}()
	return fn.call(in, args)
}

// execBlock runs the statements inside env. The previous environment is
// restored on every exit path.
func (in *Interpreter) execBlock(statements []Stmt, env *environment) (completion, error) {
	previous := in.environment
	in.environment = env
	defer func() {
		in.environment = previous
	}()
	for _, stmt := range statements {
		result, err := in.exec(stmt)
		if err != nil {
			return completion{}, err
		}
		if result.kind == completionReturn {
			return result, nil
		}
	}
	return completion{}, nil
}

func (in *Interpreter) exec(stmt Stmt) (completion, error) {
	result, err := stmt.Accept(in)
	if err != nil {
		return completion{}, err
	}
	c, _ := result.(completion)
	return c, nil
}

func (in *Interpreter) eval(expr Expr) (Value, error) {
	val, err := expr.Accept(in)
	if err != nil {
		return nil, err
	}
	if v, ok := val.(Value); ok {
		return v, nil
	}
	return Nil{}, nil
}

func checkNumberOperands(op *Token, lhs, rhs Value) (Number, Number, error) {
	leftNum, ok := lhs.(Number)
	if !ok {
		msg := fmt.Sprintf(
			"'%s' requires the left operand to be a number but found %s.",
			op.Lexeme, stringify(lhs),
		)
		return 0, 0, newRuntimeError(op, msg)
	}
	rightNum, ok := rhs.(Number)
	if !ok {
		msg := fmt.Sprintf(
			"'%s' requires the right operand to be a number but found %s.",
			op.Lexeme, stringify(rhs),
		)
		return 0, 0, newRuntimeError(op, msg)
	}
	return leftNum, rightNum, nil
}

// compare implements the relational operators. Texts are compared by their
// length, also against numbers. Any other operand makes the comparison false.
func compare(op TokenType, lhs, rhs Value) bool {
	left, okLeft := relationalOperand(lhs)
	right, okRight := relationalOperand(rhs)
	if !okLeft || !okRight {
		return false
	}
	switch op {
	case GREATER:
		return left > right
	case GREATER_EQUAL:
		return left >= right
	case LESS:
		return left < right
	case LESS_EQUAL:
		return left <= right
	}
	return false
}

func relationalOperand(v Value) (Number, bool) {
	switch v := v.(type) {
	case Number:
		return v, true
	case Text:
		return v.length(), true
	}
	return 0, false
}

// power computes base^exp. A zero exponent always yields 1, non-negative
// integer exponents are computed by repeated multiplication.
func power(base, exp Number) Number {
	if exp == 0 {
		return 1
	}
	if exp > 0 && exp <= maxRepeatedExponent && exp == Number(math.Trunc(float64(exp))) {
		result := Number(1)
		for i := Number(0); i < exp; i++ {
			result *= base
		}
		return result
	}
	return Number(math.Pow(float64(base), float64(exp)))
}
