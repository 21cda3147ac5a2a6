package vowel

import (
	"container/list"
	"fmt"
)

// Each map reprents a single block scope, variables at the global scope are not
// tracked by the resolver. If it cannot resolve a variable in the local
// scopes, it assumes the variable to be in the global scope. The value tells
// whether the name has finished its initialization.
type scopeMap = map[string]bool

type fnType = int

const (
	fnTypeNone fnType = iota
	fnTypeFunction
	fnTypeMethod
)

// Locals is the distance table produced by the resolver. It is indexed by the
// id of variable and assignment expressions, a negative entry means the
// variable lives in the global scope and is looked up by name.
type Locals []int

const globalDistance = -1

// distance returns the number of frames between the node's frame and the
// frame that holds its binding
func (locals Locals) distance(id int) (int, bool) {
	if id < 0 || id >= len(locals) || locals[id] < 0 {
		return 0, false
	}
	return locals[id], true
}

// Resolver performs semantics analysis on the syntax tree. It walks the tree a
// single time and stops at the first error.
type Resolver struct {
	scopes    *list.List
	locals    Locals
	reporter  Reporter
	currentFn fnType
}

func NewResolver(reporter Reporter) *Resolver {
	r := new(Resolver)
	r.scopes = list.New()
	r.reporter = reporter
	r.currentFn = fnTypeNone
	return r
}

// Resolve computes the distance table of the program. The table is returned
// even when an error was reported, callers must check the reporter.
func (r *Resolver) Resolve(program *Program) Locals {
	r.locals = make(Locals, program.Nodes)
	for i := range r.locals {
		r.locals[i] = globalDistance
	}
	defer func() {
		r.scopes.Init()
		r.currentFn = fnTypeNone
	}()

	for _, stmt := range program.Stmts {
		if err := r.resolveStmt(stmt); err != nil {
			r.reporter.Report(err)
			break
		}
	}
	return r.locals
}

func (r *Resolver) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	r.beginScope()
	defer r.endScope()
	return nil, r.resolveStmts(stmt.Stmts)
}

func (r *Resolver) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	return nil, r.resolveExpr(stmt.Expr)
}

func (r *Resolver) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	r.declare(stmt.Name)
	r.define(stmt.Name)
	// Methods are not bound to instances, their bodies are still checked.
	for _, method := range stmt.Methods {
		if err := r.resolveFunction(method, fnTypeMethod); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	r.declare(stmt.Name)
	r.define(stmt.Name)
	return nil, r.resolveFunction(stmt, fnTypeFunction)
}

func (r *Resolver) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	if err := r.resolveExpr(stmt.Cond); err != nil {
		return nil, err
	}
	if err := r.resolveStmt(stmt.ThenBranch); err != nil {
		return nil, err
	}
	if stmt.ElseBranch != nil {
		return nil, r.resolveStmt(stmt.ElseBranch)
	}
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return nil, r.resolveExpr(stmt.Expr)
}

func (r *Resolver) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if r.currentFn == fnTypeNone {
		return nil, newResolveError(stmt.Keyword, "Can't return from top-level code.")
	}
	if stmt.Val != nil {
		return nil, r.resolveExpr(stmt.Val)
	}
	return nil, nil
}

func (r *Resolver) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	if scope := r.innermost(); scope != nil {
		if _, hasName := scope[stmt.Name.Lexeme]; hasName {
			return nil, newResolveError(stmt.Name,
				"Already has a variable with this name in this scope.")
		}
	}
	r.declare(stmt.Name)
	if stmt.Init != nil {
		if err := r.resolveExpr(stmt.Init); err != nil {
			return nil, err
		}
	}
	r.define(stmt.Name)
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	if err := r.resolveExpr(stmt.Cond); err != nil {
		return nil, err
	}
	return nil, r.resolveStmt(stmt.Body)
}

func (r *Resolver) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	if err := r.resolveExpr(expr.Val); err != nil {
		return nil, err
	}
	r.resolveLocal(expr.ID, expr.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	if err := r.resolveExpr(expr.Lhs); err != nil {
		return nil, err
	}
	return nil, r.resolveExpr(expr.Rhs)
}

func (r *Resolver) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	if err := r.resolveExpr(expr.Callee); err != nil {
		return nil, err
	}
	for _, arg := range expr.Args {
		if err := r.resolveExpr(arg); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	return nil, r.resolveExpr(expr.Obj)
}

func (r *Resolver) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return nil, r.resolveExpr(expr.Expr)
}

func (r *Resolver) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	if err := r.resolveExpr(expr.Lhs); err != nil {
		return nil, err
	}
	return nil, r.resolveExpr(expr.Rhs)
}

func (r *Resolver) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	if err := r.resolveExpr(expr.Val); err != nil {
		return nil, err
	}
	return nil, r.resolveExpr(expr.Obj)
}

func (r *Resolver) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	if err := r.resolveExpr(expr.Cond); err != nil {
		return nil, err
	}
	if err := r.resolveExpr(expr.Then); err != nil {
		return nil, err
	}
	if expr.Else == nil {
		r.reporter.Warn(fmt.Sprintf(
			"[Line %d, Column %d]: '?:' does not have an else branch, the result is nil when the condition is false.",
			expr.Question.Line,
			expr.Question.Column,
		))
		return nil, nil
	}
	return nil, r.resolveExpr(expr.Else)
}

func (r *Resolver) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return nil, r.resolveExpr(expr.Expr)
}

func (r *Resolver) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	if scope := r.innermost(); scope != nil {
		if ready, exist := scope[expr.Name.Lexeme]; exist && !ready {
			return nil, newResolveError(expr.Name,
				"Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(expr.ID, expr.Name)
	return nil, nil
}

// resolveFunction opens one scope holding the parameters and resolves the body
// directly in it, matching the single frame the interpreter creates per call.
func (r *Resolver) resolveFunction(fn *FunctionStmt, typ fnType) error {
	enclosingFn := r.currentFn
	r.currentFn = typ
	defer func() {
		r.currentFn = enclosingFn
	}()

	r.beginScope()
	defer r.endScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	return r.resolveStmts(fn.Body)
}

func (r *Resolver) resolveLocal(id int, name *Token) {
	steps := 0
	for scope := r.scopes.Front(); scope != nil; scope = scope.Next() {
		scopeMap := scope.Value.(scopeMap)
		if _, ok := scopeMap[name.Lexeme]; ok {
			r.record(id, steps)
			return
		}
		steps++
	}
}

// record stores the distance of the node, the table grows for ids that were
// not counted by the parser
func (r *Resolver) record(id, distance int) {
	for id >= len(r.locals) {
		r.locals = append(r.locals, globalDistance)
	}
	r.locals[id] = distance
}

func (r *Resolver) resolveStmts(stmts []Stmt) error {
	for _, stmt := range stmts {
		if err := r.resolveStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Similar to Interpreter.exec
func (r *Resolver) resolveStmt(stmt Stmt) error {
	_, err := stmt.Accept(r)
	return err
}

// Similar to Interpreter.eval
func (r *Resolver) resolveExpr(expr Expr) error {
	_, err := expr.Accept(r)
	return err
}

// called when resolver enters a new scope
func (r *Resolver) beginScope() {
	r.scopes.PushFront(make(scopeMap))
}

// called when resolver exits a new scope
func (r *Resolver) endScope() {
	r.scopes.Remove(r.scopes.Front())
}

func (r *Resolver) innermost() scopeMap {
	if r.scopes.Front() == nil {
		return nil
	}
	return r.scopes.Front().Value.(scopeMap)
}

func (r *Resolver) declare(name *Token) {
	if scope := r.innermost(); scope != nil {
		scope[name.Lexeme] = false
	}
}

func (r *Resolver) define(name *Token) {
	if scope := r.innermost(); scope != nil {
		scope[name.Lexeme] = true
	}
}
