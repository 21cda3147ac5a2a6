package vowel

import (
	"fmt"
	"strings"
)

// AstPrinter renders the syntax tree as parenthesized prefix expressions, one
// top-level statement per line.
type AstPrinter struct{}

// Print renders every statement of the program
func (printer *AstPrinter) Print(statements []Stmt) string {
	var sb strings.Builder
	for _, stmt := range statements {
		sb.WriteString(printer.stmt(stmt))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintExpr renders a single expression
func (printer *AstPrinter) PrintExpr(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) stmt(stmt Stmt) string {
	s, _ := stmt.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) stmts(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, stmt := range stmts {
		parts[i] = printer.stmt(stmt)
	}
	return strings.Join(parts, " ")
}

func (printer *AstPrinter) parenthesize(name string, parts ...string) string {
	if len(parts) == 0 {
		return fmt.Sprintf("(%s)", name)
	}
	return fmt.Sprintf("(%s %s)", name, strings.Join(parts, " "))
}

func (printer *AstPrinter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	return printer.parenthesize("block", printer.stmts(stmt.Stmts)), nil
}

func (printer *AstPrinter) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	parts := []string{stmt.Name.Lexeme}
	for _, method := range stmt.Methods {
		parts = append(parts, printer.stmt(method))
	}
	return printer.parenthesize("class", parts...), nil
}

func (printer *AstPrinter) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	return printer.parenthesize(";", printer.PrintExpr(stmt.Expr)), nil
}

func (printer *AstPrinter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	params := make([]string, len(stmt.Params))
	for i, param := range stmt.Params {
		params[i] = param.Lexeme
	}
	return printer.parenthesize(
		"func",
		stmt.Name.Lexeme,
		printer.parenthesize(strings.Join(params, " ")),
		printer.stmts(stmt.Body),
	), nil
}

func (printer *AstPrinter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	parts := []string{printer.PrintExpr(stmt.Cond), printer.stmt(stmt.ThenBranch)}
	if stmt.ElseBranch != nil {
		parts = append(parts, printer.stmt(stmt.ElseBranch))
	}
	return printer.parenthesize("if", parts...), nil
}

func (printer *AstPrinter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return printer.parenthesize("wandika", printer.PrintExpr(stmt.Expr)), nil
}

func (printer *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if stmt.Val == nil {
		return printer.parenthesize("return"), nil
	}
	return printer.parenthesize("return", printer.PrintExpr(stmt.Val)), nil
}

func (printer *AstPrinter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	if stmt.Init == nil {
		return printer.parenthesize("var", stmt.Name.Lexeme), nil
	}
	return printer.parenthesize("var", stmt.Name.Lexeme, printer.PrintExpr(stmt.Init)), nil
}

func (printer *AstPrinter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	return printer.parenthesize(
		"albeit",
		printer.PrintExpr(stmt.Cond),
		printer.stmt(stmt.Body),
	), nil
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return printer.parenthesize("=", expr.Name.Lexeme, printer.PrintExpr(expr.Val)), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(
		expr.Op.Lexeme,
		printer.PrintExpr(expr.Lhs),
		printer.PrintExpr(expr.Rhs),
	), nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	parts := []string{printer.PrintExpr(expr.Callee)}
	for _, arg := range expr.Args {
		parts = append(parts, printer.PrintExpr(arg))
	}
	return printer.parenthesize("call", parts...), nil
}

func (printer *AstPrinter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	return printer.parenthesize(".", printer.PrintExpr(expr.Obj), expr.Name.Lexeme), nil
}

func (printer *AstPrinter) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return printer.parenthesize("group", printer.PrintExpr(expr.Expr)), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if text, ok := expr.Val.(Text); ok {
		return fmt.Sprintf("%q", string(text)), nil
	}
	return stringify(expr.Val), nil
}

func (printer *AstPrinter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return printer.parenthesize(
		expr.Op.Lexeme,
		printer.PrintExpr(expr.Lhs),
		printer.PrintExpr(expr.Rhs),
	), nil
}

func (printer *AstPrinter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	return printer.parenthesize(
		"=",
		printer.parenthesize(".", printer.PrintExpr(expr.Obj), expr.Name.Lexeme),
		printer.PrintExpr(expr.Val),
	), nil
}

func (printer *AstPrinter) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	parts := []string{printer.PrintExpr(expr.Cond), printer.PrintExpr(expr.Then)}
	if expr.Else != nil {
		parts = append(parts, printer.PrintExpr(expr.Else))
	}
	return printer.parenthesize("?:", parts...), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, printer.PrintExpr(expr.Expr)), nil
}

func (printer *AstPrinter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}
