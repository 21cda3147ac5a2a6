package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	// we do it the scripting way, instead of having types support from Go stdlib
	expressionTypes := []string{
		// ID indexes the resolver's distance table.
		"Assign: ID int, Name *Token, Val Expr",
		"Binary: Op *Token, Lhs Expr, Rhs Expr",
		// Call stores the token for the closing parenthesis so the token's location
		// can be used when we report RuntimeError caused by a function call.
		"Call: Callee Expr, Paren *Token, Args []Expr",
		"Get: Obj Expr, Name *Token",
		"Group: Expr Expr",
		"Literal: Val Value",
		"Logical: Op *Token, Lhs Expr, Rhs Expr",
		"Set: Obj Expr, Name *Token, Val Expr",
		"Ternary: Cond Expr, Question *Token, Then Expr, Else Expr",
		"Unary: Op *Token, Expr Expr",
		"Var: ID int, Name *Token",
	}
	statementTypes := []string{
		"Block: Stmts []Stmt",
		"Class: Name *Token, Methods []*FunctionStmt",
		"Expr: Expr Expr",
		"Function: Name *Token, Params []*Token, Body []Stmt",
		"If: Cond Expr, ThenBranch Stmt, ElseBranch Stmt",
		"Print: Expr Expr",
		"Return: Keyword *Token, Val Expr",
		"Var: Name *Token, Init Expr",
		"While: Cond Expr, Body Stmt",
	}

	if err := defineAst(outputDir, "Expr", expressionTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := defineAst(outputDir, "Stmt", statementTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defineAst(outputDir string, baseName string, types []string) error {
	var buf bytes.Buffer

	packageName := filepath.Base(outputDir)
	if abs, err := filepath.Abs(outputDir); err == nil {
		packageName = filepath.Base(abs)
	}
	fmt.Fprintf(&buf, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// Interface for Expr in AST
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&buf, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", baseName, err)
	}
	fpath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.go", strings.ToLower(baseName)),
	)
	return os.WriteFile(fpath, src, 0644)
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	var fieldNames []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
		fieldNames = append(fieldNames, strings.Split(field, " ")[0])
	}

	// Struct definition
	fmt.Fprintf(writer, "\ntype %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		fieldList,
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n")
}
