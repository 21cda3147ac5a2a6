/*
Package vowel implements a tree-walking interpreter for the Vowel language.

A source unit goes through four passes: the Scanner turns it into tokens, the
Parser builds a Program, the Resolver computes the Locals distance table and
the Interpreter executes the statements. Every pass reports its errors to a
Reporter, the caller checks the reporter before starting the next pass.

Grammars

	program     --> declaration* EOF ;
	declaration --> varDecl | statement ;
	varDecl     --> "var" IDENT ( "=" expr )? ";" ;
	statement   --> printStmt | ifStmt | whileStmt | funcDecl | classDecl
	              | returnStmt | block | exprStmt ;
	block       --> "{" declaration* "}" ;
	classDecl   --> "class" IDENT "{" function* "}" ;
	funcDecl    --> "func" function ;
	function    --> IDENT "(" params? ")" block ;
	params      --> IDENT ( "," IDENT )* ;
	ifStmt      --> "if" "(" expr ")" statement ( "else" statement )? ;
	whileStmt   --> "albeit" "(" expr ")" statement ;
	printStmt   --> "wandika" expr ";" ;
	returnStmt  --> "return" expr? ";" ;
	exprStmt    --> expr ";" ;
	expr        --> assignment ;
	assignment  --> ( call "." )? IDENT "=" assignment
	              | ternary ;
	ternary     --> logic_or ( "?" expr ( ":" expr )? )? ;
	logic_or    --> logic_and ( "oba" logic_and )* ;
	logic_and   --> equality ( "ne" equality )* ;
	equality    --> comparison ( ( "==" | "!=" ) comparison )* ;
	comparison  --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term        --> factor ( ( "+" | "-" ) factor )* ;
	factor      --> unary ( ( "*" | "/" | "%" | "^" ) unary )* ;
	unary       --> ( "!" | "-" ) unary
	              | call ;
	call        --> primary ( "(" args? ")" | "." IDENT )* ;
	args        --> expr ( "," expr )* ;
	primary     --> NUMBER | STRING | "false" | "true" | "nil" | IDENT
	              | "(" expr ")" ;

Classes only construct instances, methods are parsed and checked by the
resolver but never bound.
*/
package vowel

//go:generate go run ../cmd/ast_codegen .
