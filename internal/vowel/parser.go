package vowel

import "fmt"

// maxArgs is the maximum number of parameters a function can declare and the
// maximum number of arguments a call can pass.
const maxArgs = 255

// Program is the result of parsing a whole source unit
type Program struct {
	Stmts []Stmt
	// Nodes is the number of ids handed out to variable and assignment
	// expressions. The resolver's distance table has one slot per id.
	Nodes int
}

// Parser composes the syntax tree for the Vowel language from the sequence of
// valid tokens. The grammar is documented in doc.go.
//
// A parser stops at the first error it finds, the error is reported and the
// rest of the tokens are ignored.
type Parser struct {
	current  int
	nextID   int
	tokens   []*Token
	reporter Reporter
}

// NewParser creates a new parser for the Vowel language
func NewParser(tokens []*Token, reporter Reporter) *Parser {
	return &Parser{0, 0, tokens, reporter}
}

// Parse builds the program. It returns nil if a syntax error was found.
func (parser *Parser) Parse() *Program {
	statements := make([]Stmt, 0)
	for !parser.isEOF() {
		stmt, err := parser.declaration()
		if err != nil {
			parser.reporter.Report(err)
			return nil
		}
		statements = append(statements, stmt)
	}
	return &Program{statements, parser.nextID}
}

// declaration --> varDecl | statement ;
func (parser *Parser) declaration() (Stmt, error) {
	if parser.match(VAR) {
		return parser.varDecl()
	}
	return parser.statement()
}

// varDecl --> "var" IDENT ( "=" expr )? ";" ;
func (parser *Parser) varDecl() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var init Expr
	if parser.match(EQUAL) {
		if init, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(
		SEMICOLON,
		"Expect ';' after variable declaration.",
	); err != nil {
		return nil, err
	}
	return NewVarStmt(name, init), nil
}

// statement --> printStmt | ifStmt | whileStmt | funcDecl | classDecl
//             | returnStmt | block | exprStmt ;
func (parser *Parser) statement() (Stmt, error) {
	if parser.match(PRINT) {
		return parser.printStmt()
	}
	if parser.match(IF) {
		return parser.ifStmt()
	}
	if parser.match(WHILE) {
		return parser.whileStmt()
	}
	if parser.match(FUNC) {
		return parser.function("function")
	}
	if parser.match(CLASS) {
		return parser.classDecl()
	}
	if parser.match(RETURN) {
		return parser.returnStmt()
	}
	if parser.match(LEFT_BRACE) {
		stmts, err := parser.block()
		if err != nil {
			return nil, err
		}
		return NewBlockStmt(stmts), nil
	}
	return parser.exprStmt()
}

// block --> "{" declaration* "}" ;
func (parser *Parser) block() ([]Stmt, error) {
	stmts := make([]Stmt, 0)
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		stmt, err := parser.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// classDecl --> "class" IDENT "{" function* "}" ;
func (parser *Parser) classDecl() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}
	methods := make([]*FunctionStmt, 0)
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		method, err := parser.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}
	return NewClassStmt(name, methods), nil
}

// function --> IDENT "(" params? ")" block ;
// params   --> IDENT ( "," IDENT )* ;
func (parser *Parser) function(kind string) (*FunctionStmt, error) {
	name, err := parser.consume(IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(
		LEFT_PAREN,
		fmt.Sprintf("Expect '(' after %s name.", kind),
	); err != nil {
		return nil, err
	}
	params := make([]*Token, 0)
	if !parser.check(RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				return nil, newParseError(
					parser.peek(),
					fmt.Sprintf("Can't have more than %d parameters.", maxArgs),
				)
			}
			param, err := parser.consume(IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := parser.consume(
		LEFT_BRACE,
		fmt.Sprintf("Expect '{' before %s body.", kind),
	); err != nil {
		return nil, err
	}
	body, err := parser.block()
	if err != nil {
		return nil, err
	}
	return NewFunctionStmt(name, params, body), nil
}

// ifStmt --> "if" "(" expr ")" statement ( "else" statement )? ;
func (parser *Parser) ifStmt() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := parser.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if parser.match(ELSE) {
		if elseBranch, err = parser.statement(); err != nil {
			return nil, err
		}
	}
	return NewIfStmt(cond, thenBranch, elseBranch), nil
}

// whileStmt --> "albeit" "(" expr ")" statement ;
func (parser *Parser) whileStmt() (Stmt, error) {
	keyword := parser.prev()
	if _, err := parser.consume(
		LEFT_PAREN,
		fmt.Sprintf("Expect '(' after '%s'.", keyword.Lexeme),
	); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := parser.statement()
	if err != nil {
		return nil, err
	}
	return NewWhileStmt(cond, body), nil
}

// printStmt --> "wandika" expr ";" ;
func (parser *Parser) printStmt() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return NewPrintStmt(expr), nil
}

// returnStmt --> "return" expr? ";" ;
func (parser *Parser) returnStmt() (Stmt, error) {
	keyword := parser.prev()
	var val Expr
	if !parser.check(SEMICOLON) {
		var err error
		if val, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return NewReturnStmt(keyword, val), nil
}

// exprStmt --> expr ";" ;
func (parser *Parser) exprStmt() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return NewExprStmt(expr), nil
}

// expr --> assignment ;
func (parser *Parser) expression() (Expr, error) {
	return parser.assignment()
}

// assignment --> ( call "." )? IDENT "=" assignment
//              | ternary ;
func (parser *Parser) assignment() (Expr, error) {
	expr, err := parser.ternary()
	if err != nil {
		return nil, err
	}
	if parser.match(EQUAL) {
		equals := parser.prev()
		val, err := parser.assignment()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *VarExpr:
			// the variable node is dropped, its id now names the assignment
			return NewAssignExpr(target.ID, target.Name, val), nil
		case *GetExpr:
			return NewSetExpr(target.Obj, target.Name, val), nil
		}
		return nil, newParseError(equals, "Invalid assignment target.")
	}
	return expr, nil
}

// ternary --> logic_or ( "?" expr ( ":" expr )? )? ;
func (parser *Parser) ternary() (Expr, error) {
	expr, err := parser.or()
	if err != nil {
		return nil, err
	}
	if parser.match(QUESTION) {
		question := parser.prev()
		thenExpr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		var elseExpr Expr
		if parser.match(COLON) {
			if elseExpr, err = parser.expression(); err != nil {
				return nil, err
			}
		}
		return NewTernaryExpr(expr, question, thenExpr, elseExpr), nil
	}
	return expr, nil
}

// logic_or --> logic_and ( "oba" logic_and )* ;
func (parser *Parser) or() (Expr, error) {
	expr, err := parser.and()
	if err != nil {
		return nil, err
	}
	for parser.match(OR) {
		op := parser.prev()
		rhs, err := parser.and()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(op, expr, rhs)
	}
	return expr, nil
}

// logic_and --> equality ( "ne" equality )* ;
func (parser *Parser) and() (Expr, error) {
	expr, err := parser.equality()
	if err != nil {
		return nil, err
	}
	for parser.match(AND) {
		op := parser.prev()
		rhs, err := parser.equality()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(op, expr, rhs)
	}
	return expr, nil
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `comparison` if does not hits "!=" or "==".
//
// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	return parser.binary(parser.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (Expr, error) {
	return parser.binary(parser.term, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	return parser.binary(parser.factor, MINUS, PLUS)
}

// factor --> unary ( ( "*" | "/" | "%" | "^" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	return parser.binary(parser.unary, STAR, SLASH, PERCENT, CARET)
}

// binary parses a left-associative chain of operands produced by operand and
// separated by any of the given operators.
func (parser *Parser) binary(
	operand func() (Expr, error),
	operators ...TokenType,
) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.match(operators...) {
		op := parser.prev()
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
	return expr, nil
}

// unary --> ( "!" | "-" ) unary
//         | call ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS) {
		op := parser.prev()
		expr, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, expr), nil
	}
	return parser.call()
}

// call --> primary ( "(" args? ")" | "." IDENT )* ;
func (parser *Parser) call() (Expr, error) {
	expr, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for {
		if parser.match(LEFT_PAREN) {
			if expr, err = parser.finishCall(expr); err != nil {
				return nil, err
			}
		} else if parser.match(DOT) {
			name, err := parser.consume(IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = NewGetExpr(expr, name)
		} else {
			break
		}
	}
	return expr, nil
}

// args --> expr ( "," expr )* ;
func (parser *Parser) finishCall(callee Expr) (Expr, error) {
	args := make([]Expr, 0)
	if !parser.check(RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				return nil, newParseError(
					parser.peek(),
					fmt.Sprintf("Can't have more than %d arguments.", maxArgs),
				)
			}
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	paren, err := parser.consume(RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return NewCallExpr(callee, paren, args), nil
}

// primary --> NUMBER | STRING | "false" | "true" | "nil" | IDENT
//           | "(" expr ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(FALSE) {
		return NewLiteralExpr(Bool(false)), nil
	}
	if parser.match(TRUE) {
		return NewLiteralExpr(Bool(true)), nil
	}
	if parser.match(NIL) {
		return NewLiteralExpr(Nil{}), nil
	}
	if parser.match(NUMBER) {
		return NewLiteralExpr(Number(parser.prev().Literal.(float64))), nil
	}
	if parser.match(STRING) {
		return NewLiteralExpr(Text(parser.prev().Literal.(string))), nil
	}
	if parser.match(IDENTIFIER) {
		return NewVarExpr(parser.newID(), parser.prev()), nil
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return NewGroupExpr(expr), nil
	}
	return nil, newParseError(parser.peek(), "Expect expression.")
}

// newID hands out the next expression id
func (parser *Parser) newID() int {
	id := parser.nextID
	parser.nextID++
	return id
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, newParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
