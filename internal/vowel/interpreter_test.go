package vowel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretExpressions(t *testing.T) {
	testCases := []struct {
		src  string
		eval string
	}{
		// literals
		{"wandika 1;", "1"},
		{"wandika 3.14;", "3.14"},
		{"wandika 3.14000;", "3.14"},
		{"wandika 4294967296;", "4294967296"},
		{"wandika \"hello\";", "hello"},
		{"wandika true;", "true"},
		{"wandika nil;", "nil"},
		// arithmetic
		{"wandika 1 + 2;", "3"},
		{"wandika 10 - 4 - 3;", "3"},
		{"wandika 10 / 4;", "2.5"},
		{"wandika 2 * 3 + 1;", "7"},
		{"wandika (1 + 2) * 3;", "9"},
		{"wandika 7 % 3;", "1"},
		{"wandika -7 % 3;", "-1"},
		{"wandika 2 ^ 10;", "1024"},
		{"wandika 2 ^ 0;", "1"},
		{"wandika 0 ^ 0;", "1"},
		{"wandika 2 ^ -1;", "0.5"},
		{"wandika 4 ^ 0.5;", "2"},
		// '+' falls back to concatenation
		{"wandika \"a\" + 1;", "a1"},
		{"wandika 1 + \"a\";", "1a"},
		{"wandika \"a\" + \"b\";", "ab"},
		{"wandika \"a\" + nil;", "anil"},
		{"wandika true + 1;", "true1"},
		// relational operators compare texts by length
		{"wandika 2 > 1;", "true"},
		{"wandika 1 >= 1;", "true"},
		{"wandika 1 < 1;", "false"},
		{"wandika 1 <= 1;", "true"},
		{"wandika \"ab\" > 1;", "true"},
		{"wandika \"ab\" > \"abc\";", "false"},
		{"wandika \"abc\" <= \"xyz\";", "true"},
		{"wandika 3 >= \"abc\";", "true"},
		{"wandika 4 < \"abc\";", "false"},
		{"wandika nil < 1;", "false"},
		{"wandika true > false;", "false"},
		// equality
		{"wandika nil == nil;", "true"},
		{"wandika nil == false;", "false"},
		{"wandika false == nil;", "false"},
		{"wandika 1 == 1;", "true"},
		{"wandika \"a\" == \"a\";", "true"},
		{"wandika 1 == \"1\";", "false"},
		{"wandika 1 != 2;", "true"},
		{"wandika nil != nil;", "false"},
		// unary
		{"wandika -(3);", "-3"},
		{"wandika --3;", "3"},
		{"wandika !true;", "false"},
		{"wandika !nil;", "true"},
		{"wandika !0;", "false"},
		{"wandika !\"\";", "false"},
		{"wandika !!nil;", "false"},
		// logical operators return the deciding operand
		{"wandika nil oba \"x\";", "x"},
		{"wandika 1 oba 2;", "1"},
		{"wandika nil ne 2;", "nil"},
		{"wandika 1 ne 2;", "2"},
		{"wandika false ne missing;", "false"},
		{"wandika true oba missing;", "true"},
		// ternary
		{"wandika true ? 1 : 2;", "1"},
		{"wandika nil ? 1 : 2;", "2"},
		{"wandika false ? 1;", "nil"},
		{"wandika 0 ? \"zero\" : \"none\";", "zero"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		out, report := run(tc.src)

		assert.False(report.HadError(), tc.src)
		assert.False(report.HadRuntimeError(), tc.src)
		assert.Equal(tc.eval, strings.TrimSpace(out), tc.src)
	}
}

func TestInterpretRuntimeErrors(t *testing.T) {
	testCases := []struct {
		src string
		err string
	}{
		{"wandika 1 / 0;", "Error: [Line 1, Column 11]: Division by zero."},
		{"wandika 0 / 0;", "Error: [Line 1, Column 11]: Division by zero."},
		{"wandika 1 % 0;", "Error: [Line 1, Column 11]: Division by zero."},
		{
			"wandika \"a\" - 1;",
			"Error: [Line 1, Column 13]: '-' requires the left operand to be a number but found a.",
		},
		{
			"wandika 1 * nil;",
			"Error: [Line 1, Column 11]: '*' requires the right operand to be a number but found nil.",
		},
		{
			"wandika 2 ^ true;",
			"Error: [Line 1, Column 11]: '^' requires the right operand to be a number but found true.",
		},
		{"wandika -\"a\";", "Error: [Line 1, Column 9]: Operand of '-' must be a number."},
		{"wandika x;", "Error: [Line 1, Column 9]: Undefined variable 'x'."},
		{"x = 1;", "Error: [Line 1, Column 1]: Undefined variable 'x'."},
		{"var a = 1; a();", "Error: [Line 1, Column 14]: Can only call functions and classes."},
		{"func f(a) {} f();", "Error: [Line 1, Column 16]: Expected 1 arguments but got 0."},
		{"class A {} A(1);", "Error: [Line 1, Column 15]: Expected 0 arguments but got 1."},
		{
			"func f(a) {} func f(a, b) {} f(1, 2, 3);",
			"Error: [Line 1, Column 39]: No declaration of 'f' takes 3 arguments.",
		},
		{
			"func f(a) {} { func f(a, b) {} f(1); }",
			"Error: [Line 1, Column 35]: Expected 2 arguments but got 1.",
		},
		{"var a = 1; a.b;", "Error: [Line 1, Column 14]: Only instances have properties."},
		{"var a = 1; a.b = 2;", "Error: [Line 1, Column 14]: Only instances have fields."},
		{
			"class A {} var a = A(); wandika a.b;",
			"Error: [Line 1, Column 35]: Undefined property 'b'.",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		out, report := run(tc.src)

		assert.Empty(out, tc.src)
		assert.False(report.HadError(), tc.src)
		assert.True(report.HadRuntimeError(), tc.src)
		assert.Equal([]string{tc.err}, report.messages(), tc.src)
	}
}

func TestInterpretStopsAtFirstRuntimeError(t *testing.T) {
	assert := assert.New(t)

	out, report := run("wandika 1; wandika 1 / 0; wandika 2;")
	assert.Equal([]string{"1"}, lines(out))
	assert.Len(report.errors, 1)
	assert.True(report.HadRuntimeError())
}

func TestInterpretPrograms(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		out  []string
	}{
		{
			"sum",
			"var a = 3; var b = 4; wandika a + b;",
			[]string{"7"},
		},
		{
			"else branch",
			"if (false) wandika \"x\"; else wandika \"y\";",
			[]string{"y"},
		},
		{
			"loop",
			"var i = 0; albeit (i < 3) { wandika i; i = i + 1; }",
			[]string{"0", "1", "2"},
		},
		{
			"shadowing",
			"var x = 1; { var x = 2; wandika x; } wandika x;",
			[]string{"2", "1"},
		},
		{
			"uninitialized variable",
			"var x; wandika x;",
			[]string{"nil"},
		},
		{
			"assignment is an expression",
			"var a; var b; a = b = 2; wandika a; wandika b;",
			[]string{"2", "2"},
		},
		{
			"closure mutates outer variable",
			`{
				var count = 0;
				func inc() { count = count + 1; }
				inc();
				inc();
				wandika count;
			}`,
			[]string{"2"},
		},
		{
			"counters keep their own frame",
			`func makeCounter() {
				var i = 0;
				func count() { i = i + 1; return i; }
				return count;
			}
			var c = makeCounter();
			wandika c();
			wandika c();
			var d = makeCounter();
			wandika d();
			wandika c();`,
			[]string{"1", "2", "1", "3"},
		},
		{
			"closures share the captured frame",
			`func pair() {
				var n = 0;
				func get() { return n; }
				func set(v) { n = v; }
				var p = Holder();
				p.get = get;
				p.set = set;
				return p;
			}
			class Holder {}
			var p = pair();
			p.set(42);
			wandika p.get();`,
			[]string{"42"},
		},
		{
			"variables are bound where the function is declared",
			`var a = "global";
			{
				func show() { wandika a; }
				show();
				var a = "block";
				show();
			}`,
			[]string{"global", "global"},
		},
		{
			"recursion",
			`func fib(n) {
				if (n < 2) return n;
				return fib(n - 1) + fib(n - 2);
			}
			wandika fib(10);`,
			[]string{"55"},
		},
		{
			"local recursion",
			`{
				func fact(n) { return n <= 1 ? 1 : n * fact(n - 1); }
				wandika fact(5);
			}`,
			[]string{"120"},
		},
		{
			"return unwinds loops",
			`func f() {
				var i = 0;
				albeit (true) {
					if (i == 3) return i;
					i = i + 1;
				}
			}
			wandika f();`,
			[]string{"3"},
		},
		{
			"implicit nil result",
			"func f() {} func g() { return; } wandika f(); wandika g();",
			[]string{"nil", "nil"},
		},
		{
			"overloads by arity",
			`func f(a) { return "one"; }
			func f(a, b) { return "two"; }
			wandika f(1);
			wandika f(1, 2);
			wandika f;`,
			[]string{"one", "two", "<fn f/{1,2}>"},
		},
		{
			"overloads do not merge across scopes",
			`func f(a) { return "outer"; }
			{
				func f(a, b) { return "inner"; }
				wandika f(1, 2);
			}
			wandika f(1);`,
			[]string{"inner", "outer"},
		},
		{
			"same arity replaces",
			"func f(a) { return 1; } func f(b) { return 2; } wandika f(0); wandika f;",
			[]string{"2", "<fn f/1>"},
		},
		{
			"overload sets grow",
			`func f() { return 0; }
			func f(a) { return 1; }
			func f(a, b) { return 2; }
			wandika f() + f(1) + f(1, 2);
			wandika f;`,
			[]string{"3", "<fn f/{0,1,2}>"},
		},
		{
			"functions are values",
			"func add(a, b) { return a + b; } var g = add; wandika g(1, 2); wandika add; wandika add == g;",
			[]string{"3", "<fn add/2>", "true"},
		},
		{
			"instances",
			`class Point {}
			var p = Point();
			p.x = 1;
			p.y = p.x + 1;
			wandika p.y;
			wandika p;
			wandika Point;
			wandika Point() == Point();`,
			[]string{"2", "Point instance", "Point", "false"},
		},
		{
			"methods are not bound",
			"class A { m() { return 1; } } var a = A(); a.m = 5; wandika a.m;",
			[]string{"5"},
		},
		{
			"field overwrite",
			"class A {} var a = A(); a.v = 1; a.v = \"two\"; wandika a.v;",
			[]string{"two"},
		},
		{
			"nested blocks",
			`var a = 1;
			{
				var b = 2;
				{
					var c = 3;
					a = a + b + c;
				}
			}
			wandika a;`,
			[]string{"6"},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		out, report := run(tc.src)

		assert.Empty(report.messages(), tc.name)
		assert.Equal(tc.out, lines(out), tc.name)
	}
}

func TestInterpretStackOverflow(t *testing.T) {
	assert := assert.New(t)

	out, report := run("func f(n) { return f(n + 1); } f(0);")
	assert.Empty(out)
	assert.True(report.HadRuntimeError())
	assert.Equal(
		[]string{"Error: [Line 1, Column 27]: Stack overflow."},
		report.messages(),
	)

	out, report = run(`
	func down(n) { return n == 0 ? 0 : down(n - 1); }
	wandika down(5000);`)
	assert.Empty(report.messages())
	assert.Equal([]string{"0"}, lines(out))
}

func TestInterpretREPLRecoversFromStackOverflow(t *testing.T) {
	assert := assert.New(t)
	report := newMockReporter()
	var out strings.Builder
	in := NewInterpreter(&out, report, true)

	runWith(in, "func f() { return f(); }", report)
	runWith(in, "f();", report)
	assert.True(report.HadRuntimeError())
	assert.Zero(in.depth)

	report.Reset()
	runWith(in, "func g() { return 1; } g();", report)
	assert.False(report.HadRuntimeError())
	assert.Equal([]string{"1"}, lines(out.String()))
}

func TestInterpretREPL(t *testing.T) {
	assert := assert.New(t)
	report := newMockReporter()
	var out strings.Builder
	in := NewInterpreter(&out, report, true)

	for _, line := range []string{
		"1 + 2;",
		"var a = 1;",
		"a = 2;",
		"a;",
		"func f() { var x = a; return x * 10; }",
		"f();",
		"wandika \"p\";",
		"missing;",
		"a;",
	} {
		runWith(in, line, report)
		report.Reset()
	}

	assert.Equal([]string{"3", "2", "20", "p", "2"}, lines(out.String()))
	assert.Equal(
		[]string{"Error: [Line 1, Column 1]: Undefined variable 'missing'."},
		report.messages(),
	)
}

func TestExecBlockRestoresEnvironment(t *testing.T) {
	require := require.New(t)
	report := newMockReporter()
	in := NewInterpreter(new(strings.Builder), report, false)

	program, _ := parse("wandika 1 / 0;")
	require.NotNil(program)
	previous := in.environment
	_, err := in.execBlock(program.Stmts, newEnvironment(previous))

	require.Error(err)
	require.Same(previous, in.environment)
}

func TestPower(t *testing.T) {
	testCases := []struct {
		base Number
		exp  Number
		want Number
	}{
		{0, 0, 1},
		{-3, 0, 1},
		{2, 3, 8},
		{-2, 3, -8},
		{1.5, 2, 2.25},
		{2, -2, 0.25},
		{9, 0.5, 3},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, power(tc.base, tc.exp))
	}
}

func TestIsTruthy(t *testing.T) {
	assert := assert.New(t)

	assert.False(isTruthy(nil))
	assert.False(isTruthy(Nil{}))
	assert.False(isTruthy(Bool(false)))
	assert.True(isTruthy(Bool(true)))
	assert.True(isTruthy(Number(0)))
	assert.True(isTruthy(Text("")))
	assert.True(isTruthy(newInstance(&Class{"A"})))
}
