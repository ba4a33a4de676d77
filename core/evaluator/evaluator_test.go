package evaluator

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBasicOperations(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		expr     string
		expected float64
	}{
		{"Addition", "2+3", 5},
		{"Subtraction", "10-7", 3},
		{"Multiplication", "4*5", 20},
		{"Division", "15/3", 5},
		{"Complex expression", "2 + 3 * 4", 14},
		{"Parentheses", "(2 + 3) * 4", 20},
		{"Power", "2^3", 8},
		{"Floating point", "3.5+2.5", 6},
		{"Leading dot number", ".5*2", 1},
		{"Whitespace only around", "  7  ", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestOperatorPrecedence(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		expr     string
		expected float64
	}{
		{"2+3*4", 14},    // multiplication first
		{"10-2*3", 4},    // multiplication first
		{"20/4+3", 8},    // division first
		{"2^3*2", 16},    // power first
		{"(2+3)*4", 20},  // parentheses override
		{"2*(3+4)", 14},  // parentheses override
		{"10-2-3", 5},    // left to right
		{"20/4/2", 2.5},  // left to right
		{"2^3^2", 64},    // power is left-associative: (2^3)^2, not 2^(3^2)
		{"-2^2", 4},      // unary minus binds tighter than ^: (-2)^2
		{"25^0.5", 5},    // fractional exponent
		{"-(2+3)", -5},   // unary minus over parentheses
		{"+5", 5},        // unary plus is a no-op
		{"--5", 5},       // nested unary minus
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			result, err := calc.Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Expression %s: expected %v, got %v", tt.expr, tt.expected, result)
			}
		})
	}
}

func TestFunctions(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		expr     string
		expected float64
	}{
		{"sqrt(25)", 5},
		{"abs(-10)", 10},
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"tan(0)", 0},
		{"ln(1)", 0},
		{"sqrt(2+2)", 2},          // argument is a full expression
		{"sqrt(sqrt(16))", 2},     // nested function call
		{"2*sqrt(9)+1", 7},        // function inside expression
		{"abs(-2^2)*3", 12},       // unary and power inside argument
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			result, err := calc.Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Expression %s: expected %v, got %v", tt.expr, tt.expected, result)
			}
		})
	}
}

func TestErrorCases(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{"Division by zero", "1 / 0", ErrDivisionByZero},
		{"Division by zero expression", "5/(3-3)", ErrDivisionByZero},
		{"Sqrt of negative", "sqrt(-1)", ErrInvalidFunctionResult},
		{"Ln of zero", "ln(0)", ErrInvalidFunctionResult},
		{"Power overflow", "10^400", ErrInvalidPowerResult},
		{"Unsafe semicolon", "2 + 3; rm -rf /", ErrUnsafeCharacter},
		{"Unsafe pipe", "1|2", ErrUnsafeCharacter},
		{"Unsafe ampersand", "1&2", ErrUnsafeCharacter},
		{"Too long", strings.Repeat("1", 1001), ErrInputTooLong},
		{"Unknown function", "exec(1)", ErrUnknownFunction},
		{"Invalid character", "10%3", ErrInvalidCharacter},
		{"Empty expression", "", ErrEmptyExpression},
		{"Blank expression", "   ", ErrEmptyExpression},
		{"Unexpected end", "2+", ErrUnexpectedEnd},
		{"Unmatched parenthesis", "(2+3", ErrUnmatchedParen},
		{"Function without parenthesis", "sqrt 25", ErrMissingFuncParen},
		{"Function without closing parenthesis", "sqrt(25", ErrMissingFuncCloseParen},
		{"Operator in factor position", "*2", ErrUnexpectedToken},
		{"Closing parenthesis first", ")", ErrUnexpectedToken},
		{"Bad number literal", ".", ErrNumberParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Evaluate(tt.expr)
			if err == nil {
				t.Fatalf("Expected error for expression: %s", tt.expr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// Trailing tokens after the top-level expression are deliberately ignored
func TestTrailingTokensIgnored(t *testing.T) {
	calc := NewCalculator()

	result, err := calc.Evaluate("2 + 3) 4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != 5 {
		t.Errorf("Expected 5, got %v", result)
	}
}

func TestIdempotence(t *testing.T) {
	calc := NewCalculator()

	first, err := calc.Evaluate("sin(1.57) + 2^10 / 4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < 100; i++ {
		again, err := calc.Evaluate("sin(1.57) + 2^10 / 4")
		if err != nil {
			t.Fatalf("Unexpected error on iteration %d: %v", i, err)
		}
		if FormatResult(again) != FormatResult(first) {
			t.Fatalf("Result changed between runs: %v vs %v", again, first)
		}
	}
}

func TestConcurrentEvaluation(t *testing.T) {
	calc := NewCalculator()

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 200; j++ {
				result, err := calc.Evaluate("sqrt(25) * (2 + 3)")
				if err != nil {
					done <- err
					return
				}
				if result != 25 {
					done <- errors.New("wrong concurrent result")
					return
				}
			}
			done <- nil
		}()
	}

	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatalf("Concurrent evaluation failed: %v", err)
		}
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{5, "5"},
		{2.5, "2.5"},
		{-0.25, "-0.25"},
		{1000000, "1000000"},
	}

	for _, tt := range tests {
		if got := FormatResult(tt.value); got != tt.expected {
			t.Errorf("FormatResult(%v): expected %q, got %q", tt.value, tt.expected, got)
		}
	}
}

func BenchmarkSimpleAddition(b *testing.B) {
	calc := NewCalculator()
	for i := 0; i < b.N; i++ {
		calc.Evaluate("2+3")
	}
}

func BenchmarkComplexExpression(b *testing.B) {
	calc := NewCalculator()
	for i := 0; i < b.N; i++ {
		calc.Evaluate("(10+5)*2-3/3+2^3+sqrt(25)")
	}
}
