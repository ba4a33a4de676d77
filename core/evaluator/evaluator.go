package evaluator

import (
	"fmt"
	"math"
	"strconv"
)

// Calculator - безопасный вычислитель математических выражений.
// Белый список функций создается один раз и после этого только читается,
// поэтому один Calculator можно использовать из нескольких горутин.
type Calculator struct {
	allowedFunctions map[string]func(float64) float64
}

func NewCalculator() *Calculator {
	return &Calculator{
		allowedFunctions: map[string]func(float64) float64{
			"sqrt": math.Sqrt,
			"abs":  math.Abs,
			"sin":  math.Sin,
			"cos":  math.Cos,
			"tan":  math.Tan,
			"ln":   math.Log,
		},
	}
}

// Evaluate - токенизация и вычисление выражения
func (c *Calculator) Evaluate(expression string) (float64, error) {
	tokens, err := c.Tokenize(expression)
	if err != nil {
		return 0, err
	}
	return c.EvaluateTokens(tokens)
}

// EvaluateTokens - вычисление токенизированного выражения.
// Хвостовые токены после верхнего уровня грамматики не проверяются.
func (c *Calculator) EvaluateTokens(tokens []Token) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}
	result, _, err := c.evaluateExpression(tokens, 0)
	return result, err
}

// evaluateExpression - уровень сложения и вычитания (левоассоциативно)
func (c *Calculator) evaluateExpression(tokens []Token, pos int) (float64, int, error) {
	left, pos, err := c.evaluateTerm(tokens, pos)
	if err != nil {
		return 0, 0, err
	}

	for pos < len(tokens) {
		tok := tokens[pos]
		if tok.Kind != TokenOperator || (tok.Op != '+' && tok.Op != '-') {
			break
		}
		right, next, err := c.evaluateTerm(tokens, pos+1)
		if err != nil {
			return 0, 0, err
		}
		if tok.Op == '+' {
			left += right
		} else {
			left -= right
		}
		pos = next
	}

	return left, pos, nil
}

// evaluateTerm - уровень умножения и деления (левоассоциативно)
func (c *Calculator) evaluateTerm(tokens []Token, pos int) (float64, int, error) {
	left, pos, err := c.evaluatePower(tokens, pos)
	if err != nil {
		return 0, 0, err
	}

	for pos < len(tokens) {
		tok := tokens[pos]
		if tok.Kind != TokenOperator || (tok.Op != '*' && tok.Op != '/') {
			break
		}
		right, next, err := c.evaluatePower(tokens, pos+1)
		if err != nil {
			return 0, 0, err
		}
		if tok.Op == '*' {
			left *= right
		} else {
			// Проверка до выполнения деления
			if right == 0.0 {
				return 0, 0, ErrDivisionByZero
			}
			left /= right
		}
		pos = next
	}

	return left, pos, nil
}

// evaluatePower - уровень возведения в степень.
// Левоассоциативная цепочка: 2^3^2 == (2^3)^2 == 64.
func (c *Calculator) evaluatePower(tokens []Token, pos int) (float64, int, error) {
	left, pos, err := c.evaluateFactor(tokens, pos)
	if err != nil {
		return 0, 0, err
	}

	for pos < len(tokens) {
		tok := tokens[pos]
		if tok.Kind != TokenOperator || tok.Op != '^' {
			break
		}
		right, next, err := c.evaluateFactor(tokens, pos+1)
		if err != nil {
			return 0, 0, err
		}
		left = math.Pow(left, right)
		if !isFinite(left) {
			return 0, 0, ErrInvalidPowerResult
		}
		pos = next
	}

	return left, pos, nil
}

// evaluateFactor - атомы грамматики: число, унарный знак,
// выражение в скобках, вызов функции из белого списка
func (c *Calculator) evaluateFactor(tokens []Token, pos int) (float64, int, error) {
	if pos >= len(tokens) {
		return 0, 0, ErrUnexpectedEnd
	}

	tok := tokens[pos]
	switch tok.Kind {
	case TokenNumber:
		return tok.Value, pos + 1, nil

	case TokenOperator:
		// Унарные знаки связывают сильнее бинарных операторов: -2^2 == 4
		switch tok.Op {
		case '-':
			value, next, err := c.evaluateFactor(tokens, pos+1)
			if err != nil {
				return 0, 0, err
			}
			return -value, next, nil
		case '+':
			return c.evaluateFactor(tokens, pos+1)
		}
		return 0, 0, fmt.Errorf("%w: %s", ErrUnexpectedToken, tok)

	case TokenLeftParen:
		result, next, err := c.evaluateExpression(tokens, pos+1)
		if err != nil {
			return 0, 0, err
		}
		if next >= len(tokens) || tokens[next].Kind != TokenRightParen {
			return 0, 0, ErrUnmatchedParen
		}
		return result, next + 1, nil

	case TokenFunction:
		pos++
		if pos >= len(tokens) || tokens[pos].Kind != TokenLeftParen {
			return 0, 0, ErrMissingFuncParen
		}
		arg, next, err := c.evaluateExpression(tokens, pos+1)
		if err != nil {
			return 0, 0, err
		}
		if next >= len(tokens) || tokens[next].Kind != TokenRightParen {
			return 0, 0, ErrMissingFuncCloseParen
		}

		fn, ok := c.allowedFunctions[tok.Name]
		if !ok {
			return 0, 0, fmt.Errorf("%w: %s", ErrUnknownFunction, tok.Name)
		}
		result := fn(arg)
		// Покрывает ошибки области определения: sqrt(-1), ln(0) и т.д.
		if !isFinite(result) {
			return 0, 0, ErrInvalidFunctionResult
		}
		return result, next + 1, nil

	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrUnexpectedToken, tok)
	}
}

// FormatResult - форматирование результата: целые значения без дробной части
func FormatResult(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
