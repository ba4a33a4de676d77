package evaluator

import (
	"fmt"
	"strconv"
	"strings"
)

// maxExpressionLength - ограничение длины входа (защита от DoS)
const maxExpressionLength = 1000

// unsafeCharacters - символы shell-инъекций, отклоняются до сканирования
const unsafeCharacters = ";|&"

type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenOperator
	TokenFunction
	TokenLeftParen
	TokenRightParen
)

// Token - лексическая единица выражения. Последовательность токенов
// после токенизации не изменяется, вычисление только двигает курсор по ней.
type Token struct {
	Kind  TokenKind
	Value float64 // для TokenNumber
	Op    byte    // для TokenOperator: + - * / ^
	Name  string  // для TokenFunction, всегда ключ из белого списка
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case TokenOperator:
		return string(t.Op)
	case TokenFunction:
		return t.Name
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	default:
		return "?"
	}
}

// Tokenize - разбиение выражения на токены за один проход слева направо.
// Проверки длины и запрещенных символов выполняются до сканирования.
func (c *Calculator) Tokenize(expression string) ([]Token, error) {
	if len(expression) > maxExpressionLength {
		return nil, ErrInputTooLong
	}
	if strings.ContainsAny(expression, unsafeCharacters) {
		return nil, ErrUnsafeCharacter
	}

	var tokens []Token
	i := 0
	for i < len(expression) {
		ch := expression[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case isDigit(ch) || ch == '.':
			value, next, err := scanNumber(expression, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Value: value})
			i = next
		case ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '^':
			tokens = append(tokens, Token{Kind: TokenOperator, Op: ch})
			i++
		case ch == '(':
			tokens = append(tokens, Token{Kind: TokenLeftParen})
			i++
		case ch == ')':
			tokens = append(tokens, Token{Kind: TokenRightParen})
			i++
		case isAlpha(ch):
			name, next := scanIdentifier(expression, i)
			if _, ok := c.allowedFunctions[name]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
			}
			tokens = append(tokens, Token{Kind: TokenFunction, Name: name})
			i = next
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, rune(ch))
		}
	}

	return tokens, nil
}

// scanNumber - чтение максимальной последовательности цифр
// с не более чем одной десятичной точкой
func scanNumber(expression string, start int) (float64, int, error) {
	i := start
	hasDot := false
	for i < len(expression) {
		ch := expression[i]
		if isDigit(ch) {
			i++
			continue
		}
		if ch == '.' && !hasDot {
			hasDot = true
			i++
			continue
		}
		break
	}

	literal := expression[start:i]
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrNumberParse, literal)
	}
	return value, i, nil
}

// scanIdentifier - чтение максимальной последовательности букв
func scanIdentifier(expression string, start int) (string, int) {
	i := start
	for i < len(expression) && isAlpha(expression[i]) {
		i++
	}
	return expression[start:i], i
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
