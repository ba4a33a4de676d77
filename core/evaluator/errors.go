package evaluator

import "errors"

// Закрытый набор ошибок вычисления. Параметризованные ошибки
// (неизвестная функция, недопустимый символ и т.д.) оборачиваются
// через fmt.Errorf("%w: ..."), поэтому проверка через errors.Is работает.
var (
	// Ошибки проверки входа (до сканирования)
	ErrInputTooLong    = errors.New("выражение слишком длинное (максимум 1000 символов)")
	ErrUnsafeCharacter = errors.New("выражение содержит запрещенные символы")

	// Ошибки токенизации
	ErrInvalidCharacter = errors.New("недопустимый символ")
	ErrUnknownFunction  = errors.New("неподдерживаемая функция")
	ErrNumberParse      = errors.New("не удалось разобрать число")

	// Структурные ошибки разбора
	ErrEmptyExpression       = errors.New("пустое выражение")
	ErrUnexpectedEnd         = errors.New("неожиданный конец выражения")
	ErrUnmatchedParen        = errors.New("нет соответствующей правой скобки")
	ErrMissingFuncParen      = errors.New("после имени функции ожидается левая скобка")
	ErrMissingFuncCloseParen = errors.New("после аргумента функции ожидается правая скобка")
	ErrUnexpectedToken       = errors.New("неожиданный токен")

	// Ошибки арифметики
	ErrDivisionByZero        = errors.New("деление на ноль")
	ErrInvalidPowerResult    = errors.New("недопустимый результат возведения в степень")
	ErrInvalidFunctionResult = errors.New("недопустимый результат функции (NaN или бесконечность)")
)
