package calculator

import (
	"errors"
	"path/filepath"
	"testing"

	"calcmcp/core/evaluator"
	"calcmcp/service/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := storage.NewStorage(filepath.Join(t.TempDir(), "history.json"))
	return NewService(st)
}

func TestCalculateFormatting(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		expr     string
		expected string
	}{
		{"2 + 3 * 4", "Результат: 14"},
		{"sqrt(25)", "Результат: 5"},
		{"abs(-10)", "Результат: 10"},
		{"25^0.5", "Результат: 5"},
		{"2^3^2", "Результат: 64"},
		{"7/2", "Результат: 3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			result, err := svc.Calculate(tt.expr)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Calculate("1 / 0")
	if !errors.Is(err, evaluator.ErrDivisionByZero) {
		t.Errorf("Expected division by zero error, got %v", err)
	}

	if got := FormatError(err); got != "Ошибка вычисления: деление на ноль" {
		t.Errorf("Unexpected formatted error: %q", got)
	}
}

func TestCalculateRecordsHistory(t *testing.T) {
	svc := newTestService(t)

	svc.Calculate("2+2")
	svc.Calculate("sqrt(-1)")

	last := svc.GetLastCommands(10)
	if len(last) != 2 {
		t.Fatalf("Expected 2 history records, got %d", len(last))
	}
	if last[0].Result != "Результат: 4" {
		t.Errorf("Unexpected first record: %+v", last[0])
	}
	if last[1].Expression != "sqrt(-1)" {
		t.Errorf("Unexpected second record: %+v", last[1])
	}

	if count := svc.ClearHistory(); count != 2 {
		t.Errorf("Expected 2 cleared records, got %d", count)
	}
}

// Сервис должен работать и без хранилища (например, в тестах ядра)
func TestCalculateWithoutStorage(t *testing.T) {
	svc := NewService(nil)

	result, err := svc.Calculate("10 - 7")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "Результат: 3" {
		t.Errorf("Expected 'Результат: 3', got %q", result)
	}
	if len(svc.GetLastCommands(5)) != 0 {
		t.Errorf("History must stay empty without storage")
	}
}
