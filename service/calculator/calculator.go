package calculator

import (
	"calcmcp/core/evaluator"
	"calcmcp/metrics"
	"calcmcp/models"
	"calcmcp/service/storage"
)

// ResultLabel - метка успешного ответа операции calculate
const ResultLabel = "Результат"

// ErrorLabel - метка ответа с ошибкой
const ErrorLabel = "Ошибка вычисления"

// Service - операция calculate поверх ядра вычислителя:
// вычисление, форматирование ответа, запись в историю, метрики
type Service struct {
	calc    *evaluator.Calculator
	storage *storage.Storage
}

func NewService(st *storage.Storage) *Service {
	return &Service{
		calc:    evaluator.NewCalculator(),
		storage: st,
	}
}

// Calculate - вычисление выражения.
// Успех: "Результат: <значение>". Ошибка возвращается вызывающему,
// а в историю записывается текст "Ошибка вычисления: <сообщение>".
func (s *Service) Calculate(expression string) (string, error) {
	value, err := s.calc.Evaluate(expression)
	if err != nil {
		metrics.CalculatorOperations.WithLabelValues("error").Inc()
		s.record(expression, ErrorLabel+": "+err.Error())
		return "", err
	}

	metrics.CalculatorOperations.WithLabelValues("success").Inc()
	formatted := ResultLabel + ": " + evaluator.FormatResult(value)
	s.record(expression, formatted)
	return formatted, nil
}

// FormatError - текст ошибки для внешних интерфейсов
func FormatError(err error) string {
	return ErrorLabel + ": " + err.Error()
}

// GetLastCommands - последние записи истории
func (s *Service) GetLastCommands(limit int) []models.Command {
	if s.storage == nil {
		return []models.Command{}
	}
	return s.storage.GetLastCommands(limit)
}

// ClearHistory - очистка истории, возвращает количество удаленных записей
func (s *Service) ClearHistory() int {
	if s.storage == nil {
		return 0
	}
	count := s.storage.ClearHistory()
	metrics.UpdateHistoryMetrics(0)
	return count
}

func (s *Service) record(expression, result string) {
	if s.storage == nil {
		return
	}
	s.storage.SaveCommand(expression, result)
	metrics.UpdateHistoryMetrics(s.storage.GetHistoryCount())
}
