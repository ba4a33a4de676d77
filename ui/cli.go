package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"calcmcp/service/calculator"
)

// ConsoleInterface представляет консольный интерфейс калькулятора
type ConsoleInterface struct {
	service *calculator.Service
	scanner *bufio.Scanner
}

// NewConsoleInterface создает новый консольный интерфейс
func NewConsoleInterface(service *calculator.Service) *ConsoleInterface {
	return &ConsoleInterface{
		service: service,
		scanner: bufio.NewScanner(os.Stdin),
	}
}

// Run запускает главный цикл интерфейса
func (c *ConsoleInterface) Run() error {
	c.showWelcome()

	for {
		fmt.Print("calc> ")

		if !c.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(c.scanner.Text())
		if input == "" {
			continue
		}

		if input == "/quit" || input == "/exit" {
			break
		}

		c.processCommand(input)
	}

	fmt.Println("👋 До свидания!")
	return c.scanner.Err()
}

// showWelcome показывает приветственное сообщение
func (c *ConsoleInterface) showWelcome() {
	fmt.Println("🧮 ═══════════════════════════════════════════")
	fmt.Println("   Безопасный калькулятор выражений")
	fmt.Println("═══════════════════════════════════════════")
	fmt.Println()
	fmt.Println("📚 Возможности:")
	fmt.Println("  • Арифметика: 2 + 3 * 4, (10 + 5) / 3")
	fmt.Println("  • Степень: 2^10, 25^0.5")
	fmt.Println("  • Функции: sqrt, abs, sin, cos, tan, ln")
	fmt.Println("  • История: /history, /clear-history")
	fmt.Println("  • Справка: /help")
	fmt.Println("  • Выход: /quit или Ctrl+C")
	fmt.Println()
}

// processCommand обрабатывает введенную команду
func (c *ConsoleInterface) processCommand(input string) {
	switch input {
	case "/history":
		c.showHistory()
		return
	case "/clear-history", "/clearhist":
		count := c.service.ClearHistory()
		fmt.Printf("🗑️ История очищена (удалено записей: %d)\n", count)
		return
	case "/help":
		c.showHelp()
		return
	}

	result, err := c.service.Calculate(input)
	if err != nil {
		fmt.Printf("❌ %s\n", calculator.FormatError(err))
		return
	}

	fmt.Printf("📊 %s\n", result)
}

// showHistory показывает историю вычислений
func (c *ConsoleInterface) showHistory() {
	commands := c.service.GetLastCommands(10)
	if len(commands) == 0 {
		fmt.Println("ℹ️ История вычислений пуста")
		return
	}

	fmt.Println("📜 Последние вычисления:")
	for i, cmd := range commands {
		fmt.Printf("  %d. [%s] %s → %s\n", i+1, cmd.Timestamp, cmd.Expression, cmd.Result)
	}
	fmt.Println("\n💡 Команды: /clear-history - очистить историю")
}

// showHelp показывает подробную справку
func (c *ConsoleInterface) showHelp() {
	fmt.Println("📚 ═══════════════ СПРАВКА ═══════════════")
	fmt.Println()
	fmt.Println("🔢 АРИФМЕТИЧЕСКИЕ ОПЕРАЦИИ:")
	fmt.Println("  2 + 3 * 4           - приоритет операторов учитывается")
	fmt.Println("  (10 + 5) / 3        - скобки поддерживаются")
	fmt.Println("  2^10                - возведение в степень")
	fmt.Println("  2^3^2               - степень вычисляется слева направо: (2^3)^2")
	fmt.Println()
	fmt.Println("📐 ФУНКЦИИ:")
	fmt.Println("  sqrt(25)            - квадратный корень")
	fmt.Println("  abs(-10)            - абсолютное значение")
	fmt.Println("  sin(1.57), cos(0), tan(0) - тригонометрия (радианы)")
	fmt.Println("  ln(2.718)           - натуральный логарифм")
	fmt.Println()
	fmt.Println("🔧 СИСТЕМНЫЕ КОМАНДЫ:")
	fmt.Println("  /history            - показать историю вычислений")
	fmt.Println("  /clear-history      - очистить историю")
	fmt.Println("  /help               - показать эту справку")
	fmt.Println("  /quit или /exit     - выход из программы")
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════")
}
