package ui

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"calcmcp/service/calculator"
)

const (
	serverName    = "calc-mcp"
	serverVersion = "0.1.0"
)

// MCPInterface - MCP сервер поверх stdio (протокол Model Context Protocol).
// Весь stdout принадлежит транспорту, логи уходят только в stderr.
type MCPInterface struct {
	service *calculator.Service
}

func NewMCPInterface(service *calculator.Service) *MCPInterface {
	return &MCPInterface{
		service: service,
	}
}

// Start - регистрация инструмента calculate и запуск stdio цикла
func (m *MCPInterface) Start() error {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithInstructions("MCP сервер калькулятора. Принимает математическое выражение и возвращает результат вычисления."),
	)

	tool := mcp.NewTool("calculate",
		mcp.WithDescription("Вычисляет математическое выражение и возвращает результат. "+
			"Поддерживаются четыре арифметические операции (+, -, *, /), возведение в степень (^), "+
			"скобки и функции sqrt, abs, sin, cos, tan, ln."),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("Выражение для вычисления (например: \"2 + 3 * 4\", \"sqrt(25)\", \"sin(1.57)\")"),
		),
	)

	s.AddTool(tool, m.handleCalculate)

	log.Printf("MCP сервер %s %s запущен (stdio)", serverName, serverVersion)
	return server.ServeStdio(s)
}

// handleCalculate - обработчик инструмента calculate.
// Ошибка вычисления уходит клиенту как результат с isError, не как сбой протокола.
func (m *MCPInterface) handleCalculate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression, err := req.RequireString("expression")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := m.service.Calculate(expression)
	if err != nil {
		return mcp.NewToolResultError(calculator.FormatError(err)), nil
	}

	return mcp.NewToolResultText(result), nil
}
