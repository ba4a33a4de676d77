package storage

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"calcmcp/models"
)

// Storage - хранилище истории вычислений в JSON файле.
// Web и WebSocket обработчики пишут конкурентно, поэтому все операции под мьютексом.
type Storage struct {
	mu       sync.RWMutex
	commands []models.Command
	filePath string
}

func NewStorage(filePath string) *Storage {
	storage := &Storage{
		commands: make([]models.Command, 0),
		filePath: filePath,
	}
	storage.loadFromFile()
	return storage
}

// SaveCommand - запись выражения и результата в историю
func (s *Storage) SaveCommand(expression, result string) models.Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := models.Command{
		ID:         uuid.New().String(),
		Expression: expression,
		Result:     result,
		Timestamp:  time.Now().Format("2006-01-02 15:04:05"),
	}
	s.commands = append(s.commands, cmd)
	s.saveToFile()
	return cmd
}

// GetLastCommands - последние limit записей истории
func (s *Storage) GetLastCommands(limit int) []models.Command {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.commands) == 0 {
		return []models.Command{}
	}

	start := len(s.commands) - limit
	if start < 0 {
		start = 0
	}

	result := make([]models.Command, len(s.commands)-start)
	copy(result, s.commands[start:])
	return result
}

// GetHistoryCount - количество записей в истории
func (s *Storage) GetHistoryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.commands)
}

// ClearHistory - очистка всей истории
func (s *Storage) ClearHistory() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.commands)
	s.commands = make([]models.Command, 0)
	s.saveToFile()
	return count
}

func (s *Storage) loadFromFile() {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return
	}

	var state struct {
		Commands []models.Command `json:"commands"`
	}

	if err := json.Unmarshal(data, &state); err == nil {
		s.commands = state.Commands
	}
}

func (s *Storage) saveToFile() {
	state := struct {
		Commands []models.Command `json:"commands"`
	}{
		Commands: s.commands,
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return
	}

	os.WriteFile(s.filePath, data, 0644)
}
