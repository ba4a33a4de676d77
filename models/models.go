package models

// Command представляет выполненный запрос calculate
type Command struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Timestamp  string `json:"timestamp"`
}

// CalculateRequest представляет тело запроса на вычисление
type CalculateRequest struct {
	Expression string `json:"expression"`
}

// CalculateResponse представляет успешный ответ
type CalculateResponse struct {
	Result string `json:"result"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest представляет запрос на получение токена
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ с JWT токеном
type LoginResponse struct {
	Token string `json:"token"`
}
