package domain

// Identity - личность вызывающего, извлечённая из проверенного bearer-токена.
// Поля соответствуют именам клеймов токена.
type Identity struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photourl,omitempty"`
}

// UserProfile - публичный профиль автора места из сервиса пользователей.
type UserProfile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photourl,omitempty"`
}
