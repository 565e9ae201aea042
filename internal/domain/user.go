package domain

import "time"

// User — профиль пользователя, кэшируемый локально.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthGrant — результат логина или регистрации.
type AuthGrant struct {
	Token string `json:"access_token"`
	User  User   `json:"user"`
}

// Session — состояние клиента на время работы приложения.
// Токен выставляется и сбрасывается только потоком аутентификации.
type Session struct {
	Token string
	User  *User
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
