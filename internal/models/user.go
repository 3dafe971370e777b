package models

import "time"

// Роли пользователей системы.
const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// User учётная запись для входа в систему. Участники используют email
// в качестве имени пользователя, тренеры — сгенерированный coach-логин.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	MemberID     *string    `json:"member_id,omitempty"`
	TrainerID    *string    `json:"trainer_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	IsActive     bool       `json:"is_active"`
}

// Trainer представляет тренера клуба.
type Trainer struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	HireDate  time.Time `json:"hire_date"`
}

// DummyTrainer используется для приёма данных регистрации тренера из JSON.
type DummyTrainer struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}
