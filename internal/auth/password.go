package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher: одностороннее хеширование паролей с солью.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
	// VerifyDummy тратит столько же времени, сколько Verify, и всегда возвращает false.
	VerifyDummy(password string)
}

// BcryptHasher реализует PasswordHasher на bcrypt.
type BcryptHasher struct {
	cost  int
	dummy []byte
}

// NewBcryptHasher создаёт хешер с заданной стоимостью.
// Невалидная стоимость заменяется на bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	// дайджест для сравнения, когда пользователь не найден
	dummy, err := bcrypt.GenerateFromPassword([]byte("reviewboard-dummy-password"), cost)
	if err != nil {
		panic(err)
	}
	return &BcryptHasher{cost: cost, dummy: dummy}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

func (h *BcryptHasher) VerifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
}

var _ PasswordHasher = (*BcryptHasher)(nil)
