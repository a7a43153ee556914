package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken: токен ещё не сохранён (не выполнен login).
var ErrNoToken = errors.New("not logged in")

// AuthFSStore: файловое хранилище токена и последнего логина для CLI.
// Логин хранится рядом с токеном в файле last_login.
type AuthFSStore struct {
	Path string
}

func NewAuthFSStore(path string) *AuthFSStore {
	return &AuthFSStore{Path: path}
}

func (s *AuthFSStore) tokenPath() (string, error) {
	if s.Path == "" {
		return "", errors.New("token file path is not configured")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return "", err
	}
	return s.Path, nil
}

func (s *AuthFSStore) lastLoginPath() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(p), "last_login"), nil
}

// Save сохраняет auth‑токен в файл.
func (s *AuthFSStore) Save(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает auth‑токен из файла.
func (s *AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	return readTrimmed(p, ErrNoToken)
}

// Clear удаляет сохранённый токен. Отсутствие файла не ошибка.
func (s *AuthFSStore) Clear() error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SaveLogin сохраняет логин пользователя в файл.
func (s *AuthFSStore) SaveLogin(login string) error {
	if login == "" {
		return errors.New("empty login")
	}
	p, err := s.lastLoginPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(login), 0o600)
}

// LoadLogin читает логин пользователя из файла.
func (s *AuthFSStore) LoadLogin() (string, error) {
	p, err := s.lastLoginPath()
	if err != nil {
		return "", err
	}
	return readTrimmed(p, errors.New("no stored login"))
}

// readTrimmed читает файл и обрезает завершающие переводы строки/пробелы.
// Отсутствующий или пустой файл: errEmpty.
func readTrimmed(p string, errEmpty error) (string, error) {
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", errEmpty
	}
	if err != nil {
		return "", err
	}
	v := strings.TrimRight(string(b), " \t\r\n")
	if v == "" {
		return "", errEmpty
	}
	return v, nil
}
