package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// FSStore keeps each key in its own file under the user's config directory.
type FSStore struct {
	// Dir overrides the storage directory; empty means the default
	// <UserConfigDir>/ClientAdmin.
	Dir string
}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func (s FSStore) dir() (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o700); err != nil {
			return "", err
		}
		return s.Dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "ClientAdmin")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s FSStore) path(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", errors.New("invalid key")
	}
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, key), nil
}

func (s FSStore) Get(key string) (string, error) {
	p, err := s.path(key)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	// trim trailing newlines/spaces left by manual edits
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b), nil
}

func (s FSStore) Set(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

func (s FSStore) Remove(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
