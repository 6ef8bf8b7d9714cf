// Package store keeps the two flat files the game persists: the account
// list and the append-only score log.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

var (
	ErrEmptyField    = errors.New("fields cannot be empty")
	ErrUnknownUser   = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")
	ErrUserExists    = errors.New("user already exists")
)

// Accounts is the username to password list, read fully at startup and
// appended to on registration.
type Accounts struct {
	path  string
	users map[string]string
}

// LoadAccounts reads path. A missing file is an empty store. Lines without a
// comma are skipped. On a read error the accounts read so far are returned
// together with the error.
func LoadAccounts(path string) (*Accounts, error) {
	a := &Accounts{path: path, users: make(map[string]string)}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return a, nil
	}
	if err != nil {
		return a, fmt.Errorf("open accounts: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		user, pass, ok := strings.Cut(sc.Text(), ",")
		if !ok || user == "" {
			continue
		}
		// Only the first field after the user counts as the password.
		pass, _, _ = strings.Cut(pass, ",")
		a.users[user] = pass
	}
	if err := sc.Err(); err != nil {
		return a, fmt.Errorf("read accounts: %w", err)
	}
	return a, nil
}

func (a *Accounts) Len() int { return len(a.users) }

func (a *Accounts) Lookup(user string) (string, bool) {
	pass, ok := a.users[user]
	return pass, ok
}

// Insert stores the account in memory and appends it to the file. The
// in-memory entry is kept even when the write fails.
func (a *Accounts) Insert(user, pass string) error {
	a.users[user] = pass

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open accounts: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s,%s\n", user, pass); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}
	return nil
}

// Login checks a username and password typed by the player.
func (a *Accounts) Login(user, pass string) error {
	user, pass = strings.TrimSpace(user), strings.TrimSpace(pass)
	if user == "" || pass == "" {
		return ErrEmptyField
	}
	want, ok := a.users[user]
	if !ok {
		return ErrUnknownUser
	}
	if want != pass {
		return ErrWrongPassword
	}
	return nil
}

// Register adds a new account. A failure to persist it is logged and the
// account still works for this session.
func (a *Accounts) Register(user, pass string) error {
	user, pass = strings.TrimSpace(user), strings.TrimSpace(pass)
	if user == "" || pass == "" {
		return ErrEmptyField
	}
	if strings.Contains(user, ",") {
		return fmt.Errorf("username %q: commas are not allowed", user)
	}
	if _, ok := a.users[user]; ok {
		return ErrUserExists
	}
	if err := a.Insert(user, pass); err != nil {
		log.Printf("store: %v", err)
	}
	return nil
}
