package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"gitlab.com/Goodgis/minif1/internal/store"
)

var errQuit = errors.New("login cancelled")

var (
	colorTitle = color.New(color.FgYellow, color.Bold)
	colorOK    = color.New(color.FgGreen)
	colorAlert = color.New(color.FgRed)
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
	// readPassword reads a line without echo. Nil falls back to in.
	readPassword func() (string, error)
}

func newConsolePrompter() *prompter {
	p := &prompter{in: bufio.NewReader(os.Stdin), out: color.Output}
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		p.readPassword = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(p.out)
			return string(b), err
		}
	}
	return p
}

func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	s, err := p.in.ReadString('\n')
	if err != nil && s == "" {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func (p *prompter) password(prompt string) (string, error) {
	if p.readPassword == nil {
		return p.line(prompt)
	}
	fmt.Fprint(p.out, prompt)
	return p.readPassword()
}

func (p *prompter) credentials() (user, pass string, err error) {
	if user, err = p.line("Username: "); err != nil {
		return "", "", err
	}
	if pass, err = p.password("Password: "); err != nil {
		return "", "", err
	}
	return user, pass, nil
}

// login loops until the player signs in, returning the username. Running
// out of input ends the loop with the read error.
func login(accounts *store.Accounts, p *prompter) (string, error) {
	colorTitle.Fprintln(p.out, "*** Mini F1 Login ***")
	for {
		choice, err := p.line("[L]ogin, [R]egister or [Q]uit: ")
		if err != nil {
			return "", err
		}

		switch strings.ToLower(choice) {
		case "l", "login":
			user, pass, err := p.credentials()
			if err != nil {
				return "", err
			}
			if err := accounts.Login(user, pass); err != nil {
				colorAlert.Fprintf(p.out, "Login failed: %v\n", err)
				continue
			}
			colorOK.Fprintf(p.out, "Login successful! Welcome, %s\n", user)
			return user, nil

		case "r", "register":
			user, pass, err := p.credentials()
			if err != nil {
				return "", err
			}
			if err := accounts.Register(user, pass); err != nil {
				colorAlert.Fprintf(p.out, "Registration failed: %v\n", err)
				continue
			}
			colorOK.Fprintln(p.out, "Registration successful! You can log in now.")

		case "q", "quit":
			return "", errQuit

		default:
			colorAlert.Fprintln(p.out, "Please answer L, R or Q.")
		}
	}
}
