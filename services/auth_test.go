package services

import (
	"errors"
	"testing"
)

func TestLoginLogout(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.Login("demo", "demo123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Username != "demo" || session.IsAdmin {
		t.Errorf("session = %+v, want demo without admin", session)
	}
	if !svc.IsLogged() {
		t.Error("IsLogged = false after login")
	}

	current, err := svc.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current == nil || current.Username != "demo" {
		t.Errorf("current session = %+v, want demo", current)
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	current, err = svc.Current()
	if err != nil {
		t.Fatalf("Current after logout: %v", err)
	}
	if current != nil {
		t.Errorf("session survives logout: %+v", current)
	}
}

func TestLoginAdminFlag(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !session.IsAdmin {
		t.Error("admin session without admin flag")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newTestService(t)

	// Сравнение точное: регистр и пробелы имеют значение
	cases := [][2]string{
		{"demo", "wrong"},
		{"demo", "DEMO123"},
		{"demo", " demo123"},
		{"ghost", "demo123"},
	}
	for _, tc := range cases {
		if _, err := svc.Login(tc[0], tc[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q,%q) err = %v, want ErrInvalidCredentials", tc[0], tc[1], err)
		}
	}
	if svc.IsLogged() {
		t.Error("failed login left a session behind")
	}
}
