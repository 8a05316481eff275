package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	testConnStr := "postgres://testuser@localhost:5432/testdb?sslmode=disable"

	if err := SetConnectionString(testConnStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	retrieved, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if retrieved != testConnStr {
		t.Errorf("GetConnectionString() = %q, want %q", retrieved, testConnStr)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("SetConnectionString(\"\") should return an error")
	}
}

func TestGetConnectionStringNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteConnectionString()

	if _, err := GetConnectionString(); err != ErrNotFound {
		t.Errorf("GetConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("postgres://testuser@localhost:5432/testdb"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); err != ErrNotFound {
		t.Errorf("after delete, GetConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
