package cli

import (
	"bufio"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("crio.do\n"))
	got, err := getSimpleText(in, "Enter username")
	if err != nil || got != "crio.do" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  crio.do  \n"))
	got, err := getSimpleText(in, "Enter username")
	if err != nil || got != "crio.do" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	got, err := getSimpleText(in, "Enter username")
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_EOFEmpty(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))
	if _, err := getSimpleText(in, "Enter username"); err == nil {
		t.Fatal("expected error on empty input")
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	if _, err := getPassword("Enter password"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPassword_ReturnsBytesAsString(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("s3cret"), nil
	}
	got, err := getPassword("Enter password")
	if err != nil || got != "s3cret" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}
