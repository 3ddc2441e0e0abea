package main

import (
	"context"
	"reflect"
	"testing"
)

func TestSplitCommand(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"go test ./... -coverprofile=coverage.out -covermode=atomic",
			[]string{"go", "test", "./...", "-coverprofile=coverage.out", "-covermode=atomic"}},
		{"  true  ", []string{"true"}},
		{"", nil},
		{"   ", nil},
	}
	for _, c := range cases {
		got := splitCommand(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("splitCommand(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestServerArgv(t *testing.T) {
	got := serverArgv("/app/wayfarer", nil)
	if !reflect.DeepEqual(got, []string{"/app/wayfarer"}) {
		t.Fatalf("serverArgv = %v", got)
	}
	got = serverArgv("/app/wayfarer", []string{"-v"})
	if !reflect.DeepEqual(got, []string{"/app/wayfarer", "-v"}) {
		t.Fatalf("serverArgv with extra = %v", got)
	}
}

func TestRunTestsEmptyCommand(t *testing.T) {
	if err := runTests(context.Background(), "   "); err != nil {
		t.Fatalf("empty command should be a no-op, got %v", err)
	}
}
