package utils

import (
	"compress/gzip"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const stopwordFile = "# russian\nи\n\n  в  \nпо\n"

func TestReadStopwords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, []byte(stopwordFile), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadStopwords(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"и", "в", "по"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReadStopwords = %v, want %v", got, want)
	}
}

func TestReadStopwords_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(stopwordFile)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadStopwords(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"и", "в", "по"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReadStopwords = %v, want %v", got, want)
	}
}

func TestReadStopwords_Missing(t *testing.T) {
	if _, err := ReadStopwords(filepath.Join(t.TempDir(), "nope.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestStreamLines(t *testing.T) {
	lines, errCh := StreamLines(context.Background(), strings.NewReader("раз\nдва\n\nтри"))

	var got []string
	for l := range lines {
		got = append(got, l)
	}
	if err := <-errCh; err != nil {
		t.Fatal(err)
	}
	if want := []string{"раз", "два", "", "три"}; !reflect.DeepEqual(got, want) {
		t.Errorf("StreamLines = %v, want %v", got, want)
	}
}

func TestStreamLines_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines, errCh := StreamLines(ctx, strings.NewReader(strings.Repeat("строка\n", 1000)))
	n := 0
	for range lines {
		n++
	}
	if err := <-errCh; err != nil {
		t.Fatal(err)
	}
	if n >= 1000 {
		t.Errorf("read %d lines after cancel", n)
	}
}
