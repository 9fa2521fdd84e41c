// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import (
	"archive/zip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	url := srv.URL + "/acd-csv.zip"

	path, err := Fetch(url, dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "acd-csv.zip"); path != want {
		t.Errorf("path = %q; want %q", path, want)
	}
	if data, err := os.ReadFile(path); err != nil || string(data) != "payload" {
		t.Errorf("read %q, %v; want %q", data, err, "payload")
	}

	// A second fetch must reuse the cached file.
	if _, err := Fetch(url, dir); err != nil {
		t.Fatal(err)
	}
	if hits != 1 {
		t.Errorf("server hit %d times; want 1", hits)
	}

	// No temporary file may be left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("stat %s.tmp = %v; want not exist", path, err)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Fetch(srv.URL+"/missing.zip", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("want 404 error; got %v", err)
	}
}

func TestExtractMember(t *testing.T) {
	dir := t.TempDir()

	// Build an archive that nests its CSV in a directory, the way
	// the dataset archives do.
	zipPath := filepath.Join(dir, "data.zip")
	f, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("ucdp-csv/conflicts.csv")
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("conflict_id\n1\n"))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	path, err := ExtractMember(zipPath, "conflicts.csv", dir)
	if err != nil {
		t.Fatal(err)
	}
	if data, err := os.ReadFile(path); err != nil || string(data) != "conflict_id\n1\n" {
		t.Errorf("read %q, %v", data, err)
	}

	if _, err := ExtractMember(zipPath, "no-such.csv", dir); err == nil {
		t.Errorf("want error for missing member")
	}
}
