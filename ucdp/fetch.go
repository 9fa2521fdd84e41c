// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucdp

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// Download URLs for the current dataset release.
const (
	// ConflictURL is the zip archive of the UCDP/PRIO armed
	// conflict dataset.
	ConflictURL = "https://ucdp.uu.se/downloads/fullset/ucdp-prio-acd-241-csv.zip"

	// EventURL is the zip archive of the UCDP georeferenced event
	// dataset.
	EventURL = "https://ucdp.uu.se/downloads/ged/ged241-csv.zip"
)

// Fetch downloads url into dir and returns the local file path. If
// the destination file already exists, Fetch returns immediately
// without touching the network. The file is written under a
// temporary name and renamed into place, so a partial download never
// appears under the final name.
func Fetch(url, dir string) (string, error) {
	dst := filepath.Join(dir, path.Base(url))

	// Do we already have it?
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	if err := writeFileAtomic(dst, resp.Body); err != nil {
		return "", err
	}
	return dst, nil
}

// ExtractMember extracts the archive member named member from the
// zip file at zipPath into dir and returns the extracted file path.
// member is matched against the base name of each archive entry, so
// it does not matter whether the archive nests its files in a
// directory. If the destination file already exists, ExtractMember
// returns immediately.
func ExtractMember(zipPath, member, dir string) (string, error) {
	dst := filepath.Join(dir, member)
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if path.Base(f.Name) != member {
			continue
		}
		r, err := f.Open()
		if err != nil {
			return "", err
		}
		err = writeFileAtomic(dst, r)
		r.Close()
		if err != nil {
			return "", err
		}
		return dst, nil
	}
	return "", fmt.Errorf("%s: no member %q", zipPath, member)
}

func writeFileAtomic(dst string, r io.Reader) error {
	f, err := os.Create(dst + ".tmp")
	if err != nil {
		return err
	}
	_, err = io.Copy(f, r)
	if err == nil {
		err = f.Sync()
	}
	f.Close()
	if err != nil {
		os.Remove(dst + ".tmp")
		return err
	}
	if err := os.Rename(dst+".tmp", dst); err != nil {
		os.Remove(dst + ".tmp")
		return err
	}
	return nil
}
