// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ucdpfetch downloads the UCDP conflict datasets so the other tools
// can work from the local file system.
//
// It downloads the armed conflict and georeferenced event archives
// into a cache directory and extracts their CSV members next to
// them. Ucdpfetch reuses archives it has already downloaded, so
// running it again only fetches what is missing; use -force to
// discard the cache first.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/Lucy-Family-Institute/tidyverse-workshop/ucdp"
)

var (
	flagDir   = flag.String("dir", "data", "cache datasets under `directory`")
	flagPar   = flag.Int("j", 2, "download `num` archives concurrently")
	flagForce = flag.Bool("force", false, "redownload even if cached")
)

// datasets maps each archive URL to the CSV member to extract from
// it.
var datasets = map[string]string{
	ucdp.ConflictURL: csvMember(ucdp.ConflictURL),
	ucdp.EventURL:    csvMember(ucdp.EventURL),
}

// csvMember returns the CSV file name conventionally found in the
// archive at url: the archive base name with a .csv extension.
func csvMember(url string) string {
	base := path.Base(url)
	base = strings.TrimSuffix(base, ".zip")
	base = strings.TrimSuffix(base, "-csv")
	return base + ".csv"
}

func main() {
	log.SetPrefix("ucdpfetch: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\nDownload the UCDP datasets to a local cache.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagForce {
		if err := os.RemoveAll(*flagDir); err != nil {
			log.Fatal(err)
		}
	}
	if err := os.MkdirAll(*flagDir, 0777); err != nil {
		log.Fatal(err)
	}

	// Limit download parallelism the same way for every archive.
	tokens := make(chan struct{}, *flagPar)
	for i := 0; i < *flagPar; i++ {
		tokens <- struct{}{}
	}

	var wg sync.WaitGroup
	for url, member := range datasets {
		wg.Add(1)
		go func(url, member string) {
			defer wg.Done()

			<-tokens
			fmt.Println("fetching", url)
			zipPath, err := ucdp.Fetch(url, *flagDir)
			tokens <- struct{}{}
			if err != nil {
				log.Fatal(err)
			}

			csvPath, err := ucdp.ExtractMember(zipPath, member, *flagDir)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println("extracted", csvPath)
		}(url, member)
	}
	wg.Wait()
}
