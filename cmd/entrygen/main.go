package main

import (
	"flag"

	"github.com/google/uuid"

	"entrygen/generate"
	"entrygen/log"
)

func main() {
	manifestPath := flag.String("manifest", "entrygen.yaml", "path to the contract manifest")
	outDir := flag.String("out", ".", "directory for the generated file")
	flag.Parse()

	run := uuid.NewString()[:8]
	log.Printf("entrygen %s: manifest %s", run, *manifestPath)

	manifest, err := generate.LoadManifest(*manifestPath)
	if err != nil {
		log.Fatal("entrygen ", run, ": ", err)
	}

	w := generate.NewWriter(manifest, *outDir)
	if err := w.Write(); err != nil {
		log.Fatal("entrygen ", run, ": ", err)
	}
}
