package main

import (
	"os"

	"github.com/alexisbeaulieu97/domkit/internal/dom"
)

func readDocument(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newCommandError("open document", path, err, "Check that the file exists and is readable.")
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, newCommandError("parse document", path, err, "Ensure the file contains HTML.")
	}
	return doc, nil
}
