//go:build mage

package main

import "os"

// Parse turns the documents under knowledgebase/recipes into parsed_recipes.json.
func Parse() error {
	return run("parse")
}

// Import pushes parsed_recipes.json to the content store.
func Import() error {
	return run("import")
}

// Ingest loads parsed_recipes.json into the local catalog.
func Ingest() error {
	return run("store", "ingest")
}

// Search queries the local catalog. Set Q to the query text.
func Search() error {
	return run("store", "search", os.Getenv("Q"))
}

// All parses, ingests into the catalog, and imports.
func All() error {
	if err := Parse(); err != nil {
		return err
	}
	if err := Ingest(); err != nil {
		return err
	}
	return Import()
}
