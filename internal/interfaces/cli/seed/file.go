package seed

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the layout of a seed document. Either section may be omitted.
//
//	agents:
//	  - name: Ravi Kumar
//	    email: ravi@instamakaan.in
//	listings:
//	  - id: prop_101
//	    owner_id: own_7
//	    title: 2BHK in Baner
type File struct {
	Agents   []AgentSeed   `yaml:"agents"`
	Listings []ListingSeed `yaml:"listings"`
}

type AgentSeed struct {
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Designation string `yaml:"designation"`
	Status      string `yaml:"status"`
	Notes       string `yaml:"notes"`
}

type ListingSeed struct {
	ID      string `yaml:"id"`
	OwnerID string `yaml:"owner_id"`
	Title   string `yaml:"title"`
}

// Parse decodes a seed document, rejecting unknown keys.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, l := range f.Listings {
		if l.ID == "" || l.OwnerID == "" {
			return nil, fmt.Errorf("listing #%d: id and owner_id are required", i+1)
		}
	}
	return &f, nil
}

// ParseFile opens and decodes path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}
