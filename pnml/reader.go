package pnml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Document is the subset of PNML produced by Writer.
type Document struct {
	XMLName xml.Name `xml:"pnml"`
	Net     struct {
		ID   string `xml:"id,attr"`
		Type string `xml:"type,attr"`
		Page Page   `xml:"page"`
	} `xml:"net"`
}

type Page struct {
	ID          string       `xml:"id,attr"`
	Places      []Place      `xml:"place"`
	Transitions []Transition `xml:"transition"`
	Arcs        []Arc        `xml:"arc"`
}

type Place struct {
	ID             string `xml:"id,attr"`
	Name           string `xml:"name>text"`
	InitialMarking string `xml:"initialMarking>text"`
}

type Transition struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name>text"`
}

type Arc struct {
	ID          string `xml:"id,attr"`
	Source      string `xml:"source,attr"`
	Target      string `xml:"target,attr"`
	Name        string `xml:"name>text"`
	Inscription string `xml:"inscription>text"`
}

// Decode parses a PNML document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode pnml: %w", err)
	}
	return &doc, nil
}
