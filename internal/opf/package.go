package opf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/myuanzhang/reader-epub/internal/content"
)

// ModifiedLayout formats dcterms:modified: UTC with second precision.
const ModifiedLayout = "2006-01-02T15:04:05Z"

const (
	opfNamespace = "http://www.idpf.org/2007/opf"
	dcNamespace  = "http://purl.org/dc/elements/1.1/"
	opfVersion   = "3.0"
)

// Package is the content.opf document.
type Package struct {
	Metadata content.Metadata
	Modified time.Time
	Manifest *Manifest
	Spine    []string // manifest ids in reading order
}

// Spine returns the reading order: pages, then articles column by column.
// The cover, the table of contents page and the nav document are left out.
func Spine(book *content.Book) []string {
	var ids []string
	for _, p := range book.Pages {
		ids = append(ids, PageID(p))
	}
	for _, a := range book.Articles() {
		ids = append(ids, a.ID)
	}
	return ids
}

// NewPackage assembles the package document. Every spine entry must name
// a manifest item.
func NewPackage(book *content.Book, manifest *Manifest, modified time.Time) (*Package, error) {
	p := &Package{
		Metadata: book.Metadata,
		Modified: modified.UTC(),
		Manifest: manifest,
		Spine:    Spine(book),
	}
	for _, id := range p.Spine {
		if !manifest.Has(id) {
			return nil, fmt.Errorf("%w: spine entry %q", ErrUnknownID, id)
		}
	}
	return p, nil
}

type xmlPackage struct {
	XMLName          xml.Name    `xml:"package"`
	Xmlns            string      `xml:"xmlns,attr"`
	Version          string      `xml:"version,attr"`
	UniqueIdentifier string      `xml:"unique-identifier,attr"`
	Lang             string      `xml:"xml:lang,attr"`
	Metadata         xmlMetadata `xml:"metadata"`
	Items            []xmlItem   `xml:"manifest>item"`
	Spine            []xmlRef    `xml:"spine>itemref"`
}

type xmlMetadata struct {
	XmlnsDC    string        `xml:"xmlns:dc,attr"`
	Identifier xmlIdentifier `xml:"dc:identifier"`
	Title      string        `xml:"dc:title"`
	Language   string        `xml:"dc:language"`
	Creator    string        `xml:"dc:creator"`
	Meta       []xmlMeta     `xml:"meta"`
}

type xmlIdentifier struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type xmlMeta struct {
	Property string `xml:"property,attr"`
	Value    string `xml:",chardata"`
}

type xmlItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr,omitempty"`
}

type xmlRef struct {
	IDRef string `xml:"idref,attr"`
}

// Bytes renders content.opf.
func (p *Package) Bytes() ([]byte, error) {
	doc := xmlPackage{
		Xmlns:            opfNamespace,
		Version:          opfVersion,
		UniqueIdentifier: BookIDAttr,
		Lang:             Language,
		Metadata: xmlMetadata{
			XmlnsDC:    dcNamespace,
			Identifier: xmlIdentifier{ID: BookIDAttr, Value: p.Metadata.ID},
			Title:      p.Metadata.Title,
			Language:   Language,
			Creator:    p.Metadata.Creator,
			Meta:       []xmlMeta{{Property: "dcterms:modified", Value: p.Modified.Format(ModifiedLayout)}},
		},
	}
	for _, item := range p.Manifest.Items() {
		doc.Items = append(doc.Items, xmlItem(item))
	}
	for _, id := range p.Spine {
		doc.Spine = append(doc.Spine, xmlRef{IDRef: id})
	}
	return encode(doc)
}

type xmlContainer struct {
	XMLName   xml.Name      `xml:"container"`
	Version   string        `xml:"version,attr"`
	Xmlns     string        `xml:"xmlns,attr"`
	Rootfiles []xmlRootfile `xml:"rootfiles>rootfile"`
}

type xmlRootfile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// Container renders META-INF/container.xml pointing at OEBPS/content.opf.
func Container() ([]byte, error) {
	return encode(xmlContainer{
		Version: "1.0",
		Xmlns:   "urn:oasis:names:tc:opendocument:xmlns:container",
		Rootfiles: []xmlRootfile{{
			FullPath:  OEBPSDir + "/" + PackageFile,
			MediaType: "application/oebps-package+xml",
		}},
	})
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
