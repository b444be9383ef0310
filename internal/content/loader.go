package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/myuanzhang/reader-epub/internal/slug"
)

// ErrLoad indicates the content tree is missing, unreadable or malformed.
var ErrLoad = errors.New("content load failed")

// ErrDuplicateArticle indicates two articles resolve to the same id. It is
// always reported together with ErrLoad.
var ErrDuplicateArticle = errors.New("duplicate article id")

// Fixed locations inside the content root.
const (
	MetadataFile = "metadata.json"
	ForewordFile = "foreword.md"
	ColumnsDir   = "columns"
)

// DefaultForewordTitle is the page title given to foreword.md.
const DefaultForewordTitle = "卷首语"

// markdownExt is the only extension treated as an article.
const markdownExt = ".md"

// Loader reads a content tree into a Book.
type Loader struct {
	fsys          fs.FS
	forewordTitle string
	reserved      func(id string) bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithForewordTitle sets the title of the page built from foreword.md.
func WithForewordTitle(title string) LoaderOption {
	return func(l *Loader) {
		if title != "" {
			l.forewordTitle = title
		}
	}
}

// WithReservedIDs marks identifiers that belong to something outside the
// content tree. A page or article whose id would be reserved gets the
// digest form from slug.Disambiguated instead.
func WithReservedIDs(reserved func(id string) bool) LoaderOption {
	return func(l *Loader) {
		l.reserved = reserved
	}
}

// NewLoader returns a Loader reading from fsys, which must be rooted at
// the content directory.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{fsys: fsys, forewordTitle: DefaultForewordTitle}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads metadata, pages and columns.
func (l *Loader) Load() (*Book, error) {
	if _, err := fs.Stat(l.fsys, "."); err != nil {
		return nil, fmt.Errorf("%w: content root: %v", ErrLoad, err)
	}

	meta, err := l.LoadMetadata()
	if err != nil {
		return nil, err
	}

	var pages []Page
	page, ok, err := l.LoadPage(l.forewordTitle, ForewordFile)
	if err != nil {
		return nil, err
	}
	if ok {
		pages = append(pages, page)
	}

	columns, err := l.LoadColumns()
	if err != nil {
		return nil, err
	}

	book := &Book{Metadata: meta, Pages: pages, Columns: columns}
	if err := checkUniqueIDs(book); err != nil {
		return nil, err
	}
	return book, nil
}

// LoadMetadata reads metadata.json. A missing id is replaced by a
// deterministic urn:uuid derived from the title.
func (l *Loader) LoadMetadata() (Metadata, error) {
	data, err := fs.ReadFile(l.fsys, MetadataFile)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %v", ErrLoad, MetadataFile, err)
	}

	var meta Metadata
	if err := json.Unmarshal(cleanText(data), &meta); err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %v", ErrLoad, MetadataFile, err)
	}

	meta.Title = strings.TrimSpace(meta.Title)
	if meta.Title == "" {
		return Metadata{}, fmt.Errorf("%w: %s: title is required", ErrLoad, MetadataFile)
	}
	if strings.TrimSpace(meta.ID) == "" {
		meta.ID = BookID(meta.Title)
	}
	return meta, nil
}

// BookID derives a stable identifier for a book without an explicit id.
func BookID(title string) string {
	return "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("reader-epub:"+title)).String()
}

// LoadPage reads a plain markdown page. The second result is false when
// the file does not exist. Front matter, if present, is stripped.
func (l *Loader) LoadPage(title, name string) (Page, bool, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return Page{}, false, nil
	}
	if err != nil {
		return Page{}, false, fmt.Errorf("%w: %s: %v", ErrLoad, name, err)
	}

	_, body, err := ParseFrontMatter(data)
	if err != nil {
		return Page{}, false, fmt.Errorf("%w: %s: %v", ErrLoad, name, err)
	}
	return Page{
		Title: title,
		File:  l.makeID(title) + ".xhtml",
		Body:  string(body),
	}, true, nil
}

// LoadColumns reads every column directory below columns/.
func (l *Loader) LoadColumns() ([]Column, error) {
	entries, err := fs.ReadDir(l.fsys, ColumnsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, ColumnsDir, err)
	}

	var columns []Column
	for _, entry := range entries {
		dir := path.Join(ColumnsDir, entry.Name())
		info, err := fs.Stat(l.fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoad, dir, err)
		}
		if !info.IsDir() {
			continue
		}

		column, err := l.loadColumn(entry.Name(), dir)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}
	return columns, nil
}

func (l *Loader) loadColumn(name, dir string) (Column, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return Column{}, fmt.Errorf("%w: column %s: %v", ErrLoad, dir, err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), markdownExt) {
			files = append(files, entry.Name())
		}
	}
	SortFileNames(files)

	column := Column{Name: name, Articles: make([]Article, 0, len(files))}
	for _, file := range files {
		article, err := l.loadArticle(column.Name, dir, file)
		if err != nil {
			return Column{}, err
		}
		column.Articles = append(column.Articles, article)
	}
	return column, nil
}

func (l *Loader) loadArticle(column, dir, file string) (Article, error) {
	p := path.Join(dir, file)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Article{}, fmt.Errorf("%w: %s: %v", ErrLoad, p, err)
	}

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return Article{}, fmt.Errorf("%w: %s: %v", ErrLoad, p, err)
	}

	idSource, title := meta.Title, meta.Title
	if title == "" {
		idSource = file
		title = strings.TrimSuffix(file, markdownExt)
	}

	return Article{
		ID:        l.makeID(column + "-" + idSource),
		Column:    column,
		Title:     title,
		Author:    meta.Author,
		Image:     meta.Image,
		Body:      string(body),
		FileName:  file,
		SourceDir: dir,
		Intro:     IsIntroduction(file),
	}, nil
}

func (l *Loader) makeID(source string) string {
	id := slug.Make(source)
	if l.reserved == nil || !l.reserved(id) {
		return id
	}
	if id = slug.Disambiguated(source); !l.reserved(id) {
		return id
	}
	return slug.FallbackPrefix + slug.Hash(source)
}

// checkUniqueIDs rejects books where two articles, or an article and a
// page, would be written to the same XHTML file.
func checkUniqueIDs(b *Book) error {
	seen := make(map[string]string)
	for _, p := range b.Pages {
		seen[strings.TrimSuffix(p.File, ".xhtml")] = p.Title
	}
	for _, a := range b.Articles() {
		if other, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: %w %q (%s/%s collides with %s)", ErrLoad, ErrDuplicateArticle, a.ID, a.Column, a.FileName, other)
		}
		seen[a.ID] = a.Column + "/" + a.FileName
	}
	return nil
}
