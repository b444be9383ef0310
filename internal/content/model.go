package content

// Metadata is the book-level description read from metadata.json.
type Metadata struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Creator    string `json:"creator"`
	CoverImage string `json:"coverImage"`
}

// Article is one markdown file of a column.
type Article struct {
	ID        string // unique, XML-id-safe; also the XHTML file stem
	Column    string
	Title     string
	Author    string // optional
	Image     string // optional, as declared in front matter
	Body      string // markdown source without front matter
	FileName  string // e.g. "01-intro.md"
	SourceDir string // slash path of the column directory inside the content root
	Intro     bool
}

// Column is a named, ordered group of articles.
type Column struct {
	Name     string
	Articles []Article
}

// Lead returns the article a navigation entry for the column points at:
// the first introduction article, or the first article when none is
// flagged. The second value holds every other article in column order.
func (c Column) Lead() (Article, []Article, bool) {
	if len(c.Articles) == 0 {
		return Article{}, nil, false
	}
	lead := 0
	for i, a := range c.Articles {
		if a.Intro {
			lead = i
			break
		}
	}
	rest := make([]Article, 0, len(c.Articles)-1)
	rest = append(rest, c.Articles[:lead]...)
	rest = append(rest, c.Articles[lead+1:]...)
	return c.Articles[lead], rest, true
}

// Page is a standalone page outside any column, such as the foreword.
type Page struct {
	Title string
	File  string // output file name inside the text directory
	Body  string // markdown source
}

// Book is the whole content model. It is built once and read-only afterwards.
type Book struct {
	Metadata Metadata
	Pages    []Page
	Columns  []Column
}

// Articles returns every article in spine order.
func (b *Book) Articles() []Article {
	var all []Article
	for _, c := range b.Columns {
		all = append(all, c.Articles...)
	}
	return all
}
