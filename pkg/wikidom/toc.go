package wikidom

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// The TOC visibility preference is kept in a plain cookie so it survives
// across pages. It holds "1" while the table is hidden and is removed otherwise.
const (
	TOCCookieName   = "mw_hidetoc"
	TOCCookieValue  = "1"
	TOCCookiePath   = "/"
	TOCCookieMaxAge = 30 * 24 * time.Hour
)

// TOCState is the outcome of a table-of-contents toggle.
type TOCState int

const (
	// TOCMissing means the page has no table of contents.
	TOCMissing TOCState = iota
	TOCShown
	TOCHidden
)

func (s TOCState) String() string {
	switch s {
	case TOCShown:
		return "shown"
	case TOCHidden:
		return "hidden"
	default:
		return "missing"
	}
}

const tocHiddenClass = "tochidden"

// HasTOC reports whether the page carries a table of contents list.
func (p *Page) HasTOC() bool {
	return p.tocList().Length() > 0
}

// TOCHidden reports whether the table of contents list is collapsed.
func (p *Page) TOCHidden() bool {
	list := p.tocList()
	return list.Length() > 0 && isHidden(list)
}

// ToggleTOC flips the visibility of the table of contents and relabels link,
// or the installed toggle link when link is nil. The returned state is the new
// visibility, or TOCMissing when the page has no table of contents.
func (p *Page) ToggleTOC(link *goquery.Selection) TOCState {
	list := p.tocList()
	if list.Length() == 0 {
		return TOCMissing
	}
	if link == nil {
		link = p.doc.Find("#togglelink")
	}

	if isHidden(list) {
		setHidden(list, false)
		link.SetText(p.messages.Get(MsgHideTOC))
		p.doc.Find("#toc").RemoveClass(tocHiddenClass)
		return TOCShown
	}

	setHidden(list, true)
	link.SetText(p.messages.Get(MsgShowTOC))
	p.doc.Find("#toc").AddClass(tocHiddenClass)
	return TOCHidden
}

// InstallTOCToggle adds the "[hide]" link to the table of contents title and
// collapses the table when hidden is set, which callers take from the TOC
// cookie. Nothing happens without #toc and #toctitle or when a toggle link is
// already present. It reports whether the link was added.
func (p *Page) InstallTOCToggle(hidden bool) bool {
	title := p.doc.Find("#toctitle").First()
	if p.doc.Find("#toc").Length() == 0 || title.Length() == 0 || p.doc.Find("#togglelink").Length() > 0 {
		return false
	}

	link := elementNode(atom.A,
		html.Attribute{Key: "href", Val: "#"},
		html.Attribute{Key: "class", Val: "internal"},
		html.Attribute{Key: "id", Val: "togglelink"},
	)
	link.AppendChild(textNode(p.messages.Get(MsgHideTOC)))

	span := elementNode(atom.Span, html.Attribute{Key: "class", Val: "toctoggle"})
	span.AppendChild(textNode("\u00a0["))
	span.AppendChild(link)
	span.AppendChild(textNode("]\u00a0"))
	title.AppendNodes(span)

	if hidden {
		p.ToggleTOC(p.doc.FindNodes(link))
	}
	return true
}

func (p *Page) tocList() *goquery.Selection {
	return p.doc.Find("#toc ul").First()
}

func isHidden(sel *goquery.Selection) bool {
	if _, ok := sel.Attr("hidden"); ok {
		return true
	}
	style, _ := sel.Attr("style")
	return strings.Contains(strings.ReplaceAll(strings.ToLower(style), " ", ""), "display:none")
}

func setHidden(sel *goquery.Selection, hidden bool) {
	sel.RemoveAttr("hidden")

	style, _ := sel.Attr("style")
	var decls []string
	for _, d := range strings.Split(style, ";") {
		d = strings.TrimSpace(d)
		if d == "" || strings.HasPrefix(strings.ReplaceAll(strings.ToLower(d), " ", ""), "display:") {
			continue
		}
		decls = append(decls, d)
	}
	if hidden {
		decls = append(decls, "display: none")
	}

	if len(decls) == 0 {
		sel.RemoveAttr("style")
		return
	}
	sel.SetAttr("style", strings.Join(decls, "; "))
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func elementNode(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}
