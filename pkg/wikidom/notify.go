package wikidom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const notificationAreaID = "mw-notification-area"

// AddCSS appends a <style> element holding text to the document head and
// returns it.
func (p *Page) AddCSS(text string) *goquery.Selection {
	style := elementNode(atom.Style)
	style.AppendChild(textNode(text))

	target := p.doc.Find("head").First()
	if target.Length() == 0 {
		target = p.doc.Find("body").First()
	}
	target.AppendNodes(style)
	return p.doc.FindNodes(style)
}

// Notify shows messageHTML in a notice box at the top of the content region,
// replacing any earlier notice. The message is trusted HTML; escape user input
// first. An empty message leaves the page untouched. It always returns true.
func (p *Page) Notify(messageHTML string) bool {
	if messageHTML == "" {
		return true
	}

	p.doc.Find("#" + notificationAreaID).Remove()

	area := elementNode(atom.Div,
		html.Attribute{Key: "id", Val: notificationAreaID},
		html.Attribute{Key: "class", Val: "mw-notification-area"},
	)
	box := elementNode(atom.Div,
		html.Attribute{Key: "class", Val: "mw-notification mw-notification-autohide mw-notification-tag-legacy"},
	)
	area.AppendChild(box)

	p.content.PrependNodes(area)
	p.doc.FindNodes(box).SetHtml(messageHTML)
	return true
}

// JSMessage is the old name of Notify.
//
// Deprecated: use Notify.
func (p *Page) JSMessage(messageHTML string) bool {
	p.deprecated("JSMessage", "Notify")
	return p.Notify(messageHTML)
}
