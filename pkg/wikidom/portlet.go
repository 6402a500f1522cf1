package wikidom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PortletLink describes a link to add to a portlet menu such as p-tb
// (toolbox) or p-personal. Portlet, Href and Text are required.
type PortletLink struct {
	// Portlet is the id of the target menu, without '#'.
	Portlet string
	Href    string
	Text    string
	// ID is set on the new list item; use the menu's prefix ("t-", "pt-", "ca-").
	ID string
	// Tooltip is the title text without an access-key hint.
	Tooltip   string
	AccessKey string
	// NextNode is a selector, relative to the menu's list, of the item to
	// insert before. It is ignored unless it matches exactly one element.
	NextNode string
}

// AddPortletLink inserts link into its portlet menu and returns the new list
// item, or nil when the portlet does not exist.
func (p *Page) AddPortletLink(link PortletLink) *goquery.Selection {
	if link.Portlet == "" {
		return nil
	}
	portlet := p.doc.FindMatcher(goquery.Single("#" + link.Portlet))
	if portlet.Length() == 0 {
		return nil
	}

	ul := portlet.Find("ul").First()
	if ul.Length() == 0 {
		list := elementNode(atom.Ul)
		if divs := portlet.Find("div"); divs.Length() > 0 {
			divs.Last().AppendNodes(list)
		} else {
			portlet.AppendNodes(list)
		}
		ul = p.doc.FindNodes(list)
	}

	portlet.RemoveClass("emptyPortlet")

	anchor := elementNode(atom.A, html.Attribute{Key: "href", Val: link.Href})
	anchor.AppendChild(textNode(link.Text))

	item := elementNode(atom.Li)
	if portlet.HasClass("vectorTabs") {
		span := elementNode(atom.Span)
		span.AppendChild(anchor)
		item.AppendChild(span)
	} else {
		item.AppendChild(anchor)
	}
	if link.ID != "" {
		item.Attr = append(item.Attr, html.Attribute{Key: "id", Val: link.ID})
	}

	if link.Tooltip != "" {
		tooltip := StripAccessKeyHint(link.Tooltip)
		if link.AccessKey != "" {
			tooltip = TooltipWithPrefix(tooltip+" ["+link.AccessKey+"]", p.prefix)
		}
		anchor.Attr = append(anchor.Attr, html.Attribute{Key: "title", Val: tooltip})
	}
	if link.AccessKey != "" {
		anchor.Attr = append(anchor.Attr, html.Attribute{Key: "accesskey", Val: link.AccessKey})
	}

	if link.NextNode != "" {
		if next := ul.Find(link.NextNode); next.Length() == 1 {
			next.BeforeNodes(item)
			return p.doc.FindNodes(item)
		}
	}

	ul.AppendNodes(item)
	return p.doc.FindNodes(item)
}
