package server

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/wikikit/pkg/validator"
	"github.com/dmitrymomot/wikikit/pkg/wikidom"
)

// Config holds the page post-processing settings of the service.
type Config struct {
	// PortletLinks are added to every rendered page. Entries are separated
	// by ';', fields by '|': portlet|href|text[|id[|tooltip[|accesskey[|nextnode]]]].
	PortletLinks []PortletLinkSpec `env:"WIKI_PORTLET_LINKS" envSeparator:";"`
	// ExtraCSS is injected into the head of every rendered page.
	ExtraCSS string `env:"WIKI_EXTRA_CSS"`

	MaxNoticeLength int    `env:"NOTICE_MAX_LENGTH" envDefault:"500"`
	HideTOCMessage  string `env:"WIKI_MSG_HIDETOC" envDefault:"hide"`
	ShowTOCMessage  string `env:"WIKI_MSG_SHOWTOC" envDefault:"show"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxNoticeLength: 500,
		HideTOCMessage:  "hide",
		ShowTOCMessage:  "show",
	}
}

// Messages returns the interface messages for rendered pages.
func (c Config) Messages() wikidom.Messages {
	m := wikidom.DefaultMessages()
	if c.HideTOCMessage != "" {
		m[wikidom.MsgHideTOC] = c.HideTOCMessage
	}
	if c.ShowTOCMessage != "" {
		m[wikidom.MsgShowTOC] = c.ShowTOCMessage
	}
	return m
}

// Validate checks the configured portlet links and limits.
func (c Config) Validate() error {
	rules := []validator.Rule{{
		Check: func() bool { return c.MaxNoticeLength > 0 },
		Error: validator.ValidationError{
			Field:          "max_notice_length",
			Message:        "must be positive",
			TranslationKey: "validation.positive",
		},
	}}
	for i, link := range c.PortletLinks {
		field := fmt.Sprintf("portlet_links[%d]", i)
		rules = append(rules,
			validator.RequiredString(field+".portlet", link.Portlet),
			validator.RequiredString(field+".href", link.Href),
			validator.RequiredString(field+".text", link.Text),
		)
	}
	return validator.Apply(rules...)
}

// PortletLinkSpec is a wikidom.PortletLink that decodes from its
// environment form.
type PortletLinkSpec wikidom.PortletLink

// UnmarshalText parses "portlet|href|text[|id[|tooltip[|accesskey[|nextnode]]]]".
func (s *PortletLinkSpec) UnmarshalText(text []byte) error {
	fields := strings.Split(strings.TrimSpace(string(text)), "|")
	if len(fields) < 3 || len(fields) > 7 {
		return fmt.Errorf("portlet link %q: want 3 to 7 '|' separated fields, got %d", text, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	fields = append(fields, make([]string, 7-len(fields))...)

	*s = PortletLinkSpec{
		Portlet:   fields[0],
		Href:      fields[1],
		Text:      fields[2],
		ID:        fields[3],
		Tooltip:   fields[4],
		AccessKey: fields[5],
		NextNode:  fields[6],
	}
	return nil
}
