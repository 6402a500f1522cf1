package server

import (
	"bytes"
	"context"
	"errors"
	"html"
	"maps"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/wikikit/handler"
	"github.com/dmitrymomot/wikikit/pkg/cookie"
	"github.com/dmitrymomot/wikikit/pkg/i18n"
	"github.com/dmitrymomot/wikikit/pkg/logger"
	"github.com/dmitrymomot/wikikit/pkg/pages"
	"github.com/dmitrymomot/wikikit/pkg/useragent"
	"github.com/dmitrymomot/wikikit/pkg/wikidom"
)

const noticeFlashKey = "notice"

type pageRequest struct {
	Title string `path:"*"`
	// Query form, as in /wiki/?title=Main_Page.
	QueryTitle string `query:"title"`
}

func (s *Server) renderPage(ctx handler.Context, req pageRequest) handler.Response {
	start := time.Now()
	r := ctx.Request()

	title := pageTitle(req.Title)
	if title == "" {
		title = pageTitle(req.QueryTitle)
	}
	if title == "" {
		title = s.site.PageName()
	}

	data, err := s.pages.Read(ctx, title)
	if err != nil {
		s.observeRender("error", start)
		if errors.Is(err, pages.ErrNotFound) || errors.Is(err, pages.ErrInvalidTitle) {
			return handler.Error(errors.Join(handler.ErrNotFound, err))
		}
		return handler.Error(err)
	}

	if sized, ok := s.pages.(interface{ Len() int }); ok && s.metrics != nil {
		s.metrics.SetPageCacheSize(sized.Len())
	}

	profile, _ := useragent.Parse(r.UserAgent())
	page, err := wikidom.Parse(bytes.NewReader(data),
		wikidom.WithProfile(profile),
		wikidom.WithMessages(s.messagesFor(ctx)),
		wikidom.WithLogger(s.log),
	)
	if err != nil {
		s.observeRender("error", start)
		return handler.Error(err)
	}

	hidden, _ := s.cookies.Get(r, wikidom.TOCCookieName)
	page.InstallTOCToggle(hidden == wikidom.TOCCookieValue)

	for _, link := range s.links {
		if page.AddPortletLink(link) == nil {
			s.log.DebugContext(ctx, "portlet not on page", logger.Page(title), logger.Component(link.Portlet))
		}
	}
	page.UpdateTooltipAccessKeys()

	if s.cfg.ExtraCSS != "" {
		page.AddCSS(s.cfg.ExtraCSS)
	}

	var notice string
	if err := s.cookies.GetFlash(ctx.ResponseWriter(), r, noticeFlashKey, &notice); err == nil && notice != "" {
		page.Notify(html.EscapeString(notice))
	} else if err != nil && !errors.Is(err, cookie.ErrCookieNotFound) {
		s.log.WarnContext(ctx, "unreadable notice flash", logger.Error(err))
	}

	s.observeRender("ok", start)
	s.log.DebugContext(ctx, "page rendered",
		logger.Page(title),
		logger.Browser(profile.String()),
		logger.Duration(time.Since(start)),
	)
	return handler.HTML(page)
}

// messagesFor overlays the catalog messages of the request language on the
// configured ones.
func (s *Server) messagesFor(ctx context.Context) wikidom.Messages {
	if s.catalog == nil {
		return s.messages
	}
	msgs := maps.Clone(s.messages)
	maps.Copy(msgs, s.catalog.Messages(i18n.LanguageFromContext(ctx)))
	return msgs
}

// pageTitle turns the path form of a title back into display form.
func pageTitle(raw string) string {
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	return strings.TrimSpace(strings.ReplaceAll(raw, "_", " "))
}

func (s *Server) pagesReady(ctx context.Context) error {
	if !s.pages.Exists(ctx, s.site.PageName()) {
		return pages.ErrNotFound
	}
	return nil
}

func (s *Server) observeRender(outcome string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveRender(outcome, start)
	}
}
