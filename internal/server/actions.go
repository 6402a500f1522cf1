package server

import (
	"log/slog"

	"github.com/dmitrymomot/wikikit/handler"
	"github.com/dmitrymomot/wikikit/pkg/cookie"
	"github.com/dmitrymomot/wikikit/pkg/logger"
	"github.com/dmitrymomot/wikikit/pkg/validator"
	"github.com/dmitrymomot/wikikit/pkg/wikidom"
)

type toggleRequest struct {
	Return string `query:"return" form:"return"`
}

// toggleTOC flips the table-of-contents cookie. The cookie stays readable by
// page scripts, which apply the same preference client side.
func (s *Server) toggleTOC(ctx handler.Context, req toggleRequest) handler.Response {
	w, r := ctx.ResponseWriter(), ctx.Request()

	state := wikidom.TOCHidden
	if v, _ := s.cookies.Get(r, wikidom.TOCCookieName); v == wikidom.TOCCookieValue {
		state = wikidom.TOCShown
		s.cookies.Delete(w, wikidom.TOCCookieName,
			cookie.WithPath(wikidom.TOCCookiePath),
			cookie.WithHTTPOnly(false),
		)
	} else {
		s.cookies.Set(w, wikidom.TOCCookieName, wikidom.TOCCookieValue,
			cookie.WithPath(wikidom.TOCCookiePath),
			cookie.WithTTL(wikidom.TOCCookieMaxAge),
			cookie.WithHTTPOnly(false),
		)
	}

	if s.metrics != nil {
		s.metrics.IncrementTOCToggle(state.String())
	}
	s.log.DebugContext(ctx, "toc toggled", logger.Component("toc"), slog.String("state", state.String()))
	return handler.LocalRedirect(req.Return, "/")
}

type notifyRequest struct {
	Message string `form:"message"`
	Return  string `form:"return"`
}

// notify queues a notice for the next rendered page.
func (s *Server) notify(ctx handler.Context, req notifyRequest) handler.Response {
	if err := validator.Apply(
		validator.RequiredString("message", req.Message),
		validator.MaxLenString("message", req.Message, s.cfg.MaxNoticeLength),
	); err != nil {
		return handler.Error(err)
	}

	if err := s.cookies.SetFlash(ctx.ResponseWriter(), noticeFlashKey, req.Message); err != nil {
		return handler.Error(err)
	}
	if s.metrics != nil {
		s.metrics.IncrementNotices()
	}
	return handler.LocalRedirect(req.Return, s.site.GetURL("", nil))
}
