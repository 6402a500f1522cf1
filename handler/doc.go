// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request struct already filled by
// the configured binders, and returns a Response:
//
//	type ScriptRequest struct {
//		Name string `query:"name"`
//	}
//
//	func script(ctx handler.Context, req ScriptRequest) handler.Response {
//		return handler.JSON(map[string]string{"url": site.WikiScript(req.Name)})
//	}
//
//	r.Get("/api/script", handler.Wrap(script, handler.WithBinders(binder.Query())))
//
// Responses: JSON, JSONError, HTML (any Renderer such as a wikidom.Page),
// Redirect, LocalRedirect, Empty, and Error which defers to the error handler.
//
// Bind and render failures go to the ErrorHandler. NewErrorHandler logs them
// with the request ID and maps validator.ValidationErrors to 422, binder
// failures to 400 or 415, HTTPError to its own code and anything else to 500.
package handler
