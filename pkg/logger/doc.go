// Package logger builds *slog.Logger values for wikikit services.
//
// New takes functional options; FromConfig maps the ENV, LOG_LEVEL,
// LOG_FORMAT and NO_COLOR variables onto them. Development logs are colored
// text rendered by tint, everything else is JSON:
//
//	log := logger.New(
//		logger.WithEnvironment(logger.EnvDevelopment, "wikikit"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	logger.SetAsDefault(log)
//	log.InfoContext(ctx, "page rendered", logger.Page(title), logger.Duration(d))
//
// ContextExtractor callbacks run on every record through LogHandlerDecorator,
// which lets request-scoped values such as the request ID reach records
// logged deep inside handlers without threading a logger through.
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so
//
//	log.Info("toggled", logger.Error(err))
//
// needs no nil check.
package logger
