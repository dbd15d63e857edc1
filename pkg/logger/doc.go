// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers that keep key names consistent.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler based on the configured
// Format. When ContextExtractor callbacks are registered the handler is wrapped
// so they run on records logged with a context; i18n.NewTranslator logs its
// load summary that way. Discard returns a logger that
// drops everything; the format package uses it until a logger is supplied.
//
// # Usage
//
//	import "github.com/dmitrymomot/brkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithDebug(),
//	    logger.WithAttr(logger.Component("billing")),
//	)
//	f := format.New(format.WithLogger(log))
//
// # Options
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level; WithDebug is text at debug level.
//   - WithOutput sets the writer (stderr by default).
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context.
//
// # Attributes
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Debug("phone rejected", logger.Error(err))
//
// needs no nil check. Locale, Pattern, DocumentKind and Input name the values
// the formatters report.
package logger
