// Package logger is the entry point for event producers.
//
// A FormattingLogger is immutable after construction: sink, filter and
// formatting options are set once via the Builder and never modified.
// It is safe for concurrent use without locking as long as its sink is.
//
//	log := logger.NewBuilder().
//	    WithSink(sink.Writer(os.Stderr)).
//	    WithLevel(logger.InformationLevel).
//	    WithOptions(formatter.DefaultWithUTCTime).
//	    Build()
//
// Producers ask ShouldLog before building a payload, or hand a payload to
// Emit, which turns Throw events into errors regardless of the filter and
// logs the rest when the filter accepts them:
//
//	if err := logger.Emit(log, defs.Find(db, selector)); err != nil {
//	    return err
//	}
//
// Filter checks happen before the message generator runs, so filtered
// events cost a predicate call and nothing else.
//
// The package initializes a default logger (stdout, Information and above,
// DefaultWithLocalTime) used by the package-level Log and ShouldLog.
package logger
