package logwriter

import (
	"bytes"
	"context"
	"io"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/xsync"
)

// LogWriter forwards whatever is written into it to a logger, one entry per line.
//
// It is used to keep the stderr of external tools in the logs instead of
// mixing it into the terminal of the caller.
type LogWriter struct {
	Logger       logger.Logger
	Level        logger.Level
	Buffer       bytes.Buffer
	BufferLocker xsync.Mutex
}

var _ io.Writer = (*LogWriter)(nil)

func NewLogWriter(
	l logger.Logger,
	level logger.Level,
) *LogWriter {
	return &LogWriter{
		Logger: l,
		Level:  level,
	}
}

func (l *LogWriter) Write(b []byte) (int, error) {
	ctx := xsync.WithNoLogging(context.TODO(), true)
	return xsync.DoR2(ctx, &l.BufferLocker, func() (int, error) {
		n, _ := l.Buffer.Write(b)
		for {
			idx := bytes.IndexByte(l.Buffer.Bytes(), '\n')
			if idx < 0 {
				break
			}
			line := string(l.Buffer.Next(idx + 1))
			l.emit(line[:len(line)-1])
		}
		return n, nil
	})
}

// Flush emits the incomplete trailing line, if any.
func (l *LogWriter) Flush() {
	ctx := xsync.WithNoLogging(context.TODO(), true)
	s := xsync.DoR1(ctx, &l.BufferLocker, func() string {
		s := l.Buffer.String()
		l.Buffer.Reset()
		return s
	})
	l.emit(s)
}

func (l *LogWriter) emit(s string) {
	if len(s) == 0 {
		return
	}
	l.Logger.Logf(l.Level, "%s", s)
}
