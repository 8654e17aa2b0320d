package kit

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

const maxLineBytes = 1 << 20

type LineHandler func(line []byte) any

// RunConsole feeds every non-blank input line to h and writes the result as one
// JSON line. It returns nil on EOF or on SIGINT/SIGTERM.
func RunConsole(in io.Reader, out io.Writer, h LineHandler, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("console starting")
		errCh <- serveLines(in, out, h)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		log.Info("shutdown signal", zap.String("signal", sig.String()))
		return nil
	case err := <-errCh:
		if err == nil {
			log.Info("console input closed")
		}
		return err
	}
}

func serveLines(in io.Reader, out io.Writer, h LineHandler) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := WriteJSON(out, h(line)); err != nil {
			return err
		}
	}
	return sc.Err()
}
