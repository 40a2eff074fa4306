package feed

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
)

const (
	retryAfterMin = 5 * time.Second
	retryAfterMax = 1 * time.Hour
	giveUpAfter   = 7 * 24 * time.Hour
)

// Handler receives one complete sentence per call, including the
// trailing "\r\n".
type Handler func(sentence []byte)

func newSourceBackoff() *backoff.ExponentialBackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = retryAfterMin
	eb.MaxInterval = retryAfterMax
	eb.MaxElapsedTime = giveUpAfter
	eb.Reset() // current interval
	return eb
}

// handleSourceError sleeps out the next backoff interval and reports
// whether the reader should give up.
func handleSourceError(b *backoff.ExponentialBackOff, log *zap.Logger, name, errmsg string) bool {
	nb := b.NextBackOff()
	if nb == backoff.Stop {
		log.Error("giving up reconnecting", zap.String("source", name))
		return true
	}
	log.Warn(errmsg, zap.String("source", name))
	time.Sleep(nb)
	return false
}

// ReadFile feeds every sentence in the file at path to handler and
// returns when the file is exhausted.
func ReadFile(path string, handler Handler) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	var sc Scanner
	buf := make([]byte, 4096)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			sc.Accept(buf[:n], handler)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// ReadTCP connects to a sentence source at addr and feeds handler until
// reconnecting has failed for so long that the backoff policy gives up.
// Connections that stay silent longer than silenceTimeout are dropped
// and redialed.
func ReadTCP(addr string, silenceTimeout time.Duration, handler Handler, log *zap.Logger) error {
	b := newSourceBackoff()
	var sc Scanner
	for {
		errmsg := func() string { // scope for the defers
			tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
			if err != nil {
				return fmt.Sprintf("failed to resolve %s: %s", addr, err.Error())
			}
			conn, err := net.DialTCP("tcp", nil, tcpAddr)
			if err != nil {
				return fmt.Sprintf("failed to connect to %s: %s", addr, err.Error())
			}
			defer conn.Close()
			buf := make([]byte, 4096)
			for {
				conn.SetReadDeadline(time.Now().Add(silenceTimeout))
				n, err := conn.Read(buf)
				if err != nil {
					return fmt.Sprintf("read error from %s: %s", addr, err.Error())
				}
				sc.Accept(buf[:n], handler)
				b.Reset()
			}
		}()
		if handleSourceError(b, log, addr, errmsg) {
			return fmt.Errorf("gave up reconnecting to %s", addr)
		}
	}
}

// ListenUDP binds addr and feeds every sentence of every received
// datagram to handler. Datagrams are assumed to contain whole
// sentences, but a Scanner is still used so that sentences split
// across datagrams survive when the sender cooperates.
func ListenUDP(addr string, handler Handler, log *zap.Logger) error {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return err
	}
	defer conn.Close()
	var sc Scanner
	buf := make([]byte, 4096)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			log.Warn("udp read error", zap.String("addr", addr), zap.Error(err))
			return err
		}
		sc.Accept(buf[:n], handler)
	}
}
