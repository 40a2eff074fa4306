// nmeadump reads a stream of NMEA 0183 sentences from a file or
// network source and writes one decoded record per line to stdout.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tormol/nmea0183/feed"
	"github.com/tormol/nmea0183/nmea0183"
	"github.com/urfave/cli/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "nmeadump",
		Usage: "decode NMEA 0183 / AIS sentence streams into JSON or MessagePack records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "file path, tcp://host:port or udp://:port",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format, json or msgpack",
			},
			&cli.BoolFlag{
				Name:  "dedup",
				Usage: "drop sentences already seen recently",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// record is one output line: the concrete message type name plus the
// decoded message itself.
type record struct {
	Type    string           `json:"type" msgpack:"type"`
	Message nmea0183.Message `json:"message" msgpack:"message"`
}

func typeName(m nmea0183.Message) string {
	t := fmt.Sprintf("%T", m)
	return t[strings.LastIndexByte(t, '.')+1:]
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if s := c.String("source"); s != "" {
		cfg.Source = s
	}
	if f := c.String("format"); f != "" {
		cfg.Format = f
	}
	if c.Bool("dedup") {
		cfg.Dedup = true
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger := buildLogger(cfg.Log)
	defer logger.Sync()

	encode := json.Marshal
	if cfg.Format == "msgpack" {
		encode = func(v any) ([]byte, error) { return msgpack.Marshal(v) }
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	parser := nmea0183.NewParser(nmea0183.WithLogger(logger))
	var filter *feed.DuplicateFilter
	if cfg.Dedup {
		filter = feed.NewDuplicateFilter(time.Minute)
		defer filter.Close()
	}

	handler := func(sentence []byte) {
		if filter != nil && filter.IsDuplicate(sentence) {
			return
		}
		msg, err := parser.ParseSentence(string(sentence))
		if err != nil {
			logger.Warn("sentence dropped",
				zap.Error(err),
				zap.ByteString("sentence", bytes.TrimRight(sentence, "\r\n")))
			return
		}
		if _, incomplete := msg.(nmea0183.Incomplete); incomplete {
			return
		}
		line, err := encode(record{Type: typeName(msg), Message: msg})
		if err != nil {
			logger.Error("encoding record failed", zap.Error(err))
			return
		}
		out.Write(line)
		out.WriteByte('\n')
	}

	switch {
	case strings.HasPrefix(cfg.Source, "tcp://"):
		return feed.ReadTCP(strings.TrimPrefix(cfg.Source, "tcp://"),
			cfg.SilenceTimeout, handler, logger)
	case strings.HasPrefix(cfg.Source, "udp://"):
		return feed.ListenUDP(strings.TrimPrefix(cfg.Source, "udp://"), handler, logger)
	case strings.Contains(cfg.Source, "://"):
		return fmt.Errorf("unsupported protocol in %s", cfg.Source)
	default:
		return feed.ReadFile(cfg.Source, handler)
	}
}
