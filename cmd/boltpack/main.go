// Command boltpack dials a Bolt v1 server, performs INIT, and runs a single
// statement with no parameters, printing whatever SUCCESS/FAILURE/RECORD
// structures come back. It exists to demonstrate bolt.Facade and
// bolttransport.Conn wired together end to end, including the response
// read loop a real connection would own; it is not part of the codec or
// façade's own test suite.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/packstream-go/bolt/bolt"
	"github.com/packstream-go/bolt/bolttransport"
	"github.com/packstream-go/bolt/packstream"
)

type observer struct{}

func (observer) OnNext(record []packstream.Value) {
	fmt.Println("RECORD", record)
}

func (observer) OnCompleted(metadata *packstream.Map) {
	fmt.Println("SUCCESS", metadata)
}

func (observer) OnError(err error) {
	fmt.Fprintln(os.Stderr, "ERROR", err)
}

type conn struct {
	fatal error
}

func (c *conn) MarkFatal(err error) {
	c.fatal = err
}

// readResponse reads one Bolt response structure and routes it to obs,
// returning true once a SUCCESS or FAILURE has ended the stream the
// request started. RECORD keeps the stream open; IGNORED ends it with an
// error, the same way FAILURE does.
func readResponse(u *packstream.Unpacker, ch packstream.ReadChannel, obs bolt.Observer) (bool, error) {
	s, err := u.UnpackStructure(ch)
	if err != nil {
		return false, err
	}
	metadata := func() *packstream.Map {
		if len(s.Fields) == 0 {
			return nil
		}
		m, _ := s.Fields[0].(*packstream.Map)
		return m
	}

	switch s.Signature {
	case bolt.MessageRecord:
		var record []packstream.Value
		if len(s.Fields) > 0 {
			if fields, ok := s.Fields[0].([]packstream.Value); ok {
				record = fields
			}
		}
		obs.OnNext(record)
		return false, nil
	case bolt.MessageSuccess:
		obs.OnCompleted(metadata())
		return true, nil
	case bolt.MessageFailure:
		err := fmt.Errorf("server returned FAILURE: %v", metadata())
		obs.OnError(err)
		return true, err
	case bolt.MessageIgnored:
		err := fmt.Errorf("server returned IGNORED")
		obs.OnError(err)
		return true, err
	default:
		err := fmt.Errorf("unexpected response signature %s", bolt.MessageSignature(s.Signature))
		obs.OnError(err)
		return true, err
	}
}

// readUntilDone reads responses until one ends the current stream (a
// SUCCESS, FAILURE or IGNORED), routing each to obs along the way.
func readUntilDone(u *packstream.Unpacker, ch packstream.ReadChannel, obs bolt.Observer) error {
	for {
		done, err := readResponse(u, ch, obs)
		if done {
			return err
		}
		if err != nil {
			return err
		}
	}
}

func main() {
	addr := flag.String("addr", "127.0.0.1:7687", "Bolt server address")
	statement := flag.String("statement", "RETURN 1", "statement to run")
	flag.Parse()

	nc, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dial:", err)
		os.Exit(1)
	}
	defer nc.Close()

	ch := bolttransport.New(nc)
	c := &conn{}
	facade := bolt.NewFacade(ch, c, bolt.DefaultOptions())
	unpacker := packstream.NewUnpacker()

	obs := observer{}
	if err := facade.Initialize(bolt.DefaultClientName(), packstream.NewMap(), obs); err != nil {
		fmt.Fprintln(os.Stderr, "initialize:", err)
		os.Exit(1)
	}
	if err := readUntilDone(unpacker, ch, obs); err != nil {
		fmt.Fprintln(os.Stderr, "initialize response:", err)
		os.Exit(1)
	}

	if err := facade.Run(*statement, packstream.NewMap(), "", nil, obs); err != nil {
		fmt.Fprintln(os.Stderr, "run:", err)
		os.Exit(1)
	}
	// RUN's own SUCCESS ack comes back first, then PULL_ALL's stream of
	// zero or more RECORDs terminated by a SUCCESS or FAILURE.
	if err := readUntilDone(unpacker, ch, obs); err != nil {
		fmt.Fprintln(os.Stderr, "run response:", err)
		os.Exit(1)
	}
	if err := readUntilDone(unpacker, ch, obs); err != nil {
		fmt.Fprintln(os.Stderr, "pull response:", err)
		os.Exit(1)
	}

	if c.fatal != nil {
		fmt.Fprintln(os.Stderr, "connection marked fatal:", c.fatal)
		os.Exit(1)
	}
}
