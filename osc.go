package main

import (
	"fmt"
	"log"
	"net"
	"strconv"

	"github.com/hypebeast/go-osc/osc"
)

// LaunchOSCServer drives the selector from outside: /pick, /clear,
// /random and /roots mirror the on-screen gestures.
func LaunchOSCServer(addr string, np *NotePick) {
	d := osc.NewStandardDispatcher()

	d.AddMsgHandler("/pick", func(msg *osc.Message) {
		if len(msg.Arguments) != 1 {
			log.Printf("Expected 1 argument for /pick, got: %d", len(msg.Arguments))
			return
		}
		name, ok := msg.Arguments[0].(string)
		if !ok {
			log.Printf("First /pick argument not a string")
			return
		}
		np.Set(name)
	})

	d.AddMsgHandler("/clear", func(msg *osc.Message) {
		np.Clear()
	})

	d.AddMsgHandler("/random", func(msg *osc.Message) {
		np.Random()
	})

	d.AddMsgHandler("/roots", func(msg *osc.Message) {
		if len(msg.Arguments) != 1 {
			log.Printf("Expected 1 argument for /roots, got: %d", len(msg.Arguments))
			return
		}
		on, ok := msg.Arguments[0].(int32)
		if !ok {
			log.Printf("First /roots argument not an integer")
			return
		}
		np.SetRootsOnly(on != 0)
	})

	server := &osc.Server{
		Addr:       addr,
		Dispatcher: d,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			log.Fatalf("Failed to serve: %+v", err)
		}
	}()
}

// Notifier broadcasts completed transitions as /selected messages to a
// fixed set of UDP targets.
type Notifier struct {
	targets []string
	clients []*osc.Client
}

// parseTarget splits host:port for osc.NewClient.
func parseTarget(target string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(target)
	if err != nil {
		return "", 0, fmt.Errorf("bad notify target %q: %v", target, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("bad notify port %q: %v", portStr, err)
	}
	return host, port, nil
}

func NewNotifier(targets []string) (*Notifier, error) {
	n := &Notifier{}
	for _, target := range targets {
		host, port, err := parseTarget(target)
		if err != nil {
			return nil, err
		}
		n.targets = append(n.targets, target)
		n.clients = append(n.clients, osc.NewClient(host, port))
	}
	return n, nil
}

// Notify sends the new selection; a cleared selection goes out as an
// empty name with pitch -1.
func (n *Notifier) Notify(name string, pitch int) {
	msg := osc.NewMessage("/selected")
	msg.Append(name)
	msg.Append(int32(pitch))
	for i, client := range n.clients {
		if err := client.Send(msg); err != nil {
			log.Printf("Failed to notify %s: %v", n.targets[i], err)
		}
	}
}
