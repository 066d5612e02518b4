package main

//go-build: CGO_ENABLED=0

import (
	"encoding/json"
	"flag"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/QDU-Robomaster/DR16/pkg/dr16"
	"github.com/QDU-Robomaster/DR16/pkg/mqtt"
)

var outputJSON bool

func init() {
	mqtt.SetupFlags()
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print frames in JSON.")
}

// monitor tracks the latest frame seen on the broker.
type monitor struct {
	lock    sync.RWMutex
	last    *dr16.Data
	watchCh chan dr16.Data
}

func (m *monitor) handle(topic string, payload []byte) {
	if len(payload) < dr16.FrameSize {
		return
	}
	var data dr16.Data
	data.Unmarshal(payload)
	m.lock.Lock()
	m.last = &data
	ch := m.watchCh
	m.lock.Unlock()
	if ch != nil {
		select {
		case ch <- data:
		default:
		}
	}
}

func (m *monitor) lastFrame() *dr16.Data {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.last
}

func (m *monitor) watch(ch chan dr16.Data) {
	m.lock.Lock()
	m.watchCh = ch
	m.lock.Unlock()
}

func printFrame(c *ishell.Context, data *dr16.Data) {
	if outputJSON {
		encoded, err := json.Marshal(data)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(encoded))
	} else {
		c.Println(data.String())
	}
}

func main() {
	flag.Parse()

	conf := mqtt.NewConfig()
	if conf.BrokerURL == "" {
		glog.Exit("MQTT broker URL required (-mqtt or DR16_MQTT_URL)")
	}
	queue, err := conf.NewQueue()
	if err != nil {
		glog.Exitf("MQTT config: %v", err)
	}
	if token := queue.Connect(); token.Wait() && token.Error() != nil {
		glog.Exitf("MQTT connect: %v", token.Error())
	}
	defer queue.Close()

	mon := &monitor{}
	queue.Sub(mqtt.FrameTopic, mon.handle)

	shell := ishell.New()
	shell.SetPrompt("dr16 > ")

	shell.AddCmd(&ishell.Cmd{
		Name: "frame",
		Help: "print the last received frame",
		Func: func(c *ishell.Context) {
			// retained payloads arrive shortly after subscribing
			deadline := time.Now().Add(2 * time.Second)
			for mon.lastFrame() == nil && time.Now().Before(deadline) {
				time.Sleep(50 * time.Millisecond)
			}
			data := mon.lastFrame()
			if data == nil {
				c.Err(fmt.Errorf("no frame received"))
				return
			}
			printFrame(c, data)
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "watch",
		Help: "N - print the next N frames",
		Func: func(c *ishell.Context) {
			count := 10
			if len(c.Args) > 0 {
				n, err := strconv.Atoi(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				count = n
			}
			ch := make(chan dr16.Data, 16)
			mon.watch(ch)
			defer mon.watch(nil)
			for i := 0; i < count; i++ {
				select {
				case data := <-ch:
					printFrame(c, &data)
				case <-time.After(5 * time.Second):
					c.Err(fmt.Errorf("timed out waiting for frames"))
					return
				}
			}
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "keys",
		Help: "decode the key bitmask of the last frame",
		Func: func(c *ishell.Context) {
			data := mon.lastFrame()
			if data == nil {
				c.Err(fmt.Errorf("no frame received"))
				return
			}
			codes := data.KeyCodes()
			if len(codes) == 0 {
				c.Println("no keys held")
				return
			}
			for _, code := range codes {
				c.Printf("%d", code)
				if code < uint32(dr16.KeyNum) {
					c.Printf(" (%s)", dr16.Key(code))
				}
				c.Println()
			}
		},
	})

	shell.Run()
}
