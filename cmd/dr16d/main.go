package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/QDU-Robomaster/DR16/pkg/dr16"
	"github.com/QDU-Robomaster/DR16/pkg/framework"
	"github.com/QDU-Robomaster/DR16/pkg/mqtt"
	"github.com/QDU-Robomaster/DR16/pkg/topic"
)

func init() {
	dr16.SetupFlags()
	mqtt.SetupFlags()
}

func main() {
	flag.Parse()

	conf := dr16.NewConfig()
	port, err := conf.OpenPort()
	if err != nil {
		glog.Exitf("open receiver port: %v", err)
	}
	defer port.Close()

	tp := topic.New(conf.Topic, topic.WithLatch[dr16.Data]())
	recv := conf.NewReceiver(port, tp)

	runner := framework.NewRunner().HandleSignals()
	runner.Go(recv, framework.NewManager().Register(recv))

	if mconf := mqtt.NewConfig(); mconf.BrokerURL != "" {
		queue, err := mconf.NewQueue()
		if err != nil {
			glog.Exitf("MQTT config: %v", err)
		}
		if token := queue.Connect(); token.Wait() && token.Error() != nil {
			glog.Exitf("MQTT connect: %v", token.Error())
		}
		defer queue.Close()
		runner.Go(mqtt.NewBridge(queue, tp))
	}

	if err := runner.Wait(); err != nil {
		glog.Exitln(err)
	}
}
