package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/fpayan/fleetsim/core/telemetry"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakeClient struct {
	connected    bool
	connectErr   error
	publishErr   error
	disconnected bool
	topic        string
	qos          byte
	payload      []byte
}

func (c *fakeClient) IsConnected() bool { return c.connected }

func (c *fakeClient) Connect() paho.Token {
	c.connected = c.connectErr == nil
	return &fakeToken{err: c.connectErr}
}

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) paho.Token {
	c.topic = topic
	c.qos = qos
	c.payload = payload.([]byte)
	return &fakeToken{err: c.publishErr}
}

func withFakeClient(t *testing.T, c *fakeClient) {
	t.Helper()
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return c }
	t.Cleanup(func() { newMQTTClient = orig })
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	var c Config
	c.SetDefaults()
	if c.ClientID != "fleetsim" || c.Topic != "fleetsim/telemetry" {
		t.Fatalf("defaults: %+v", c)
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected broker error")
	}
	c.Broker = "tcp://localhost:1883"
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestNewPahoPublisherConnectError(t *testing.T) {
	withFakeClient(t, &fakeClient{connectErr: errors.New("refused")})
	_, err := NewPahoPublisher(Config{Broker: "tcp://localhost:1883", Topic: "t"})
	if err == nil {
		t.Fatalf("expected connect error")
	}
}

func TestPublishSnapshot(t *testing.T) {
	cli := &fakeClient{}
	withFakeClient(t, cli)
	pub, err := NewPahoPublisher(Config{Broker: "tcp://localhost:1883", Topic: "fleet/telemetry", QoS: 1})
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}

	snap := telemetry.Snapshot{Cycle: 3, Time: time.Now()}
	if err := pub.PublishSnapshot(context.Background(), snap); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if cli.topic != "fleet/telemetry" || cli.qos != 1 {
		t.Fatalf("published to %s qos %d", cli.topic, cli.qos)
	}

	var got telemetry.Snapshot
	if err := json.Unmarshal(cli.payload, &got); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if got.Cycle != 3 {
		t.Fatalf("cycle %d", got.Cycle)
	}
	if got.ID == "" {
		t.Fatalf("expected generated snapshot id")
	}
}

func TestPublishSnapshotError(t *testing.T) {
	cli := &fakeClient{publishErr: errors.New("broker gone")}
	withFakeClient(t, cli)
	pub, err := NewPahoPublisher(Config{Broker: "tcp://localhost:1883"})
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	if err := pub.PublishSnapshot(context.Background(), telemetry.Snapshot{}); err == nil {
		t.Fatalf("expected publish error")
	}
}

func TestClose(t *testing.T) {
	cli := &fakeClient{}
	withFakeClient(t, cli)
	pub, err := NewPahoPublisher(Config{Broker: "tcp://localhost:1883"})
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !cli.disconnected {
		t.Fatalf("client not disconnected")
	}
}
