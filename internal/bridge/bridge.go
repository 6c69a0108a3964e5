// Package bridge mirrors brightness over MQTT: every change is
// published retained to <topic>/state, and commands on <topic>/set
// drive the gateway.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/hoppxi/lumo/internal/config"
	"github.com/hoppxi/lumo/pkg/brightness"
)

// Command is the payload accepted on the set topic. Pointer fields so
// absence is distinguishable from zero.
type Command struct {
	Brightness *float64 `json:"brightness"`
	Reset      bool     `json:"reset"`
}

// State is the retained payload on the state topic.
type State struct {
	Brightness float64 `json:"brightness"`
}

type Bridge struct {
	cfg     config.MQTT
	gateway *brightness.Gateway
	client  mqtt.Client
}

func New(cfg config.MQTT, gateway *brightness.Gateway) *Bridge {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warn("MQTT connection lost", "err", err)
		}).
		SetReconnectingHandler(func(_ mqtt.Client, _ *mqtt.ClientOptions) {
			log.Info("MQTT reconnecting")
		})

	return &Bridge{cfg: cfg, gateway: gateway, client: mqtt.NewClient(opts)}
}

// Run connects, republishes state on every gateway change and serves
// commands until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	if t := b.client.Connect(); t.Wait() && t.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", t.Error())
	}
	defer b.client.Disconnect(250)

	if t := b.client.Subscribe(b.commandTopic(), 1, b.handleCommand); t.Wait() && t.Error() != nil {
		return fmt.Errorf("mqtt subscribe: %w", t.Error())
	}
	log.Info("MQTT bridge up", "state", b.stateTopic(), "set", b.commandTopic())

	// Retained snapshot so late subscribers see the current value.
	if v, err := b.gateway.CurrentBrightness(ctx); err == nil {
		b.publishState(float64(v))
	}

	changes, err := b.gateway.Changes(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case v, ok := <-changes:
			if !ok {
				return nil
			}
			b.publishState(float64(v))
		}
	}
}

func (b *Bridge) handleCommand(_ mqtt.Client, msg mqtt.Message) {
	msg.Ack()

	cmd, err := decodeCommand(msg.Payload())
	if err != nil {
		log.Error("Dropping brightness command", "err", err)
		return
	}

	ctx := context.Background()
	if cmd.Reset {
		if err := b.gateway.ResetBrightness(ctx); err != nil {
			log.Error("Reset brightness failed", "err", err)
		}
		return
	}

	if err := b.gateway.SetBrightness(ctx, *cmd.Brightness); err != nil {
		log.Error("Set brightness failed", "value", *cmd.Brightness, "err", err)
	}
}

// decodeCommand parses a set-topic payload. A payload that decodes to
// neither a brightness nor a reset is the null parameter case.
func decodeCommand(payload []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return Command{}, brightness.ErrNullParameter
	}
	if !cmd.Reset && cmd.Brightness == nil {
		return Command{}, brightness.ErrNullParameter
	}
	return cmd, nil
}

func (b *Bridge) publishState(v float64) {
	data, err := json.Marshal(State{Brightness: v})
	if err != nil {
		log.Error("Marshal state failed", "err", err)
		return
	}
	if t := b.client.Publish(b.stateTopic(), 0, true, data); t.Wait() && t.Error() != nil {
		log.Error("MQTT publish failed", "err", t.Error())
	}
}

func (b *Bridge) stateTopic() string   { return b.cfg.Topic + "/state" }
func (b *Bridge) commandTopic() string { return b.cfg.Topic + "/set" }
