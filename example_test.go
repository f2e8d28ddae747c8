package eventbus_test

import (
	"fmt"

	eventbus "github.com/dep2p/go-eventbus"
)

func Example() {
	reg, err := eventbus.New(nil)
	if err != nil {
		panic(err)
	}

	// 订阅之前发布
	_ = reg.Trigger("click", 1)

	_ = reg.Listen("click", eventbus.NewListener(func(evt eventbus.Event) error {
		fmt.Println("click", evt.Payload, evt.Replayed)
		return nil
	}))

	_ = reg.Trigger("click", 2)

	// Output:
	// click 1 true
	// click 2 false
}

func ExampleOnlyLast() {
	bus := eventbus.NewBus()
	_ = bus.Trigger("resize", 10)
	_ = bus.Trigger("resize", 20)
	_ = bus.Trigger("resize", 30)

	_ = bus.Listen("resize", eventbus.NewListener(func(evt eventbus.Event) error {
		fmt.Println(evt.Payload)
		return nil
	}), eventbus.OnlyLast())

	// Output:
	// 30
}

type salesOffice struct {
	eventbus.Emitter
}

func ExampleEmitter() {
	office := &salesOffice{}

	_ = office.Listen("price", eventbus.NewListener(func(evt eventbus.Event) error {
		fmt.Println("price", evt.Payload)
		return nil
	}))
	_ = office.Trigger("price", 58)

	// Output:
	// price 58
}

func ExampleTopic() {
	click := eventbus.NewTopic[int]("click")
	bus := eventbus.NewBus(eventbus.WithNamespace("ui"))

	_ = click.Trigger(bus, 7)
	_, _ = click.Listen(bus, func(n int) error {
		fmt.Println("clicked", n)
		return nil
	})

	// Output:
	// clicked 7
}
