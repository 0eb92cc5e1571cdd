package pusher

import (
	"log"
	"sync"
	"time"
)

// Pusher batches messages and flushes them through the push logic on a fixed
// interval. A failed flush keeps the buffer for the next tick.
type Pusher[T any] struct {
	buffer       []T
	pushLogic    func(...T) error
	pushInterval time.Duration
	errorHandler func(error)
	lock         sync.Mutex
	running      bool
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		running:      true,
		pushLogic:    func(...T) error { return nil },
		errorHandler: func(err error) { log.Println(err) },
		pushInterval: time.Second,
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

func (p *Pusher[T]) Add(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.buffer = append(p.buffer, messages...)
}

func (p *Pusher[T]) Flush() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.buffer) == 0 {
		return nil
	}
	if err := p.pushLogic(p.buffer...); err != nil {
		return err
	}

	p.buffer = nil
	return nil
}

func (p *Pusher[T]) Start() {
	go func() {
		for p.running {
			timer := time.NewTimer(p.pushInterval)
			if err := p.Flush(); err != nil {
				p.errorHandler(err)
			}
			<-timer.C
		}
	}()
}

func (p *Pusher[T]) Stop() {
	p.running = false
}
