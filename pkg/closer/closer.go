// Package closer обеспечивает упорядоченное закрытие ресурсов приложения при завершении.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer собирает функции закрытия и запускает их в порядке LIFO.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	funcs         []Func
	forcedTimeout time.Duration
}

// New создает Closer.
// forcedTimeout — время на принудительное закрытие оставшихся ресурсов,
// если контекст в Close истек раньше, чем завершилось штатное закрытие.
func New(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует функцию закрытия.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close закрывает все зарегистрированные ресурсы, последние добавленные — первыми.
// Повторные вызовы не имеют эффекта.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var msgs []string
		for i := len(funcs) - 1; i >= 0; i-- {
			done := make(chan error, 1)
			go func(f Func) {
				done <- f(ctx)
			}(funcs[i])

			select {
			case ferr := <-done:
				if ferr != nil {
					msgs = append(msgs, fmt.Sprintf("[!] %v", ferr))
				}
			case <-ctx.Done():
				// Контекст истек — оставшиеся ресурсы закрываем принудительно и параллельно.
				msgs = append(msgs, c.forcedClose(funcs[:i+1])...)
				err = fmt.Errorf(
					"shutdown interrupted after %d/%d funcs:\n%s",
					len(funcs)-1-i, len(funcs), strings.Join(msgs, "\n"),
				)
				return
			}
		}

		if len(msgs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(msgs, "\n"))
		}
	})

	return err
}

func (c *Closer) forcedClose(funcs []Func) []string {
	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		msgs []string
	)

	for _, f := range funcs {
		wg.Add(1)
		go func(f Func) {
			defer wg.Done()
			if err := f(ctx); err != nil {
				mu.Lock()
				msgs = append(msgs, fmt.Sprintf("[FORCED] %v", err))
				mu.Unlock()
			}
		}(f)
	}

	wg.Wait()
	return msgs
}
