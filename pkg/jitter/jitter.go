// Package jitter добавляет случайность в интервалы повторных попыток,
// чтобы разнести во времени одновременные ретраи.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMu     sync.Mutex
)

// Duration возвращает d со случайной добавкой в диапазоне [0, d*jitterFactor].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMu.Lock()
	add := globalRand.Float64() * jitterFactor * float64(d)
	randMu.Unlock()
	return d + time.Duration(add)
}

// ExponentialBackoff вычисляет экспоненциальное отступление с джиттером.
// base — начальная длительность, max — верхняя граница,
// attempt — номер попытки (с нуля), jitterFactor — коэффициент джиттера.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, jitterFactor)
}
