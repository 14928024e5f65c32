// Package jitter добавляет случайный разброс к паузам между повторами запросов,
// чтобы клиенты не приходили к бэкенду одновременно.
package jitter

import (
	"math/rand"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

// Duration возвращает d с джиттером в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	return DurationWithRand(d, factor, rand.Float64)
}

// DurationWithRand позволяет подставить свой источник случайности (в тестах).
func DurationWithRand(d time.Duration, factor float64, float func() float64) time.Duration {
	if factor <= 0 {
		return d
	}

	return d + time.Duration(float()*factor*float64(d))
}

// ExponentialBackoff удваивает base на каждую попытку (attempt с нуля), не превышая max, и добавляет джиттер.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}

	return Duration(backoff, factor)
}
