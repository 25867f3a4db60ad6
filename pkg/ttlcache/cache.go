// Package ttlcache — типизированный кэш поисковой выдачи с временем жизни
// на каждую запись. Хранилищем служит go-cache, обёртка добавляет типизацию
// и удаление протухшей записи при обращении.
package ttlcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Cache[T any] struct {
	inner      *gocache.Cache
	defaultTTL time.Duration
}

// New создаёт кэш. Фоновый janitor не запускается: владелец сам
// периодически вызывает ClearExpired.
func New[T any](defaultTTL time.Duration) *Cache[T] {
	return &Cache[T]{
		inner:      gocache.New(defaultTTL, 0),
		defaultTTL: defaultTTL,
	}
}

// Get возвращает значение по ключу. Протухшая запись считается
// отсутствующей и удаляется.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T

	value, ok := c.inner.Get(key)
	if !ok {
		c.inner.Delete(key)
		return zero, false
	}

	typed, ok := value.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.inner.Set(key, value, ttl)
}

func (c *Cache[T]) SetDefault(key string, value T) {
	c.Set(key, value, c.defaultTTL)
}

func (c *Cache[T]) Clear() {
	c.inner.Flush()
}

// ClearExpired выметает все записи, чей возраст превысил их собственный ttl.
func (c *Cache[T]) ClearExpired() {
	c.inner.DeleteExpired()
}

func (c *Cache[T]) Len() int {
	return c.inner.ItemCount()
}
